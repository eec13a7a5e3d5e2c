// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `Load()` calls `validateSettings` right after it unmarshals the merged
// Koanf tree.  Unlike a plain `v.Struct` call, every violation is collected
// into one `*Error` so an operator can fix all of them in a single pass.
//
// Field names are reported by their koanf key (`DATABASE_URL`), which is
// what the operator actually types.

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

//
// validator instance (package-level singleton)
//

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := f.Tag.Get("koanf")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return val
}

//
// error type
//

// FieldError describes one missing or malformed setting.
type FieldError struct {
	Key  string // environment key, e.g. "DATABASE_URL"
	Rule string // failed rule, e.g. "required"
}

func (f FieldError) String() string {
	switch f.Rule {
	case "required":
		return f.Key + " is required"
	default:
		return fmt.Sprintf("%s failed %q", f.Key, f.Rule)
	}
}

// Error aggregates every configuration violation found during Load.
type Error struct {
	Fields []FieldError
	Err    error // non-validation cause, e.g. a malformed env file
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "invalid configuration: " + e.Err.Error()
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return e.Err }

// Keys returns the failing keys in declaration order.
func (e *Error) Keys() []string {
	out := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		out[i] = f.Key
	}
	return out
}

//
// public API
//

// validateSettings returns nil or an *Error listing every failing field.
func validateSettings(s *Settings) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{Err: err}
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Key: fe.Field(), Rule: fe.Tag()})
	}
	return out
}
