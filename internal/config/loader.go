// internal/config/loader.go
//
// Settings loader.
//
/*
Context
--------
`Load()` builds one immutable `Settings` value from three layers (highest
precedence last):

  1. Declared defaults (`PROJECT_NAME`, `PROJECT_VERSION`, …).
  2. Optional env file, `.env` in the working directory unless overridden
     with `WithEnvFile`.  Parsed by godotenv; the process environment is
     never modified.
  3. Process environment variables.

Only keys declared on `Settings` are read; everything else in the
environment is ignored.  After merging, the tree is unmarshalled,
validated, and returned.  Every failing key is reported at once through
`*Error`.

Instrumentation
---------------
  • DEBUG spans — env file read, env overlay.
  • ERROR spans — env file parse, unmarshal, validation failures.
  • INFO  span  — final “config loaded” with redacted settings.
  • Logs use the global *sugared* logger (`zap.S()`) so early boot issues
    surface even before the file logger is installed.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// DefaultEnvFile is read relative to the working directory.
const DefaultEnvFile = ".env"

/*──────────────────────────────── options ──────────────────────────────────*/

type options struct {
	envFile string
}

// Option tweaks Load.
type Option func(*options)

// WithEnvFile overrides the env file path.  An empty path disables the
// file layer entirely.
func WithEnvFile(path string) Option {
	return func(o *options) { o.envFile = path }
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads the env file and the environment, validates, and returns
// Settings.  The returned error is always an *Error.
func Load(opts ...Option) (Settings, error) {
	o := options{envFile: DefaultEnvFile}
	for _, fn := range opts {
		fn(&o)
	}

	k := koanf.New(".")

	if o.envFile != "" {
		if _, err := os.Stat(o.envFile); err == nil {
			if err := k.Load(file.Provider(o.envFile), dotenvParser{}); err != nil {
				zap.S().Errorw("config env file load failed", "file", o.envFile, "err", err)
				return Settings{}, &Error{Err: fmt.Errorf("env file %s: %w", o.envFile, err)}
			}
			zap.S().Debugw("config env file loaded", "file", o.envFile)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, &Error{Err: fmt.Errorf("env file %s: %w", o.envFile, err)}
		}
	}

	if err := k.Load(env.Provider("", ".", canonicalKey), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return Settings{}, &Error{Err: fmt.Errorf("environment: %w", err)}
	}
	zap.S().Debugw("config env overlay applied", "keys", len(k.Keys()))

	s := defaults()
	if err := k.Unmarshal("", &s); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return Settings{}, &Error{Err: err}
	}

	if err := validateSettings(&s); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return Settings{}, err
	}

	zap.S().Infow("config loaded", "settings", s)
	return s, nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

// knownKeys is the set of koanf tags declared on Settings.
var knownKeys = func() map[string]struct{} {
	out := make(map[string]struct{})
	t := reflect.TypeOf(Settings{})
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("koanf"); tag != "" && tag != "-" {
			out[tag] = struct{}{}
		}
	}
	return out
}()

// canonicalKey upper-cases name and returns "" for keys Settings does not
// declare, which makes koanf skip them.
func canonicalKey(name string) string {
	up := strings.ToUpper(name)
	if _, ok := knownKeys[up]; !ok {
		return ""
	}
	return up
}
