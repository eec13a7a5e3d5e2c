package config

import (
	"github.com/joho/godotenv"
	koanf "github.com/knadh/koanf/v2"
)

var _ koanf.Parser = dotenvParser{}

// dotenvParser adapts godotenv to koanf.Parser so the env file goes through
// koanf's file provider like any other layer.
type dotenvParser struct{}

// Unmarshal parses dotenv bytes, keeping only keys Settings declares.
func (dotenvParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	vals, err := godotenv.UnmarshalBytes(b)
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(vals))
	for k, val := range vals {
		if key := canonicalKey(k); key != "" {
			out[key] = val
		}
	}
	return out, nil
}

// Marshal renders a flat map back to dotenv syntax.
func (dotenvParser) Marshal(m map[string]interface{}) ([]byte, error) {
	vals := make(map[string]string, len(m))
	for k, val := range m {
		if s, ok := val.(string); ok {
			vals[k] = s
		}
	}
	s, err := godotenv.Marshal(vals)
	return []byte(s), err
}
