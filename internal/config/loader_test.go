// internal/config/loader_test.go
//
// Unit-tests for Load.
//
// Each test clears every known key from the process environment first so
// values exported on the CI host cannot leak into the assertions.
//
// Run: go test ./internal/config -v

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var requiredKeys = []string{
	"DATABASE_URL",
	"OPENAI_API_KEY",
	"GOOGLE_TTS_API_KEY",
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"AWS_S3_BUCKET_NAME",
	"SECRET_KEY",
}

// clearEnv unsets every Settings key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for k := range knownKeys {
		t.Setenv(k, "") // registers restore on cleanup
		os.Unsetenv(k)
	}
}

func setRequired(t *testing.T) map[string]string {
	t.Helper()
	vals := map[string]string{
		"DATABASE_URL":          "postgres://story:pw@db:5432/stories?sslmode=disable",
		"OPENAI_API_KEY":        "sk-test-openai",
		"GOOGLE_TTS_API_KEY":    "g-tts-key",
		"AWS_ACCESS_KEY_ID":     "AKIAEXAMPLE",
		"AWS_SECRET_ACCESS_KEY": "  spaced secret  ",
		"AWS_S3_BUCKET_NAME":    "bedtime-audio",
		"SECRET_KEY":            "s3cr3t",
	}
	for k, val := range vals {
		t.Setenv(k, val)
	}
	return vals
}

func TestLoad_AllPresent(t *testing.T) {
	clearEnv(t)
	want := setRequired(t)

	s, err := Load(WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	got := map[string]string{
		"DATABASE_URL":          s.DatabaseURL,
		"OPENAI_API_KEY":        s.OpenAIAPIKey,
		"GOOGLE_TTS_API_KEY":    s.GoogleTTSAPIKey,
		"AWS_ACCESS_KEY_ID":     s.AWSAccessKeyID,
		"AWS_SECRET_ACCESS_KEY": s.AWSSecretAccessKey,
		"AWS_S3_BUCKET_NAME":    s.AWSS3BucketName,
		"SECRET_KEY":            s.SecretKey,
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("%s = %q, want %q", k, got[k], w)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	s, err := Load(WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.ProjectName != "Personalized Bedtime Story Backend" {
		t.Errorf("ProjectName = %q", s.ProjectName)
	}
	if s.ProjectVersion != "1.0.0" {
		t.Errorf("ProjectVersion = %q", s.ProjectVersion)
	}
	if s.ListenAddr != DefaultListenAddr || s.LogDir != DefaultLogDir {
		t.Errorf("runtime defaults = %q, %q", s.ListenAddr, s.LogDir)
	}
}

func TestLoad_DefaultOverride(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("PROJECT_NAME", "Dreamy")
	t.Setenv("PROJECT_VERSION", "2.1")

	s, err := Load(WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.ProjectName != "Dreamy" || s.ProjectVersion != "2.1" {
		t.Fatalf("metadata = %q %q", s.ProjectName, s.ProjectVersion)
	}
}

func TestLoad_EachMissingFieldIsNamed(t *testing.T) {
	for _, missing := range requiredKeys {
		t.Run(missing, func(t *testing.T) {
			clearEnv(t)
			setRequired(t)
			os.Unsetenv(missing)

			_, err := Load(WithEnvFile(""))
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("err = %v, want *Error", err)
			}
			keys := cerr.Keys()
			if len(keys) != 1 || keys[0] != missing {
				t.Fatalf("keys = %v, want [%s]", keys, missing)
			}
			if !strings.Contains(err.Error(), missing) {
				t.Fatalf("message %q does not name %s", err.Error(), missing)
			}
		})
	}
}

func TestLoad_AggregatesAllMissing(t *testing.T) {
	clearEnv(t)

	_, err := Load(WithEnvFile(""))
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	keys := cerr.Keys()
	if len(keys) != len(requiredKeys) {
		t.Fatalf("keys = %v, want all %d required keys", keys, len(requiredKeys))
	}
	for i, k := range requiredKeys {
		if keys[i] != k {
			t.Errorf("keys[%d] = %s, want %s", i, keys[i], k)
		}
	}
}

func TestLoad_EmptyValueRejected(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	t.Setenv("SECRET_KEY", "")

	_, err := Load(WithEnvFile(""))
	var cerr *Error
	if !errors.As(err, &cerr) || len(cerr.Fields) != 1 || cerr.Fields[0].Key != "SECRET_KEY" {
		t.Fatalf("err = %v, want SECRET_KEY required", err)
	}
}

func writeEnvFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return p
}

func TestLoad_EnvFileAndOverlay(t *testing.T) {
	clearEnv(t)
	p := writeEnvFile(t, `DATABASE_URL=postgres://file/db
OPENAI_API_KEY=file-openai
google_tts_api_key=file-tts
AWS_ACCESS_KEY_ID=file-id
AWS_SECRET_ACCESS_KEY=file-secret
AWS_S3_BUCKET_NAME=file-bucket
SECRET_KEY="quoted # value"
UNRELATED=ignored
`)
	t.Setenv("OPENAI_API_KEY", "env-openai")

	s, err := Load(WithEnvFile(p))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.OpenAIAPIKey != "env-openai" {
		t.Errorf("environment should win over env file: %q", s.OpenAIAPIKey)
	}
	if s.DatabaseURL != "postgres://file/db" {
		t.Errorf("DatabaseURL = %q", s.DatabaseURL)
	}
	if s.GoogleTTSAPIKey != "file-tts" {
		t.Errorf("lower-case key not matched: %q", s.GoogleTTSAPIKey)
	}
	if s.SecretKey != "quoted # value" {
		t.Errorf("SecretKey = %q", s.SecretKey)
	}
	if _, ok := os.LookupEnv("DATABASE_URL"); ok {
		t.Errorf("env file must not be exported into the process environment")
	}
}

func TestLoad_MissingEnvFileIsOptional(t *testing.T) {
	clearEnv(t)
	setRequired(t)

	if _, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "absent.env"))); err != nil {
		t.Fatalf("Load error: %v", err)
	}
}

func TestLoad_MalformedEnvFile(t *testing.T) {
	clearEnv(t)
	setRequired(t)
	p := writeEnvFile(t, "SECRET_KEY=\"unterminated\n")

	_, err := Load(WithEnvFile(p))
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Err == nil {
		t.Fatalf("err = %v, want wrapped parse error", err)
	}
}
