// internal/config/model.go
//
// Typed settings model for the bedtime story backend.
//
// Context
// -------
// `Settings` is the flat, immutable value that `Load()` builds from two
// overlay layers:
//
//   • optional `.env` file          – dotenv values,
//   • process environment variables – highest precedence.
//
// Keys are the upper-case environment names (`DATABASE_URL`, …).  Lookup is
// case-insensitive; the loader upper-cases every key before unmarshalling.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`.  Validation tags are read by
//     `validator.go`, which reports failures by koanf key, not Go field name.
//   • Settings is passed by value.  There is no setter and no reload.
//   • Two spaces after periods.  No em-dash.

package config

import "go.uber.org/zap/zapcore"

// Default display metadata, used when the environment provides no override.
const (
	DefaultProjectName    = "Personalized Bedtime Story Backend"
	DefaultProjectVersion = "1.0.0"
	DefaultListenAddr     = ":8000"
	DefaultLogDir         = "logs"
)

// Settings is the validated configuration loaded once at process start.
//
// Credentials are opaque: the loader checks presence only and never calls
// out to verify them.
type Settings struct {
	ProjectName    string `koanf:"PROJECT_NAME"`
	ProjectVersion string `koanf:"PROJECT_VERSION"`

	DatabaseURL        string `koanf:"DATABASE_URL"          validate:"required"`
	OpenAIAPIKey       string `koanf:"OPENAI_API_KEY"        validate:"required"`
	GoogleTTSAPIKey    string `koanf:"GOOGLE_TTS_API_KEY"    validate:"required"`
	AWSAccessKeyID     string `koanf:"AWS_ACCESS_KEY_ID"     validate:"required"`
	AWSSecretAccessKey string `koanf:"AWS_SECRET_ACCESS_KEY" validate:"required"`
	AWSS3BucketName    string `koanf:"AWS_S3_BUCKET_NAME"    validate:"required"`
	SecretKey          string `koanf:"SECRET_KEY"            validate:"required"`

	// Runtime tunables.
	ListenAddr string `koanf:"LISTEN_ADDR"`
	LogDir     string `koanf:"LOG_DIR"`
}

// defaults returns Settings pre-populated with every declared default.
func defaults() Settings {
	return Settings{
		ProjectName:    DefaultProjectName,
		ProjectVersion: DefaultProjectVersion,
		ListenAddr:     DefaultListenAddr,
		LogDir:         DefaultLogDir,
	}
}

// MarshalLogObject lets zap log Settings with every secret redacted.
func (s Settings) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("project_name", s.ProjectName)
	enc.AddString("project_version", s.ProjectVersion)
	enc.AddString("listen_addr", s.ListenAddr)
	enc.AddString("log_dir", s.LogDir)
	enc.AddString("aws_s3_bucket_name", s.AWSS3BucketName)
	enc.AddString("database_url", redact(s.DatabaseURL))
	enc.AddString("openai_api_key", redact(s.OpenAIAPIKey))
	enc.AddString("google_tts_api_key", redact(s.GoogleTTSAPIKey))
	enc.AddString("aws_access_key_id", redact(s.AWSAccessKeyID))
	enc.AddString("aws_secret_access_key", redact(s.AWSSecretAccessKey))
	enc.AddString("secret_key", redact(s.SecretKey))
	return nil
}

func redact(v string) string {
	if v == "" {
		return ""
	}
	return "******"
}
