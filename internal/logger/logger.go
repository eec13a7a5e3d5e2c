// internal/logger/logger.go
//
// Structured JSON logger (Zap + Lumberjack).
//
// Context
// -------
// The backend writes lifecycle, access, and error events to one JSON log
// per day under `<LOG_DIR>/YYYY-MM-DD.log`.  When running in an interactive
// TTY the same events are teed, in console format, to stdout.  Rotation,
// compression, and retention are handled by Lumberjack.
//
// Before `New` runs, `Bootstrap` installs a console-only logger so config
// failures are visible even though LOG_DIR is not known yet.
//
// Usage
// -----
//
//	log, err := logger.New(settings.LogDir, logger.RunningInTTY())
//	if err != nil { … }
//	log.Infow("server online", "addr", settings.ListenAddr)
package logger

import (
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		NameKey:      "logger",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
}

// Bootstrap installs a stderr console logger as the process-wide default
// and returns it.
func Bootstrap() *zap.SugaredLogger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.Lock(os.Stderr),
		zap.InfoLevel,
	)
	z := zap.New(core)
	zap.ReplaceGlobals(z)
	return z.Sugar()
}

// New returns a *zap.SugaredLogger that writes JSON to logDir.  When
// tee == true, a console core on stdout is also attached.  The logger is
// installed as the process-wide default via zap.ReplaceGlobals.
func New(logDir string, tee bool) (*zap.SugaredLogger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	fileSink := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, time.Now().Format("2006-01-02")+".log"),
		MaxSize:    50, // MB
		MaxBackups: 7,
		MaxAge:     14, // days
		Compress:   true,
	}

	encCfg := encoderConfig()
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(fileSink), zap.InfoLevel),
	}
	if tee {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(os.Stdout),
			zap.InfoLevel,
		))
	}

	z := zap.New(
		zapcore.NewTee(cores...),
		zap.ErrorOutput(zapcore.AddSync(fileSink)),
	)
	zap.ReplaceGlobals(z)

	s := z.Sugar()
	s.Infow("logger online", "dir", logDir, "tee", tee)
	return s, nil
}

// RunningInTTY reports whether stdout is a character device.
func RunningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
