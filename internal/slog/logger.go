// Package slog owns the process-wide zap logger used by every other package.
package slog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = zap.NewNop().Sugar()

// Init initializes the logger. The level argument comes from configuration;
// LOG_LEVEL in the environment takes precedence over it. A non-empty file
// sends entries to a rotated log file instead of stderr so the interactive
// screen stays clean.
func Init(level, file string) error {
	config := zap.NewProductionConfig()

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	config.EncoderConfig.StacktraceKey = ""
	config.EncoderConfig.CallerKey = "caller"
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level = env
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	if isDevelopment() {
		config.Development = true
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var opts []zap.Option
	if file != "" {
		opts = append(opts, rollingFile(file, config))
	}

	logger, err := config.Build(opts...)
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}

	log = logger.Sugar()
	return nil
}

// Get returns the global logger instance. Before Init it is a no-op logger.
func Get() *zap.SugaredLogger {
	return log
}

// Sync flushes any buffered log entries.
func Sync() error {
	return log.Sync()
}

// Dump logs a spew rendering of v at debug level. The dump is only built
// when debug logging is enabled.
func Dump(label string, v any) {
	if !log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		return
	}
	log.Debugf("%s:\n%s", label, spew.Sdump(v))
}

// ParseLevel maps a level name to a zap level. The empty string means warn.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "", "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "fatal":
		return zapcore.FatalLevel, nil
	default:
		return zapcore.WarnLevel, fmt.Errorf("unrecognized log level %q", level)
	}
}

// rollingFile swaps the output core for one writing to a lumberjack file.
func rollingFile(file string, config zap.Config) zap.Option {
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
	var enc zapcore.Encoder
	if config.Encoding == "console" {
		enc = zapcore.NewConsoleEncoder(config.EncoderConfig)
	} else {
		enc = zapcore.NewJSONEncoder(config.EncoderConfig)
	}
	return zap.WrapCore(func(zapcore.Core) zapcore.Core {
		return zapcore.NewCore(enc, w, config.Level)
	})
}

func isDevelopment() bool {
	return strings.ToLower(os.Getenv("ENV")) == "development"
}
