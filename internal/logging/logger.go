package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "WORDFINDER_LOG_LEVEL"

// LogFileEnvVar names a file to append log output to. The terminal UI owns
// stdout, so logs go to this file when set and to stderr otherwise.
const LogFileEnvVar = "WORDFINDER_LOG_FILE"

// Options controls logger construction.
type Options struct {
	Level string // debug, info, warn, error; empty means silent
	File  string // output path; empty means stderr
}

// Initialize creates a new logger from opts.
// Empty fields fall back to WORDFINDER_LOG_LEVEL and WORDFINDER_LOG_FILE.
// If no level is set anywhere, logging is disabled (silent mode).
func Initialize(opts Options) error {
	if opts.Level == "" {
		opts.Level = os.Getenv(LogLevelEnvVar)
	}
	if opts.File == "" {
		opts.File = os.Getenv(LogFileEnvVar)
	}

	if opts.Level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := "stderr"
	if opts.File != "" {
		output = opts.File
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(opts.Level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if opts.File == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		// no ANSI escapes in files
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// InitializeFromEnv initializes the logger from environment variables only.
func InitializeFromEnv() error {
	return Initialize(Options{})
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogGenerationRequest logs an outgoing generation request
func LogGenerationRequest(endpoint string, seq uint64, rows, columns string, words int) {
	Info("Generation request",
		zap.String("endpoint", endpoint),
		zap.Uint64("seq", seq),
		zap.String("rows", rows),
		zap.String("columns", columns),
		zap.Int("words", words),
	)
}

// LogGenerationResponse logs the outcome of a generation request
func LogGenerationResponse(seq uint64, rows, columns, placed int, err error) {
	if err != nil {
		Warn("Generation failed",
			zap.Uint64("seq", seq),
			zap.Error(err),
		)
		return
	}
	Info("Generation response",
		zap.Uint64("seq", seq),
		zap.Int("grid_rows", rows),
		zap.Int("grid_columns", columns),
		zap.Int("placed_words", placed),
	)
}

// LogStaleResponse logs a response that arrived after a newer request was issued
func LogStaleResponse(seq, latest uint64) {
	Debug("Discarding stale generation response",
		zap.Uint64("seq", seq),
		zap.Uint64("latest", latest),
	)
}

// LogHTTPRequest logs an HTTP request handled by the stub service
func LogHTTPRequest(remoteAddr string, method string, path string, status int, bytes int) {
	Info("HTTP request",
		zap.String("remote_addr", remoteAddr),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", status),
		zap.Int("bytes", bytes),
	)
}

// LogBody logs a truncated request or response body at debug level
func LogBody(label string, data []byte) {
	Debug(label,
		zap.Int("length", len(data)),
		zap.String("body", truncate(data, 256)),
	)
}

func truncate(data []byte, limit int) string {
	if len(data) <= limit {
		return string(data)
	}
	return string(data[:limit]) + "..."
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
