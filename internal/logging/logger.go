package logging

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globalLogger holds the process logger. A nil value means logging is off.
var globalLogger atomic.Pointer[zap.Logger]

// Config controls how the logger is built.
type Config struct {
	// Level is a zap level name ("debug", "info", ...). Invalid values fall back to info.
	Level string
	// Format is "console" or "json".
	Format string
}

// New builds a logger writing to w.
func New(cfg Config, w zapcore.WriteSyncer) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	return zap.New(zapcore.NewCore(encoder, w, level)).Named("brewstamp")
}

// EnableVerbose installs a debug-level console logger on stderr.
func EnableVerbose() {
	Set(New(Config{Level: "debug", Format: "console"}, zapcore.Lock(os.Stderr)))
}

// Set replaces the global logger. Passing nil disables logging.
func Set(l *zap.Logger) {
	globalLogger.Store(l)
}

// L returns the global logger, or a no-op logger when none is installed.
func L() *zap.Logger {
	if l := globalLogger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Sync flushes the global logger, ignoring errors from unsyncable writers.
func Sync() {
	if l := globalLogger.Load(); l != nil {
		_ = l.Sync()
	}
}
