// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options select where logs go.
type Options struct {
	// Level is debug, info, warn or error. Unknown values mean info.
	Level string
	// Path, when set, sends logs to a rotating file instead of Console.
	Path string
	// Console defaults to stderr so stdio transports keep stdout clean.
	Console io.Writer
}

// New returns a JSON logger and a cleanup func that flushes it.
func New(opts Options) (*zap.Logger, func(), error) {
	level := ParseLevel(opts.Level)

	var sink zapcore.WriteSyncer
	var closer io.Closer
	switch {
	case opts.Path != "":
		if err := ensureDir(opts.Path); err != nil {
			return nil, nil, fmt.Errorf("prepare log dir: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		sink = zapcore.AddSync(rotator)
		closer = rotator
	case opts.Console != nil:
		sink = zapcore.AddSync(opts.Console)
	default:
		sink = zapcore.Lock(os.Stderr)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, level)
	logger := zap.New(core, zap.AddCaller())

	cleanup := func() {
		_ = logger.Sync()
		if closer != nil {
			_ = closer.Close()
		}
	}
	return logger, cleanup, nil
}

// ParseLevel maps a config string to a zap level.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
