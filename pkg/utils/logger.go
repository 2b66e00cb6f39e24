package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger tees structured output to stdout and, when LogPath is set, to a
// rotated file named after the app. Debug switches to a console encoder at
// debug level.
func InitLogger(cfg AppConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Debug {
		level.SetLevel(zap.DebugLevel)
	}

	encoder := newEncoder(cfg.Debug)
	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)}

	if cfg.LogPath != "" {
		sink, err := rotatingSink(cfg.LogPath, cfg.Name)
		if err != nil {
			return nil, err
		}
		// files always get JSON so they stay machine-readable
		cores = append(cores, zapcore.NewCore(newEncoder(false), sink, level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).
		With(zap.String("service", cfg.Name)), nil
}

func newEncoder(console bool) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	if console {
		ec = zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeCaller = zapcore.ShortCallerEncoder

	if console {
		return zapcore.NewConsoleEncoder(ec)
	}
	return zapcore.NewJSONEncoder(ec)
}

func rotatingSink(dir, name string) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", dir, err)
	}

	base := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	if base == "" {
		base = "app"
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, base+".log"),
		MaxSize:    20,
		MaxBackups: 5,
		MaxAge:     14,
		Compress:   true,
	}), nil
}
