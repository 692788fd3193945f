package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config represents the configuration of the global logger.
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

var globalLogger *zap.SugaredLogger

// InitGlobalLogger replaces the process-wide logger with one built from cfg.
func InitGlobalLogger(cfg *Config) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}

	globalLogger = l.Sugar()
}

func ensure() *zap.SugaredLogger {
	if globalLogger == nil {
		l, _ := zap.NewProduction(zap.AddCallerSkip(1))
		globalLogger = l.Sugar()
	}

	return globalLogger
}

func Debug(msg string, keyValues ...any) {
	ensure().Debugw(msg, keyValues...)
}

func Info(msg string, keyValues ...any) {
	ensure().Infow(msg, keyValues...)
}

func Warn(msg string, keyValues ...any) {
	ensure().Warnw(msg, keyValues...)
}

func Error(msg string, keyValues ...any) {
	ensure().Errorw(msg, keyValues...)
}
