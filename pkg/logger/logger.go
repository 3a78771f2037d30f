package logger

import (
	"os"

	"go.uber.org/zap"
)

// The package logger is usable as soon as the package is imported, so startup
// failures before config.Load still get logged. LOG_ENV=production selects
// the JSON encoder; anything else logs for development.
func init() {
	cfg := zap.NewDevelopmentConfig()
	if os.Getenv("LOG_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	}
	if _, err := NewLogger(cfg); err != nil {
		panic(err)
	}
}

func Info(msg string, kv ...any)  { GetLogger().Info(msg, kv...) }
func Warn(msg string, kv ...any)  { GetLogger().Warn(msg, kv...) }
func Error(msg string, kv ...any) { GetLogger().Error(msg, kv...) }
func Debug(msg string, kv ...any) { GetLogger().Debug(msg, kv...) }
func Panic(msg string, kv ...any) { GetLogger().Panic(msg, kv...) }
func Fatal(err error, kv ...any)  { GetLogger().Fatal(err, kv...) }
