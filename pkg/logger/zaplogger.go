package logger

import "go.uber.org/zap"

// ZapLogger adapts a sugared zap logger to the message-plus-key/value call
// style used across the service. Printf makes it double as fasthttp's Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

var active *ZapLogger

// NewLogger builds the logger from the given zap config and installs it as
// the package-wide instance. The caller skip accounts for the package-level
// wrapper functions, so call sites are reported correctly.
func NewLogger(cfg zap.Config) (*ZapLogger, error) {
	base, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		return nil, err
	}
	active = &ZapLogger{sugar: base.Sugar()}
	return active, nil
}

func GetLogger() *ZapLogger {
	if active == nil {
		panic("logger not initialized")
	}
	return active
}

func (l *ZapLogger) Info(msg string, kv ...any)  { l.sugar.Infow(msg, kv...) }
func (l *ZapLogger) Warn(msg string, kv ...any)  { l.sugar.Warnw(msg, kv...) }
func (l *ZapLogger) Error(msg string, kv ...any) { l.sugar.Errorw(msg, kv...) }
func (l *ZapLogger) Debug(msg string, kv ...any) { l.sugar.Debugw(msg, kv...) }
func (l *ZapLogger) Panic(msg string, kv ...any) { l.sugar.Panicw(msg, kv...) }

func (l *ZapLogger) Fatal(err error, kv ...any) { l.sugar.Fatalw(err.Error(), kv...) }

func (l *ZapLogger) Printf(format string, args ...any) { l.sugar.Infof(format, args...) }
