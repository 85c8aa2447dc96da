package logger

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	//LogLevel os alias tp zapcore.Level
	LogLevel = zapcore.Level

	//TypeOfLogger logger type
	TypeOfLogger struct {
		LevelEnabler
		*zap.SugaredLogger
	}

	//LevelEnabler is alias to zapcore.LevelEnabler
	LevelEnabler = zapcore.LevelEnabler
)

var (
	//global logger instance.
	global       TypeOfLogger
	defaultLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
)

func init() {
	SetLogger(New(defaultLevel))
}

// New creates new logger with standard EncoderConfig
// if lvl == nil, global AtomicLevel will be used
func New(level LevelEnabler, options ...zap.Option) TypeOfLogger {
	return NewWithSink(level, os.Stdout, options...)
}

// NewWithSink creates new logger which writes JSON lines into sink
func NewWithSink(level LevelEnabler, sink io.Writer, options ...zap.Option) TypeOfLogger {
	if level == nil {
		level = defaultLevel
	}
	return TypeOfLogger{
		LevelEnabler: level,
		SugaredLogger: zap.New(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zapcore.EncoderConfig{
					TimeKey:        "ts",
					LevelKey:       "lvl",
					NameKey:        "logger",
					CallerKey:      "from",
					MessageKey:     "message",
					StacktraceKey:  "stacktrace",
					LineEnding:     zapcore.DefaultLineEnding,
					EncodeLevel:    zapcore.LowercaseLevelEncoder,
					EncodeTime:     zapcore.ISO8601TimeEncoder,
					EncodeDuration: zapcore.SecondsDurationEncoder,
					EncodeCaller:   zapcore.ShortCallerEncoder,
				}),
				zapcore.AddSync(sink),
				level,
			),
			options...,
		).Sugar(),
	}
}

// Level returns current global logger level
func Level() LogLevel {
	return defaultLevel.Level()
}

// SetLevel sets level for global logger
func SetLevel(l LogLevel) {
	defaultLevel.SetLevel(l)
}

//Global returns current global logger.
func Global() TypeOfLogger {
	return global
}

// SetLogger sets global used logger. This function is not thread-safe.
func SetLogger(l TypeOfLogger) {
	global = l
}

// WithFields returns context which carries logger with key-values attached
func WithFields(ctx context.Context, kvs ...interface{}) context.Context {
	if len(kvs) == 0 {
		return ctx
	}
	l, ok := ctx.Value(contextKey{}).(TypeOfLogger)
	if !ok {
		l = Global()
	}
	return ToContext(ctx, TypeOfLogger{
		LevelEnabler:  l.LevelEnabler,
		SugaredLogger: l.With(kvs...),
	})
}

// Below listed all logging functions
// Suffix meaning:
// * No suffix, e.g. Info()    - log concatenated arguments
// * f,         e.g. Debugf()  - log using format string
// * KV,        e.g. DebugKV() - log key-values, odd args are keys, even – values

// Debugf ...
func Debugf(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).Debugf(format, args...)
}

// DebugKV ...
func DebugKV(ctx context.Context, message string, kvs ...interface{}) {
	FromContext(ctx).Debugw(message, kvs...)
}

// Info ...
func Info(ctx context.Context, args ...interface{}) {
	FromContext(ctx).Info(args...)
}

// Infof ...
func Infof(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).Infof(format, args...)
}

// InfoKV ...
func InfoKV(ctx context.Context, message string, kvs ...interface{}) {
	FromContext(ctx).Infow(message, kvs...)
}

// WarnKV ...
func WarnKV(ctx context.Context, message string, kvs ...interface{}) {
	FromContext(ctx).Warnw(message, kvs...)
}

// Errorf ...
func Errorf(ctx context.Context, format string, args ...interface{}) {
	FromContext(ctx).Errorf(format, args...)
}

// ErrorKV ...
func ErrorKV(ctx context.Context, message string, kvs ...interface{}) {
	FromContext(ctx).Errorw(message, kvs...)
}

// Fatal ...
func Fatal(ctx context.Context, args ...interface{}) {
	FromContext(ctx).Fatal(args...)
}
