package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	levelEnv = "MOVIEDB_LOG_LEVEL"
	jsonEnv  = "MOVIEDB_JSON_LOG"
)

type ctxKey struct{}

var once sync.Once

var logger *zap.SugaredLogger

// Get initializes a zap.SugaredLogger instance if it has not been initialized
// already and returns the same instance for subsequent calls.
//
// Logs are written to stderr since stdout belongs to the interactive shell. The
// default level is WARN so self-healing notices show up without drowning the menu.
func Get() *zap.SugaredLogger {
	once.Do(func() {
		logger = New(zapcore.Lock(os.Stderr), os.Getenv(levelEnv), os.Getenv(jsonEnv) != "")
	})

	return logger
}

// New builds a logger writing to w. An empty or invalid level defaults to WARN.
func New(w zapcore.WriteSyncer, level string, json bool) *zap.SugaredLogger {
	lvl := zap.WarnLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			log.Println(
				fmt.Errorf("invalid level, defaulting to WARN: %w", err),
			)
		} else {
			lvl = parsed
		}
	}

	productionCfg := zap.NewProductionEncoderConfig()
	productionCfg.TimeKey = "timestamp"
	productionCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	developmentCfg := zap.NewDevelopmentEncoderConfig()
	developmentCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	encoder := zapcore.NewConsoleEncoder(developmentCfg)
	if json {
		encoder = zapcore.NewJSONEncoder(productionCfg)
	}

	core := zapcore.NewCore(encoder, w, zap.NewAtomicLevelAt(lvl))

	buildInfo, ok := debug.ReadBuildInfo()
	if ok && json {
		fields := []zapcore.Field{zap.String("go_version", buildInfo.GoVersion)}
		for _, v := range buildInfo.Settings {
			if v.Key == "vcs.revision" && len(v.Value) >= 7 {
				fields = append(fields, zap.String("git_revision", v.Value[0:7]))
				break
			}
		}

		core = core.With(fields)
	}

	return zap.New(core).Sugar()
}

// FromCtx returns the Logger associated with the ctx. If no logger
// is associated, the default logger is returned.
func FromCtx(ctx context.Context, with ...any) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		if len(with) == 0 {
			return l
		}
		return l.With(with...)
	}

	if len(with) == 0 {
		return Get()
	}
	return Get().With(with...)
}

// WithCtx returns a copy of ctx with the Logger attached.
func WithCtx(ctx context.Context, l *zap.SugaredLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		if lp == l {
			// Do not store same logger.
			return ctx
		}
	}

	return context.WithValue(ctx, ctxKey{}, l)
}
