package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the package-wide sugared logger. It starts as a no-op so code that
// logs before Initialize runs stays silent instead of panicking.
var Log = zap.NewNop().Sugar()

// Initialize replaces Log with a production logger filtering at the given
// level. Unknown level strings are rejected.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = zl.Sugar()
	return nil
}
