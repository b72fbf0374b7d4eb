package logger

import "go.uber.org/zap"

var Log *zap.Logger

// Init builds the process-wide logger. Call once at startup.
func Init(level string) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	Log = zap.Must(cfg.Build())
}

func Sugar() *zap.SugaredLogger {
	return Log.Sugar()
}
