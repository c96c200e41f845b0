package cli

import "go.uber.org/zap"

// debugLogger wraps zap for --verbose diagnostics. The zero value is a no-op
// so call sites never branch.
type debugLogger struct {
	sugared *zap.SugaredLogger
}

func newDebugLogger(verbose bool) *debugLogger {
	if !verbose {
		return &debugLogger{}
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.Encoding = "json"
	cfg.OutputPaths = []string{"stderr"}
	logger, _ := cfg.Build()
	return &debugLogger{sugared: logger.Sugar()}
}

func (l *debugLogger) Debugf(format string, args ...interface{}) {
	if l.sugared == nil {
		return
	}
	l.sugared.Debugf(format, args...)
}
