package logging

import (
	"go.uber.org/zap"
)

// wraps a sugared zap logger so call sites stay decoupled from zap
type Logger struct {
	*zap.SugaredLogger
}

// builds a console logger writing to stderr. without verbose only
// warnings and errors are shown
func NewLogger(verbose bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.DisableCaller = true
	}
	return &Logger{zap.Must(cfg.Build()).Sugar()}
}
