package logging

import "go.uber.org/zap"

// SafeLogger wraps a named zap logger and tolerates use before InitLogger
// has run (early startup, tests). Every method falls back to a no-op logger
// rather than panicking on a nil global.
type SafeLogger struct {
	logger *zap.Logger
}

// NewSafeLogger returns a SafeLogger named after the owning component.
func NewSafeLogger(name string) *SafeLogger {
	return &SafeLogger{logger: base().Named(name)}
}

func base() *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger
}

func (s *SafeLogger) get() *zap.Logger {
	if s == nil || s.logger == nil {
		return base()
	}
	return s.logger
}

func (s *SafeLogger) Debug(msg string, fields ...zap.Field) { s.get().Debug(msg, fields...) }
func (s *SafeLogger) Info(msg string, fields ...zap.Field)  { s.get().Info(msg, fields...) }
func (s *SafeLogger) Warn(msg string, fields ...zap.Field)  { s.get().Warn(msg, fields...) }
func (s *SafeLogger) Error(msg string, fields ...zap.Field) { s.get().Error(msg, fields...) }
