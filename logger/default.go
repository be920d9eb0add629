package logger

import "sync/atomic"

var defLogger atomic.Pointer[Logger]

func init() {
	SetDefault(NewSlog(InfoLevel, false))
}

// SetDefault replaces the logger behind the package-level functions. A nil l is ignored.
func SetDefault(l Logger) {
	if l != nil {
		defLogger.Store(&l)
	}
}

// GetLogger returns the package default logger.
func GetLogger() Logger {
	return *defLogger.Load()
}

// With returns a child of the default logger carrying keyValues, e.g. for queue.WithLogger.
func With(keyValues ...any) Logger {
	return GetLogger().With(keyValues...)
}

// SetLevel sets the minimum enabled level of the default logger.
func SetLevel(level Level) {
	GetLogger().SetLevel(level)
}

func Debug(msg string, keysAndValues ...any) {
	GetLogger().Debug(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	GetLogger().Info(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	GetLogger().Warn(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	GetLogger().Error(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...any) {
	GetLogger().Fatal(msg, keysAndValues...)
}
