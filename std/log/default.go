package log

import "os"

var defaultLogger *Logger = NewText(os.Stderr)

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

// SetDefault replaces the default logger and returns the previous one.
func SetDefault(l *Logger) (prev *Logger) {
	prev = defaultLogger
	if l != nil {
		defaultLogger = l
	}
	return
}

// Trace level message.
func Trace(t any, msg string, v ...any) {
	defaultLogger.log(t, msg, LevelTrace, v...)
}

// Debug level message.
func Debug(t any, msg string, v ...any) {
	defaultLogger.log(t, msg, LevelDebug, v...)
}

// Info level message.
func Info(t any, msg string, v ...any) {
	defaultLogger.log(t, msg, LevelInfo, v...)
}

// Warn level message.
func Warn(t any, msg string, v ...any) {
	defaultLogger.log(t, msg, LevelWarn, v...)
}

// Error level message.
func Error(t any, msg string, v ...any) {
	defaultLogger.log(t, msg, LevelError, v...)
}

// Fatal level message, followed by an exit.
func Fatal(t any, msg string, v ...any) {
	defaultLogger.log(t, msg, LevelFatal, v...)
	exit(1)
}

// HasTrace returns if trace level is enabled.
func HasTrace() bool {
	return defaultLogger.level <= LevelTrace
}
