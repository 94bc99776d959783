package logging

import "log/slog"

// Info logs at info level when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a recoverable failure. A non-nil err is attached under FieldError.
func Warn(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, withError(args, err)...)
}

// Error logs a failed operation. A non-nil err is attached under FieldError.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	logger.Error(msg, withError(args, err)...)
}

func withError(args []any, err error) []any {
	if err == nil {
		return args
	}
	return append(args, slog.String(FieldError, err.Error()))
}
