package Trees

import "log/slog"

var logger *slog.Logger

// SetLogger replaces the logger used for diagnostics. A nil l falls back to slog.Default().
func SetLogger(l *slog.Logger) {
	logger = l
}

func diag() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
