package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON stdout handler as the process-wide slog default.
// main later swaps it for a MultiHandler once the database is up.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
