package logger

import (
	"log/slog"
	"os"
)

// Log defaults to the standard slog logger so packages can log before
// Init runs (init order, tests); Init swaps in the configured JSON handler.
var Log = slog.Default()

func Init() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
