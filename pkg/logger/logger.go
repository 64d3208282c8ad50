package logger

import (
	"log/slog"
	"os"
)

var log = slog.Default()

// Init configures the global logger. Production gets JSON output,
// everything else a human-readable text handler with debug level.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func Debug(msg string, args ...any) {
	log.Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass a bare error alongside key-value
// pairs, e.g. logger.Error("failed to save", err).
func normalize(args []any) []any {
	out := make([]any, 0, len(args))
	for i := 0; i < len(args); i++ {
		if err, ok := args[i].(error); ok {
			out = append(out, slog.Any("error", err))
			continue
		}
		if i+1 < len(args) {
			out = append(out, args[i], args[i+1])
			i++
			continue
		}
		out = append(out, slog.Any("detail", args[i]))
	}

	return out
}
