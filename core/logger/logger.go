package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu  sync.RWMutex
	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// Init replaces the default logger with one at the given level.
// Accepted levels: debug, info, warn, error.
func Init(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	mu.Lock()
	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
	mu.Unlock()
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// normalize turns loosely structured call sites into valid slog key/value
// pairs. String keys followed by a value pass through, a bare error becomes
// ("error", err), anything else becomes ("detail", v).
func normalize(args []any) []any {
	out := make([]any, 0, len(args)+2)
	for i := 0; i < len(args); {
		if key, ok := args[i].(string); ok && i+1 < len(args) {
			out = append(out, key, args[i+1])
			i += 2
			continue
		}
		switch v := args[i].(type) {
		case error:
			out = append(out, "error", v)
		default:
			out = append(out, "detail", v)
		}
		i++
	}
	return out
}

func Debug(msg string, args ...any) {
	get().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
}
