package lib

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

var (
	logMu  sync.RWMutex
	logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// SetupLogger installs a JSON logger writing to w. Debug lowers the level and adds source locations.
func SetupLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)

	logMu.Lock()
	logger = l
	logMu.Unlock()

	return l
}

func Logger() *slog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}
