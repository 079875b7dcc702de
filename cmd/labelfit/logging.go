package main

import (
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/lmittmann/tint"
)

func newLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	if f, ok := w.(*os.File); !ok || f != os.Stderr {
		// Not a terminal we own; keep the output plain.
		noColor = true
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		NoColor: noColor || runtime.GOOS == "windows",
		Level:   level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}
