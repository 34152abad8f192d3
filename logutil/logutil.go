// logutil.go - slog-Logger fuer CLI und Bibliothek
//
// Dieses Modul enthaelt:
// - LevelTrace: Log-Level unterhalb von DEBUG (IMAGEPREP_DEBUG=2)
// - NewLogger: Text-Logger mit kurzem Source-Pfad und TRACE-Label
// - Trace: Kurzform fuer slog.Log mit LevelTrace
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
)

// LevelTrace liegt unterhalb von slog.LevelDebug
const LevelTrace slog.Level = -8

// NewLogger erstellt einen Text-Logger fuer w mit dem gegebenen Level
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if level, ok := attr.Value.Any().(slog.Level); ok && level == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	}))
}

// Trace loggt ueber den Default-Logger auf LevelTrace
func Trace(msg string, args ...any) {
	slog.Log(context.TODO(), LevelTrace, msg, args...)
}
