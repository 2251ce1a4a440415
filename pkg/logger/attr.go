package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Block records a BEM block name under the key "block".
func Block(name string) slog.Attr {
	return slog.String("block", name)
}

// Element records a BEM element name under the key "element".
// If name is empty, it returns an empty Attr.
func Element(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("element", name)
}

// Modifiers records resolved modifier names under the key "modifiers".
func Modifiers(names []string) slog.Attr {
	return slog.Any("modifiers", names)
}
