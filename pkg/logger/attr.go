package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Cookie records a cookie name under "cookie". Never pass the value.
func Cookie(name string) slog.Attr {
	return slog.String("cookie", name)
}

// Request groups the method and path of an HTTP request under "request".
func Request(method, path string) slog.Attr {
	return slog.Group("request", slog.String("method", method), slog.String("path", path))
}

func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
