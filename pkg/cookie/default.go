package cookie

import (
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/cookies/pkg/config"
	"github.com/dmitrymomot/cookies/pkg/logger"
)

var (
	defaultManager atomic.Pointer[Manager]
	defaultInit    sync.Once
)

// Default returns the package-level Manager. On first use it is built from
// Config loaded from the environment. If that fails, it falls back to New().
func Default() *Manager {
	if m := defaultManager.Load(); m != nil {
		return m
	}

	defaultInit.Do(func() {
		m, err := loadDefault()
		if err != nil {
			slog.Default().Warn("cookie: using built-in defaults", logger.Error(err))
			m = New()
		}
		defaultManager.CompareAndSwap(nil, m)
	})

	return defaultManager.Load()
}

// SetDefault replaces the Manager used by the package-level functions.
// A nil Manager is ignored.
func SetDefault(m *Manager) {
	if m != nil {
		defaultManager.Store(m)
	}
}

func loadDefault() (*Manager, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg)
}

// Get reads a cookie using the default Manager.
func Get(r *http.Request, name string) string {
	return Default().Get(r, name)
}

// Parse parses a raw Cookie header using the default Manager.
func Parse(header string) map[string]string {
	return Default().Parse(header)
}

// Set writes a cookie to h using the default Manager.
func Set(h http.Header, name, value string, opts ...Option) error {
	return Default().Set(h, name, value, opts...)
}

// Add appends a cookie to h using the default Manager.
func Add(h http.Header, name, value string, opts ...Option) error {
	return Default().Add(h, name, value, opts...)
}

// SetOnResponse writes a cookie to w using the default Manager.
func SetOnResponse(w http.ResponseWriter, name, value string, opts ...Option) error {
	return Default().SetOnResponse(w, name, value, opts...)
}

// Delete expires a cookie on h using the default Manager.
func Delete(h http.Header, name string, opts ...Option) error {
	return Default().Delete(h, name, opts...)
}
