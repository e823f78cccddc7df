package cookie

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/cookies/pkg/environment"
)

// Config holds the default cookie attributes loaded from the environment.
type Config struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	Path        string `env:"COOKIE_PATH" envDefault:"/"`
	Domain      string `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge      int    `env:"COOKIE_MAX_AGE" envDefault:"2592000"`
	Secure      bool   `env:"COOKIE_SECURE" envDefault:"false"` // forces Secure outside production
	HttpOnly    bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite    string `env:"COOKIE_SAME_SITE" envDefault:"lax"`
}

// DefaultConfig returns the configuration matching New without options.
func DefaultConfig() Config {
	return Config{
		Environment: string(environment.Development),
		Path:        "/",
		MaxAge:      DefaultMaxAge,
		HttpOnly:    true,
		SameSite:    "lax",
	}
}

// NewFromConfig creates a Manager from cfg. Empty Path, Domain and SameSite
// and a zero MaxAge keep the built-in defaults. HttpOnly is always taken from
// cfg, so start from DefaultConfig when building a Config by hand.
func NewFromConfig(cfg Config, opts ...ManagerOption) (*Manager, error) {
	sameSite, err := ParseSameSite(cfg.SameSite)
	if err != nil {
		return nil, err
	}

	defaults := make([]Option, 0, 6)
	if cfg.Path != "" {
		defaults = append(defaults, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		defaults = append(defaults, WithDomain(cfg.Domain))
	}
	if cfg.MaxAge != 0 {
		defaults = append(defaults, WithMaxAge(cfg.MaxAge))
	}
	if cfg.SameSite != "" {
		defaults = append(defaults, WithSameSite(sameSite))
	}
	defaults = append(defaults, WithHTTPOnly(cfg.HttpOnly))

	env := environment.Parse(cfg.Environment)
	configOpts := []ManagerOption{
		WithEnvironment(env),
		WithDefaults(defaults...),
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithProduction(true))
	}

	return New(append(configOpts, opts...)...), nil
}

// ParseSameSite maps "lax", "strict", "none" and "default" (any case) to
// http.SameSite. An empty string is treated as "lax".
func ParseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	case "default":
		return http.SameSiteDefaultMode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}
