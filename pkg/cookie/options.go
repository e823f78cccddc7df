package cookie

import (
	"net/http"
	"time"
)

// DefaultMaxAge is the lifetime of a cookie written with default options: 30 days.
const DefaultMaxAge = 60 * 60 * 24 * 30

// Options holds the attributes of a cookie written by the Manager.
type Options struct {
	Path        string
	Domain      string
	MaxAge      int // seconds; <= 0 expires the cookie unless Session is set
	Expires     time.Time
	Session     bool // omit Max-Age so the cookie lives until the browser closes
	Secure      bool
	HttpOnly    bool
	SameSite    http.SameSite
	Partitioned bool
}

// Option overrides a single cookie attribute.
type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithMaxAge sets Max-Age in seconds. Zero or negative values expire the cookie.
// It also clears a previously applied WithSession.
func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = seconds
		o.Session = false
	}
}

func WithExpires(t time.Time) Option {
	return func(o *Options) {
		o.Expires = t
	}
}

// WithSession turns the cookie into a session cookie: neither Max-Age nor
// Expires is written.
func WithSession() Option {
	return func(o *Options) {
		o.Session = true
		o.MaxAge = 0
		o.Expires = time.Time{}
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HttpOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// WithPartitioned sets the Partitioned attribute (CHIPS).
func WithPartitioned(partitioned bool) Option {
	return func(o *Options) {
		o.Partitioned = partitioned
	}
}

// defaultOptions are the attributes every cookie starts from before
// manager and caller overrides are applied.
func defaultOptions() Options {
	return Options{
		Path:     "/",
		MaxAge:   DefaultMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// applyOptions returns a copy of base with opts applied in order.
// base is passed by value and never modified.
func applyOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}
	return base
}

// httpCookie converts merged options into an http.Cookie ready for serialization.
func (o Options) httpCookie(name, value string) *http.Cookie {
	c := &http.Cookie{
		Name:        name,
		Value:       value,
		Path:        o.Path,
		Domain:      o.Domain,
		Secure:      o.Secure,
		HttpOnly:    o.HttpOnly,
		SameSite:    o.SameSite,
		Partitioned: o.Partitioned,
	}

	if o.Session {
		return c
	}

	// http.Cookie treats MaxAge == 0 as "unset" and < 0 as "Max-Age=0".
	if o.MaxAge > 0 {
		c.MaxAge = o.MaxAge
	} else {
		c.MaxAge = -1
	}
	c.Expires = o.Expires

	return c
}
