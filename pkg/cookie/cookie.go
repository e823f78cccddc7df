package cookie

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/cookies/pkg/environment"
	"github.com/dmitrymomot/cookies/pkg/logger"
)

const (
	headerCookie    = "Cookie"
	headerSetCookie = "Set-Cookie"
)

// Manager reads and writes cookies using a fixed set of default attributes.
// A Manager is immutable after New and safe for concurrent use.
type Manager struct {
	defaults Options
	encode   Encoder
	decode   Decoder
	logger   *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithDefaults overrides the default attributes applied to every cookie.
func WithDefaults(opts ...Option) ManagerOption {
	return func(m *Manager) {
		m.defaults = applyOptions(m.defaults, opts)
	}
}

// WithProduction marks cookies Secure by default when production is true.
func WithProduction(production bool) ManagerOption {
	return func(m *Manager) {
		m.defaults.Secure = production
	}
}

// WithEnvironment derives the default Secure flag from env.
func WithEnvironment(env environment.Environment) ManagerOption {
	return WithProduction(env.IsProduction())
}

func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

func WithEncoder(enc Encoder) ManagerOption {
	return func(m *Manager) {
		if enc != nil {
			m.encode = enc
		}
	}
}

func WithDecoder(dec Decoder) ManagerOption {
	return func(m *Manager) {
		if dec != nil {
			m.decode = dec
		}
	}
}

// New creates a Manager. Without options cookies get Max-Age of 30 days,
// HttpOnly, Path "/", SameSite=Lax and no Secure flag.
func New(opts ...ManagerOption) *Manager {
	m := &Manager{
		defaults: defaultOptions(),
		encode:   encodeValue,
		decode:   decodeValue,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logger.Component("cookie"))
	return m
}

// Defaults returns a copy of the attributes applied to every cookie.
func (m *Manager) Defaults() Options {
	return m.defaults
}

// Get returns the value of the named cookie from the request's Cookie header.
// A missing header or cookie yields an empty string. If the name occurs more
// than once the first occurrence wins.
func (m *Manager) Get(r *http.Request, name string) string {
	if r == nil || r.Header.Get(headerCookie) == "" {
		return ""
	}

	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}

	return m.decodeValue(r.Context(), c.Name, c.Value)
}

// Parse returns every cookie in a raw Cookie header value. Malformed pairs
// are skipped and the first occurrence of a repeated name wins.
func (m *Manager) Parse(header string) map[string]string {
	result := make(map[string]string)
	if header == "" {
		return result
	}

	r := &http.Request{Header: http.Header{headerCookie: {header}}}
	for _, c := range r.Cookies() {
		if _, ok := result[c.Name]; ok {
			continue
		}
		result[c.Name] = m.decodeValue(context.Background(), c.Name, c.Value)
	}

	return result
}

// Serialize builds the Set-Cookie header value for name and value with the
// manager defaults merged with opts.
func (m *Manager) Serialize(name, value string, opts ...Option) (string, error) {
	if name == "" {
		return "", ErrInvalidName
	}

	options := applyOptions(m.defaults, opts)
	c := options.httpCookie(name, m.encode(value))

	if err := c.Valid(); err != nil {
		m.logger.Warn("cookie rejected", logger.Cookie(name), logger.Error(err))
		return "", fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}

	return c.String(), nil
}

// Set writes the cookie to h, replacing any Set-Cookie value already there.
func (m *Manager) Set(h http.Header, name, value string, opts ...Option) error {
	if h == nil {
		return ErrNilHeader
	}

	line, err := m.Serialize(name, value, opts...)
	if err != nil {
		return err
	}

	h.Set(headerSetCookie, line)
	return nil
}

// Add appends the cookie to h, keeping Set-Cookie values already there.
func (m *Manager) Add(h http.Header, name, value string, opts ...Option) error {
	if h == nil {
		return ErrNilHeader
	}

	line, err := m.Serialize(name, value, opts...)
	if err != nil {
		return err
	}

	h.Add(headerSetCookie, line)
	return nil
}

// SetOnResponse is Set applied to the response headers of w.
func (m *Manager) SetOnResponse(w http.ResponseWriter, name, value string, opts ...Option) error {
	if w == nil {
		return ErrNilHeader
	}
	return m.Set(w.Header(), name, value, opts...)
}

// Delete replaces the Set-Cookie header of h with an empty value and
// Max-Age=0. Path and Domain must match the original cookie, so the defaults
// and opts apply as they do for Set.
func (m *Manager) Delete(h http.Header, name string, opts ...Option) error {
	return m.Set(h, name, "", deleteOptions(opts)...)
}

// DeleteOnResponse is Delete applied to the response headers of w.
func (m *Manager) DeleteOnResponse(w http.ResponseWriter, name string, opts ...Option) error {
	if w == nil {
		return ErrNilHeader
	}
	return m.Delete(w.Header(), name, opts...)
}

func (m *Manager) decodeValue(ctx context.Context, name, raw string) string {
	value, err := m.decode(raw)
	if err != nil {
		m.logger.DebugContext(ctx, "cookie value left undecoded", logger.Cookie(name), logger.Error(err))
		return raw
	}
	return value
}

// deleteOptions puts the expiry first so callers can still override it.
func deleteOptions(opts []Option) []Option {
	return append([]Option{WithMaxAge(0), WithExpires(time.Time{})}, opts...)
}
