package cookieapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/cookies/pkg/cookie"
	"github.com/dmitrymomot/cookies/pkg/environment"
	"github.com/dmitrymomot/cookies/pkg/httpserver"
	"github.com/dmitrymomot/cookies/pkg/logger"
	"github.com/dmitrymomot/cookies/pkg/requestid"
)

const maxBodySize = 8 << 10

// Options configures Router.
type Options struct {
	Manager     *cookie.Manager // cookie.Default() when nil
	Logger      *slog.Logger
	Environment environment.Environment
}

// SetRequest is the body of PUT /cookies/{name}. Nil fields keep the
// manager defaults.
type SetRequest struct {
	Value    string  `json:"value"`
	MaxAge   *int    `json:"max_age,omitempty"`
	Path     *string `json:"path,omitempty"`
	Domain   *string `json:"domain,omitempty"`
	SameSite *string `json:"same_site,omitempty"`
	Secure   *bool   `json:"secure,omitempty"`
	HttpOnly *bool   `json:"http_only,omitempty"`
	Session  bool    `json:"session,omitempty"`
}

// CookieResponse is returned by GET /cookies/{name}.
type CookieResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	cookies *cookie.Manager
	log     *slog.Logger
}

// Router exposes the cookie manager over HTTP:
//
//	GET    /cookies         all request cookies as a JSON object
//	GET    /cookies/{name}  one cookie; a missing cookie has an empty value
//	PUT    /cookies/{name}  set a cookie from a SetRequest body
//	DELETE /cookies/{name}  expire a cookie
//	GET    /health          liveness probe
func Router(opts Options) chi.Router {
	h := &handler{cookies: opts.Manager, log: opts.Logger}
	if h.cookies == nil {
		h.cookies = cookie.Default()
	}
	if h.log == nil {
		h.log = slog.New(slog.DiscardHandler)
	}
	h.log = h.log.With(logger.Component("cookieapi"))

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		middleware.Recoverer,
		h.logRequests,
	)
	if opts.Environment != "" {
		r.Use(environment.Middleware(opts.Environment))
	}

	r.Get("/health", httpserver.HealthCheckHandler(h.log))
	r.Route("/cookies", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/{name}", h.get)
		r.Put("/{name}", h.set)
		r.Delete("/{name}", h.delete)
	})

	return r
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	header := strings.Join(r.Header.Values("Cookie"), "; ")
	writeJSON(w, http.StatusOK, h.cookies.Parse(header))
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	writeJSON(w, http.StatusOK, CookieResponse{Name: name, Value: h.cookies.Get(r, name)})
}

func (h *handler) set(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req SetRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	opts, err := req.options()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := h.cookies.SetOnResponse(w, name, req.Value, opts...); err != nil {
		h.writeCookieError(w, r, name, err)
		return
	}

	h.log.InfoContext(r.Context(), "cookie set", logger.Cookie(name))
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var opts []cookie.Option
	if path := r.URL.Query().Get("path"); path != "" {
		opts = append(opts, cookie.WithPath(path))
	}
	if domain := r.URL.Query().Get("domain"); domain != "" {
		opts = append(opts, cookie.WithDomain(domain))
	}

	if err := h.cookies.DeleteOnResponse(w, name, opts...); err != nil {
		h.writeCookieError(w, r, name, err)
		return
	}

	h.log.InfoContext(r.Context(), "cookie deleted", logger.Cookie(name))
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) writeCookieError(w http.ResponseWriter, r *http.Request, name string, err error) {
	if errors.Is(err, cookie.ErrInvalidName) || errors.Is(err, cookie.ErrInvalidCookie) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	h.log.ErrorContext(r.Context(), "cookie write failed", logger.Cookie(name), logger.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.DebugContext(r.Context(), "request",
			logger.Request(r.Method, r.URL.Path),
			logger.Status(ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

func (req SetRequest) options() ([]cookie.Option, error) {
	var opts []cookie.Option
	if req.MaxAge != nil {
		opts = append(opts, cookie.WithMaxAge(*req.MaxAge))
	}
	if req.Session {
		opts = append(opts, cookie.WithSession())
	}
	if req.Path != nil {
		opts = append(opts, cookie.WithPath(*req.Path))
	}
	if req.Domain != nil {
		opts = append(opts, cookie.WithDomain(*req.Domain))
	}
	if req.SameSite != nil {
		ss, err := cookie.ParseSameSite(*req.SameSite)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cookie.WithSameSite(ss))
	}
	if req.Secure != nil {
		opts = append(opts, cookie.WithSecure(*req.Secure))
	}
	if req.HttpOnly != nil {
		opts = append(opts, cookie.WithHTTPOnly(*req.HttpOnly))
	}
	return opts, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
