package locale

import (
	"log/slog"
	"net/http"
)

// MiddlewareOption configures the locale middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	cookieName string
	logger     *slog.Logger
}

// WithPreferenceCookie sets the cookie consulted when the path carries no
// valid locale segment. An empty name disables the cookie lookup.
func WithPreferenceCookie(name string) MiddlewareOption {
	return func(c *middlewareConfig) { c.cookieName = name }
}

// WithLogger sets the logger used to report locale fallbacks.
// If nil, fallbacks are not logged.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware resolves the request locale from the leading path segment and
// stores it in the request context. Segments that do not match the catalog
// fall back to the negotiated preference; the fallback is logged at debug
// level rather than surfaced as an error, keeping navigation resilient to
// malformed URLs without hiding them entirely.
func Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		cookieName: PreferenceCookie,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			segment, _ := SplitPath(r.URL.Path)
			code, err := Parse(segment)
			if err != nil {
				code = Negotiate(r, cfg.cookieName)
				cfg.logger.DebugContext(r.Context(), "request path has no valid locale segment",
					"segment", segment, "resolved", string(code))
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), code)))
		})
	}
}
