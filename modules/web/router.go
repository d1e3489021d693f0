// Package web serves the localized pages: a locale-prefixed home page, the
// locale switch endpoint, and the flag assets the switcher renders. Requests
// without a locale prefix are redirected to the negotiated locale.
package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/webstarter/binder"
	"github.com/dmitrymomot/webstarter/handler"
	"github.com/dmitrymomot/webstarter/pkg/cookie"
	"github.com/dmitrymomot/webstarter/pkg/i18n"
	"github.com/dmitrymomot/webstarter/pkg/locale"
)

// preference cookie lifetime, one year
const cookieMaxAge = 365 * 24 * 60 * 60

// Option configures the web module router.
type Option func(*module)

// WithLogger sets the logger used for locale fallback reporting.
func WithLogger(l *slog.Logger) Option {
	return func(m *module) {
		if l != nil {
			m.logger = l
		}
	}
}

type module struct {
	translator *i18n.Translator
	cookies    *cookie.Manager
	logger     *slog.Logger
}

// Router mounts the web routes on a fresh chi router. It expects to be
// mounted at the root of the application router.
func Router(translator *i18n.Translator, cookies *cookie.Manager, opts ...Option) chi.Router {
	m := &module{
		translator: translator,
		cookies:    cookies,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}

	r := chi.NewRouter()

	r.Get("/", m.negotiatedRedirect)
	r.NotFound(m.notFound)

	r.Get("/locale/{code}", handler.Wrap(
		handler.HandlerFunc[handler.Context, switchRequest](m.switchLocale),
		handler.WithBinders[handler.Context, switchRequest](binder.Path(chi.URLParam), binder.Query()),
	))

	r.Route("/{locale:[a-z][a-z]}", func(r chi.Router) {
		r.Use(locale.Middleware(locale.WithLogger(m.logger)))
		r.Get("/", handler.Wrap(
			handler.HandlerFunc[handler.Context, homeRequest](m.home),
		))
	})

	r.Handle("/flags/*", http.StripPrefix("/flags/", http.FileServerFS(flagsFS())))

	return r
}

type homeRequest struct{}

func (m *module) home(ctx handler.Context, _ homeRequest) handler.Response {
	code := locale.GetLocale(ctx)
	return handler.Templ(HomePage(m.translator, code, ctx.Request().URL.RequestURI()))
}

type switchRequest struct {
	Code string `path:"code"`
	To   string `query:"to"`
}

// switchLocale runs the locale switch against the path the user came from,
// persists the choice in the preference cookie, and redirects to the
// rewritten path. Unknown codes are rejected with a 400.
func (m *module) switchLocale(ctx handler.Context, req switchRequest) handler.Response {
	ref := sanitizePath(req.To)
	if ref == "" {
		ref = sanitizePath(refererPath(ctx.Request()))
	}
	if ref == "" {
		ref = "/"
	}

	var target string
	repo := locale.NewPathRepository(locale.NavigationContext{
		Path:      ref,
		Navigator: locale.NavigatorFunc(func(p string) { target = p }),
	})

	code, err := locale.NewSwitcher(repo).Switch(req.Code)
	if err != nil {
		return handler.Error(err.Error(), http.StatusBadRequest)
	}
	if target == "" {
		// Switching to the already-active locale navigates nowhere; go back
		// to where the user came from.
		target = locale.ReplaceSegment(ref, code)
	}

	m.cookies.Set(ctx.ResponseWriter(), locale.PreferenceCookie, string(code),
		cookie.WithMaxAge(cookieMaxAge))
	return handler.Redirect(target)
}

// negotiatedRedirect sends the bare root to the preferred locale's home page.
func (m *module) negotiatedRedirect(w http.ResponseWriter, r *http.Request) {
	code := locale.Negotiate(r, locale.PreferenceCookie)
	http.Redirect(w, r, "/"+string(code), http.StatusTemporaryRedirect)
}

// notFound redirects locale-less GET paths to the negotiated locale so deep
// links like /dashboard land on /en/dashboard. Everything else is a plain 404.
func (m *module) notFound(w http.ResponseWriter, r *http.Request) {
	segment, _ := locale.SplitPath(r.URL.Path)
	if r.Method == http.MethodGet && segment != "" && !locale.IsValid(segment) {
		code := locale.Negotiate(r, locale.PreferenceCookie)
		http.Redirect(w, r, "/"+string(code)+r.URL.RequestURI(), http.StatusTemporaryRedirect)
		return
	}
	http.NotFound(w, r)
}

// sanitizePath accepts only same-origin absolute paths, guarding the
// post-switch redirect against open-redirect targets.
func sanitizePath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return ""
	}
	return p
}

func refererPath(r *http.Request) string {
	u, err := url.Parse(r.Referer())
	if err != nil || u.Path == "" {
		return ""
	}
	return u.RequestURI()
}
