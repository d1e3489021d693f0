// Package locale implements the locale-switching core of the application:
// a fixed catalog of supported locales, a repository abstraction over "read
// current locale / request locale change", a path-based repository adapter,
// and the switch use-case that validates before delegating.
//
// The catalog is immutable and process-wide. The current locale is never
// stored; it is derived from the request path on every use, with Default as
// the silent fallback for unknown or absent segments. Programmatic switches
// are stricter: Switcher.Switch and Parse fail fast with ErrInvalidLocale for
// codes outside the catalog, so bad input from callers is never swallowed.
//
// Typical HTTP wiring:
//
//	r.Use(locale.Middleware(locale.WithLogger(log)))
//
//	// inside a handler
//	repo := locale.NewPathRepository(locale.NavigationContext{
//		Path:      r.URL.Path,
//		Navigator: locale.NavigatorFunc(func(p string) { http.Redirect(w, r, p, http.StatusSeeOther) }),
//	})
//	sw := locale.NewSwitcher(repo)
//	if _, err := sw.Switch(code); err != nil { ... }
//
// Accept-Language negotiation is delegated to golang.org/x/text/language and
// always resolves to a catalog member.
package locale
