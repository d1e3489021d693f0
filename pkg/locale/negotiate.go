package locale

import (
	"net/http"

	"golang.org/x/text/language"
)

// PreferenceCookie is the cookie holding an explicitly chosen locale.
// It takes precedence over Accept-Language negotiation.
const PreferenceCookie = "locale"

// matcher negotiates Accept-Language headers against the catalog.
// Tag order follows the catalog, so earlier entries win on ties.
var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(catalog))
	for i, l := range catalog {
		tags[i] = language.Make(string(l.Code))
	}
	return language.NewMatcher(tags)
}()

// Match resolves an Accept-Language header to the best catalog code.
// Unparseable or unmatched headers resolve to Default.
func Match(acceptLanguage string) Code {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return catalog[idx].Code
}

// Negotiate determines the preferred locale for a request that carries no
// locale prefix: preference cookie first, then Accept-Language, then Default.
func Negotiate(r *http.Request, cookieName string) Code {
	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil {
			if code, err := Parse(c.Value); err == nil {
				return code
			}
		}
	}
	return Match(r.Header.Get("Accept-Language"))
}
