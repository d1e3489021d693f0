package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrymomot/webstarter/pkg/locale"
)

// Translator resolves message keys against per-locale catalogs.
// Catalogs are loaded once at construction and never mutated afterwards, so a
// Translator is safe for concurrent use without locking.
type Translator struct {
	catalogs map[locale.Code]Messages
	fallback locale.Code
	logger   *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithFallbackLocale sets the locale consulted when a key is missing from the
// requested locale's catalog. Defaults to locale.Default.
func WithFallbackLocale(code locale.Code) Option {
	return func(t *Translator) {
		if locale.IsValid(string(code)) {
			t.fallback = code
		}
	}
}

// WithLogger sets the logger used to report missing translations.
// If not provided, missing translations are not logged.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// New loads all catalogs from src and returns a ready Translator.
func New(ctx context.Context, src Source, opts ...Option) (*Translator, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	t := &Translator{
		fallback: locale.Default,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	catalogs, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalogs) == 0 {
		return nil, ErrNoMessages
	}
	t.catalogs = catalogs

	t.logger.InfoContext(ctx, "message catalogs loaded", "locales", t.Locales())
	return t, nil
}

// Locales returns the loaded catalog locales in sorted order.
func (t *Translator) Locales() []locale.Code {
	codes := make([]locale.Code, 0, len(t.catalogs))
	for code := range t.catalogs {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Has reports whether the locale's catalog contains key.
func (t *Translator) Has(code locale.Code, key string) bool {
	msgs, ok := t.catalogs[code]
	if !ok {
		return false
	}
	_, ok = lookup(msgs, key)
	return ok
}

// T translates key for the given locale. Extra arguments are key-value pairs
// substituted into %{name} placeholders:
//
//	t.T("en", "home.greeting", "name", "Ada") // "Hello, Ada!"
//
// Missing keys fall back to the fallback locale's catalog, then to the key
// itself, so the UI always renders something addressable.
func (t *Translator) T(code locale.Code, key string, args ...string) string {
	if msg, ok := t.message(code, key); ok {
		return substitute(msg, pairs(args))
	}
	t.logger.Debug("missing translation", "locale", string(code), "key", key)
	return substitute(key, pairs(args))
}

// N translates key with pluralization. The plural form is selected by n via
// the ".zero", ".one" and ".other" key suffixes; "count" is implicitly added
// to the substitution arguments unless the caller supplied it.
func (t *Translator) N(code locale.Code, key string, n int, args ...string) string {
	params := pairs(args)
	if _, ok := params["count"]; !ok {
		params["count"] = strconv.Itoa(n)
	}

	for _, form := range pluralForms(n) {
		if msg, ok := t.message(code, key+"."+form); ok {
			return substitute(msg, params)
		}
	}
	if msg, ok := t.message(code, key); ok {
		return substitute(msg, params)
	}

	t.logger.Debug("missing plural translation", "locale", string(code), "key", key, "n", n)
	return substitute(key, params)
}

// Tc translates key using the locale carried by ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(locale.GetLocale(ctx), key, args...)
}

// Nc translates a plural key using the locale carried by ctx.
func (t *Translator) Nc(ctx context.Context, key string, n int, args ...string) string {
	return t.N(locale.GetLocale(ctx), key, n, args...)
}

// MessagesJSON returns the locale's full catalog as JSON, for handing the
// messages to client-side code.
func (t *Translator) MessagesJSON(code locale.Code) (string, error) {
	msgs, ok := t.catalogs[code]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLocaleNotLoaded, code)
	}
	raw, err := json.Marshal(msgs)
	if err != nil {
		return "", errors.Join(ErrDecodeFailed, err)
	}
	return string(raw), nil
}

// message resolves key in the requested locale, then in the fallback locale.
func (t *Translator) message(code locale.Code, key string) (string, bool) {
	if msgs, ok := t.catalogs[code]; ok {
		if val, ok := lookup(msgs, key); ok {
			return val, true
		}
	}
	if code != t.fallback {
		if msgs, ok := t.catalogs[t.fallback]; ok {
			if val, ok := lookup(msgs, key); ok {
				return val, true
			}
		}
	}
	return "", false
}

// pluralForms returns the key suffixes to try for n, most specific first.
func pluralForms(n int) []string {
	switch n {
	case 0:
		return []string{"zero", "other"}
	case 1:
		return []string{"one"}
	default:
		return []string{"other"}
	}
}

// lookup traverses a nested catalog using dot-separated keys:
// "home.nav.title" resolves msgs["home"]["nav"]["title"].
// Only string leaves count as translations.
func lookup(msgs Messages, key string) (string, bool) {
	parts := strings.Split(key, ".")
	current := map[string]any(msgs)

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := val.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

var placeholderRe = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders with values from params,
// leaving unknown placeholders untouched.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

// pairs converts key-value argument lists into a map.
// A trailing odd argument is ignored.
func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}
