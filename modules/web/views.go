package web

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/webstarter/pkg/i18n"
	"github.com/dmitrymomot/webstarter/pkg/locale"
)

// Layout wraps body in the page shell. The html element carries the active
// locale's lang and dir attributes so assistive tech picks up the language.
func Layout(t *i18n.Translator, code locale.Code, title string, path string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		dir := locale.DirectionLTR
		if l, ok := locale.Get(code); ok {
			dir = l.Direction
		}

		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang=%q dir=%q><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title></head><body><header>`,
			code, dir, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := Switcher(t, code, path).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</header><main id="content">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// Switcher renders one link per catalog locale. The active locale is marked
// with aria-current; the other links point at the switch endpoint, carrying
// the current path rewritten to the target locale.
func Switcher(t *i18n.Translator, current locale.Code, path string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<nav class="locale-switcher" aria-label=%q>`,
			templ.EscapeString(t.T(current, "switcher.label"))); err != nil {
			return err
		}
		for _, l := range locale.Supported() {
			href := "/locale/" + string(l.Code) + "?to=" + url.QueryEscape(locale.ReplaceSegment(path, l.Code))
			ariaCurrent := ""
			if l.Code == current {
				ariaCurrent = ` aria-current="true"`
			}
			if _, err := fmt.Fprintf(w,
				`<a href="%s"%s hreflang=%q><img src=%q alt="" width="20" height="14">%s</a>`,
				templ.EscapeString(href), ariaCurrent, l.Code, l.Flag,
				templ.EscapeString(l.NativeName)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</nav>`)
		return err
	})
}

// HomePage is the localized landing page.
func HomePage(t *i18n.Translator, code locale.Code, path string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%s</h1><p>%s</p><p>%s</p>`,
			templ.EscapeString(t.T(code, "home.greeting", "name", "Gopher")),
			templ.EscapeString(t.T(code, "home.description")),
			templ.EscapeString(t.T(code, "home.api_hint", "path", "/api/users")))
		return err
	})
	return Layout(t, code, t.T(code, "home.title"), path, body)
}
