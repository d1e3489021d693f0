package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

type templResponse struct {
	component templ.Component
	options   []datastar.PatchElementOption
}

// Render writes the component as HTML, or patches it into the page over SSE
// for datastar requests.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.component.Render(r.Context(), w)
}

// Templ renders a templ component as the response body.
func Templ(component templ.Component, opts ...datastar.PatchElementOption) Response {
	return templResponse{component: component, options: opts}
}

// WithTarget sets the selector the component is patched into on datastar requests.
func WithTarget(selector string) datastar.PatchElementOption {
	return datastar.WithSelector(selector)
}
