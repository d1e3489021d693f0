// Package handler provides typed HTTP handlers: requests are bound into
// plain structs by binder functions, and handlers return a Response that
// knows how to render itself as JSON, a redirect, or a templ component
// (with datastar-aware SSE variants for the latter two).
package handler
