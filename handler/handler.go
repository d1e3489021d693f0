package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/webstarter/binder"
)

// HandlerFunc is a typed HTTP handler: R is bound from the request, the
// returned Response renders itself.
//
//	get := handler.HandlerFunc[handler.Context, userRequest](
//		func(ctx handler.Context, req userRequest) handler.Response {
//			return handler.JSON(user)
//		},
//	)
//	r.Get("/users/{id}", handler.Wrap(get, handler.WithBinders[handler.Context, userRequest](binder.Path(chi.URLParam))))
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter. Implementations set
// headers, status code and body; render errors go to the error handler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses an HTTP request into a typed value.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders      []Bind
	errorHandler ErrorHandler[C]
}

// WithBinders sets the request binders, applied in order. Binders returning
// binder.ErrNotApplicable are skipped so one handler can accept both path
// parameters and an optional JSON body.
func WithBinders[C Context, R any](binds ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binds...)
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// defaultErrorHandler maps binding errors to 400 and everything else to 500,
// in the application's JSON error shape.
func defaultErrorHandler[C Context](ctx C, err error) {
	status := http.StatusInternalServerError
	if binder.IsBindError(err) {
		status = http.StatusBadRequest
	}
	_ = Error(err.Error(), status).Render(ctx.ResponseWriter(), ctx.Request())
}

// Wrap converts a typed HandlerFunc into an http.HandlerFunc.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, ok := NewContext(w, r).(C)
		if !ok {
			panic("handler: context type C is not satisfied by the default context")
		}

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
