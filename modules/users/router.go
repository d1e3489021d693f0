// Package users exposes the demo users API: a JSON CRUD surface over an
// in-memory store, with no auth and no persistence. Responses follow the
// application-wide {data, count?} / {error} shape.
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/webstarter/binder"
	"github.com/dmitrymomot/webstarter/handler"
)

type listRequest struct{}

type getRequest struct {
	ID int `path:"id"`
}

type createRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type updateRequest struct {
	ID int `path:"id"`
	Update
}

type deleteRequest struct {
	ID int `path:"id"`
}

// Router mounts the users CRUD API on a fresh chi router.
func Router(store *Store) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(
		handler.HandlerFunc[handler.Context, listRequest](func(ctx handler.Context, _ listRequest) handler.Response {
			all := store.List()
			return handler.JSONList(all, len(all))
		}),
	))

	r.Post("/", handler.Wrap(
		handler.HandlerFunc[handler.Context, createRequest](func(ctx handler.Context, req createRequest) handler.Response {
			if req.Name == "" || req.Email == "" {
				return handler.Error("name and email are required", http.StatusBadRequest)
			}
			return handler.JSONWithStatus(store.Create(req.Name, req.Email, req.Role), http.StatusCreated)
		}),
		handler.WithBinders[handler.Context, createRequest](binder.JSON()),
	))

	r.Get("/{id}", handler.Wrap(
		handler.HandlerFunc[handler.Context, getRequest](func(ctx handler.Context, req getRequest) handler.Response {
			u, ok := store.Get(req.ID)
			if !ok {
				return handler.Error("user not found", http.StatusNotFound)
			}
			return handler.JSON(u)
		}),
		handler.WithBinders[handler.Context, getRequest](binder.Path(chi.URLParam)),
	))

	r.Patch("/{id}", handler.Wrap(
		handler.HandlerFunc[handler.Context, updateRequest](func(ctx handler.Context, req updateRequest) handler.Response {
			u, ok := store.Update(req.ID, req.Update)
			if !ok {
				return handler.Error("user not found", http.StatusNotFound)
			}
			return handler.JSON(u)
		}),
		handler.WithBinders[handler.Context, updateRequest](binder.Path(chi.URLParam), binder.JSON()),
	))

	r.Delete("/{id}", handler.Wrap(
		handler.HandlerFunc[handler.Context, deleteRequest](func(ctx handler.Context, req deleteRequest) handler.Response {
			u, ok := store.Delete(req.ID)
			if !ok {
				return handler.Error("user not found", http.StatusNotFound)
			}
			return handler.JSON(u)
		}),
		handler.WithBinders[handler.Context, deleteRequest](binder.Path(chi.URLParam)),
	))

	return r
}
