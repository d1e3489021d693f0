package users_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrymomot/webstarter/modules/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiBody struct {
	Data  json.RawMessage `json:"data"`
	Count *int            `json:"count"`
	Error string          `json:"error"`
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, apiBody) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var parsed apiBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	return rec, parsed
}

func TestRouterList(t *testing.T) {
	t.Parallel()
	r := users.Router(users.NewStore())

	rec, body := doJSON(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, body.Count)
	assert.Equal(t, 3, *body.Count)

	var list []users.User
	require.NoError(t, json.Unmarshal(body.Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, "John Doe", list[0].Name)
}

func TestRouterCreate(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		r := users.Router(users.NewStore())

		rec, body := doJSON(t, r, http.MethodPost, "/", `{"name":"Ada Lovelace","email":"ada@example.com","role":"admin"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var u users.User
		require.NoError(t, json.Unmarshal(body.Data, &u))
		assert.Equal(t, 4, u.ID)
		assert.Equal(t, "admin", u.Role)
	})

	t.Run("role defaults to user", func(t *testing.T) {
		t.Parallel()
		r := users.Router(users.NewStore())

		rec, body := doJSON(t, r, http.MethodPost, "/", `{"name":"Ada Lovelace","email":"ada@example.com"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var u users.User
		require.NoError(t, json.Unmarshal(body.Data, &u))
		assert.Equal(t, "user", u.Role)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()
		r := users.Router(users.NewStore())

		rec, body := doJSON(t, r, http.MethodPost, "/", `{"name":"Ada Lovelace"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "name and email are required", body.Error)
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()
		r := users.Router(users.NewStore())

		rec, body := doJSON(t, r, http.MethodPost, "/", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEmpty(t, body.Error)
	})
}

func TestRouterGet(t *testing.T) {
	t.Parallel()
	r := users.Router(users.NewStore())

	t.Run("found", func(t *testing.T) {
		rec, body := doJSON(t, r, http.MethodGet, "/2", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var u users.User
		require.NoError(t, json.Unmarshal(body.Data, &u))
		assert.Equal(t, "Jane Smith", u.Name)
	})

	t.Run("not found", func(t *testing.T) {
		rec, body := doJSON(t, r, http.MethodGet, "/999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "user not found", body.Error)
	})
}

func TestRouterUpdate(t *testing.T) {
	t.Parallel()
	r := users.Router(users.NewStore())

	t.Run("partial update", func(t *testing.T) {
		rec, body := doJSON(t, r, http.MethodPatch, "/1", `{"name":"Johnny Doe"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		var u users.User
		require.NoError(t, json.Unmarshal(body.Data, &u))
		assert.Equal(t, "Johnny Doe", u.Name)
		assert.Equal(t, "john@example.com", u.Email)
	})

	t.Run("not found", func(t *testing.T) {
		rec, body := doJSON(t, r, http.MethodPatch, "/999", `{"name":"Nobody"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "user not found", body.Error)
	})
}

func TestRouterDelete(t *testing.T) {
	t.Parallel()
	r := users.Router(users.NewStore())

	t.Run("deleted", func(t *testing.T) {
		rec, body := doJSON(t, r, http.MethodDelete, "/3", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var u users.User
		require.NoError(t, json.Unmarshal(body.Data, &u))
		assert.Equal(t, "Bob Johnson", u.Name)

		rec, _ = doJSON(t, r, http.MethodGet, "/3", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		rec, body := doJSON(t, r, http.MethodDelete, "/999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "user not found", body.Error)
	})
}
