package i18n_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dmitrymomot/webstarter/pkg/i18n"
	"github.com/dmitrymomot/webstarter/pkg/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTranslator(t *testing.T) *i18n.Translator {
	t.Helper()

	src := i18n.MapSource{
		"en": {
			"home": map[string]any{
				"greeting": "Hello, %{name}!",
				"title":    "Welcome",
			},
			"users": map[string]any{
				"count": map[string]any{
					"zero":  "No users",
					"one":   "One user",
					"other": "%{count} users",
				},
			},
			"only_en": "English only",
		},
		"th": {
			"home": map[string]any{
				"greeting": "สวัสดี %{name}!",
			},
		},
	}

	tr, err := i18n.New(context.Background(), src)
	require.NoError(t, err)
	return tr
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil source", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilSource)
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(context.Background(), i18n.MapSource{})
		assert.ErrorIs(t, err, i18n.ErrNoMessages)
	})

	t.Run("locales sorted", func(t *testing.T) {
		t.Parallel()
		tr := testTranslator(t)
		assert.Equal(t, []locale.Code{"en", "th"}, tr.Locales())
	})
}

func TestT(t *testing.T) {
	t.Parallel()
	tr := testTranslator(t)

	t.Run("simple lookup", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Welcome", tr.T("en", "home.title"))
	})

	t.Run("placeholder substitution", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello, Ada!", tr.T("en", "home.greeting", "name", "Ada"))
	})

	t.Run("unknown placeholder left untouched", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello, %{name}!", tr.T("en", "home.greeting", "who", "Ada"))
	})

	t.Run("missing key falls back to fallback locale", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "English only", tr.T("th", "only_en"))
	})

	t.Run("missing everywhere falls back to key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "home.missing", tr.T("en", "home.missing"))
	})

	t.Run("unloaded locale uses fallback catalog", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Welcome", tr.T("xx", "home.title"))
	})

	t.Run("non-string node is not a translation", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "home", tr.T("en", "home"))
	})
}

func TestN(t *testing.T) {
	t.Parallel()
	tr := testTranslator(t)

	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{name: "zero form", n: 0, expected: "No users"},
		{name: "one form", n: 1, expected: "One user"},
		{name: "other form", n: 5, expected: "5 users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tr.N("en", "users.count", tt.n))
		})
	}

	t.Run("explicit count argument wins", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "five users", tr.N("en", "users.count", 5, "count", "five"))
	})
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()
	tr := testTranslator(t)

	ctx := locale.SetLocale(context.Background(), "th")
	assert.Equal(t, "สวัสดี Ada!", tr.Tc(ctx, "home.greeting", "name", "Ada"))

	// Without a locale in context, the default locale catalog answers.
	assert.Equal(t, "Welcome", tr.Tc(context.Background(), "home.title"))
}

func TestHas(t *testing.T) {
	t.Parallel()
	tr := testTranslator(t)

	assert.True(t, tr.Has("en", "home.greeting"))
	assert.False(t, tr.Has("th", "only_en"), "Has must not consult the fallback catalog")
	assert.False(t, tr.Has("en", "nope"))
}

func TestMessagesJSON(t *testing.T) {
	t.Parallel()
	tr := testTranslator(t)

	raw, err := tr.MessagesJSON("th")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Contains(t, decoded, "home")

	_, err = tr.MessagesJSON("xx")
	assert.ErrorIs(t, err, i18n.ErrLocaleNotLoaded)
}
