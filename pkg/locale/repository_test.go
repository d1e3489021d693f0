package locale_test

import (
	"testing"

	"github.com/dmitrymomot/webstarter/pkg/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNavigator captures navigation requests for assertions.
type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.paths = append(n.paths, path)
}

func TestPathRepositoryCurrent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected locale.Code
	}{
		{name: "valid segment", path: "/th/settings", expected: "th"},
		{name: "default segment", path: "/en", expected: "en"},
		{name: "unknown segment falls back", path: "/fr/settings", expected: locale.Default},
		{name: "garbage segment falls back", path: "/not-a-locale", expected: locale.Default},
		{name: "root falls back", path: "/", expected: locale.Default},
		{name: "empty path falls back", path: "", expected: locale.Default},
		{name: "uppercase is not a match", path: "/EN/settings", expected: locale.Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := locale.NewPathRepository(locale.NavigationContext{Path: tt.path})
			got := repo.Current()
			assert.Equal(t, tt.expected, got)
			assert.True(t, locale.IsValid(string(got)), "Current must always return a catalog member")
		})
	}
}

func TestPathRepositorySet(t *testing.T) {
	t.Parallel()

	t.Run("navigates to rewritten path", func(t *testing.T) {
		t.Parallel()
		nav := &recordingNavigator{}
		repo := locale.NewPathRepository(locale.NavigationContext{Path: "/en/dashboard", Navigator: nav})

		require.NoError(t, repo.Set("th"))
		require.Len(t, nav.paths, 1)
		assert.Equal(t, "/th/dashboard", nav.paths[0])
	})

	t.Run("setting current locale is a no-op", func(t *testing.T) {
		t.Parallel()
		nav := &recordingNavigator{}
		repo := locale.NewPathRepository(locale.NavigationContext{Path: "/en/dashboard", Navigator: nav})

		require.NoError(t, repo.Set("en"))
		assert.Empty(t, nav.paths, "no navigation expected for redundant switch")
	})

	t.Run("invalid code is rejected", func(t *testing.T) {
		t.Parallel()
		nav := &recordingNavigator{}
		repo := locale.NewPathRepository(locale.NavigationContext{Path: "/en", Navigator: nav})

		err := repo.Set("xx")
		assert.ErrorIs(t, err, locale.ErrInvalidLocale)
		assert.Empty(t, nav.paths)
	})

	t.Run("missing navigator", func(t *testing.T) {
		t.Parallel()
		repo := locale.NewPathRepository(locale.NavigationContext{Path: "/en/settings"})
		assert.ErrorIs(t, repo.Set("th"), locale.ErrNoNavigator)
	})
}

func TestPathRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	nav := &recordingNavigator{}
	path := "/en/settings"

	repo := locale.NewPathRepository(locale.NavigationContext{Path: path, Navigator: nav})
	require.NoError(t, repo.Set("th"))
	require.Len(t, nav.paths, 1)

	// Simulate the navigation taking effect, then switch back.
	repo = locale.NewPathRepository(locale.NavigationContext{Path: nav.paths[0], Navigator: nav})
	require.NoError(t, repo.Set("en"))
	require.Len(t, nav.paths, 2)
	assert.Equal(t, path, nav.paths[1])
}
