package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/dmitrymomot/webstarter/pkg/i18n"
	"github.com/dmitrymomot/webstarter/pkg/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSSource(t *testing.T) {
	t.Parallel()

	t.Run("loads json and yaml by basename", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"messages/en.json": {Data: []byte(`{"home": {"title": "Welcome"}}`)},
			"messages/th.yml":  {Data: []byte("home:\n  title: ยินดีต้อนรับ\n")},
		}

		catalogs, err := i18n.NewFSSource(fsys, "messages").Load(context.Background())
		require.NoError(t, err)
		require.Len(t, catalogs, 2)
		assert.Contains(t, catalogs, locale.Code("en"))
		assert.Contains(t, catalogs, locale.Code("th"))
	})

	t.Run("skips files outside the catalog", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"messages/en.json":  {Data: []byte(`{"k": "v"}`)},
			"messages/fr.json":  {Data: []byte(`{"k": "v"}`)},
			"messages/README.md": {Data: []byte("# notes")},
		}

		catalogs, err := i18n.NewFSSource(fsys, "messages").Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, catalogs, 1)
		assert.Contains(t, catalogs, locale.Code("en"))
	})

	t.Run("invalid json aborts the load", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"messages/en.json": {Data: []byte(`{broken`)},
		}

		_, err := i18n.NewFSSource(fsys, "messages").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrDecodeFailed)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSSource(fstest.MapFS{}, "messages").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrReadFailed)
	})

	t.Run("no usable files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"messages/notes.txt": {Data: []byte("nothing")},
		}
		_, err := i18n.NewFSSource(fsys, "messages").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoMessages)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fsys := fstest.MapFS{
			"messages/en.json": {Data: []byte(`{"k": "v"}`)},
		}
		_, err := i18n.NewFSSource(fsys, "messages").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadCancelled)
	})

	t.Run("nil filesystem", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSSource(nil, "messages").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNilSource)
	})
}
