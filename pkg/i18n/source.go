package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/webstarter/pkg/locale"
)

// Messages is the decoded content of a single locale's catalog file.
// Values are either strings or nested maps addressed with dot-notation keys.
type Messages map[string]any

// Source loads message catalogs keyed by locale.
type Source interface {
	Load(ctx context.Context) (map[locale.Code]Messages, error)
}

// MapSource serves catalogs from memory. Useful for tests and defaults.
type MapSource map[locale.Code]Messages

func (s MapSource) Load(context.Context) (map[locale.Code]Messages, error) {
	return s, nil
}

// FSSource loads catalogs from a directory where each file holds the messages
// of one locale and the locale code is the file basename: "en.json", "th.yml".
// Files whose basename is not a catalog locale are skipped. JSON and YAML are
// supported, chosen by extension.
type FSSource struct {
	fsys fs.FS
	dir  string
}

// NewFSSource returns a source reading from dir inside fsys.
// Works with os.DirFS for development and embed.FS for shipping catalogs
// inside the binary.
func NewFSSource(fsys fs.FS, dir string) *FSSource {
	return &FSSource{fsys: fsys, dir: dir}
}

// Load reads every recognized catalog file in the directory.
// A file that fails to decode aborts the load: shipping a half-loaded locale
// would surface as missing translations at runtime instead of at startup.
func (s *FSSource) Load(ctx context.Context) (map[locale.Code]Messages, error) {
	if s == nil || s.fsys == nil {
		return nil, ErrNilSource
	}

	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}

	catalogs := make(map[locale.Code]Messages)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}

		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		code, err := locale.Parse(strings.TrimSuffix(name, ext))
		if err != nil {
			continue // not a catalog locale, e.g. README.md
		}

		content, err := fs.ReadFile(s.fsys, path.Join(s.dir, name))
		if err != nil {
			return nil, errors.Join(ErrReadFailed, err)
		}

		var msgs Messages
		switch ext {
		case ".json":
			err = json.Unmarshal(content, &msgs)
		case ".yaml", ".yml":
			err = yaml.Unmarshal(content, &msgs)
		default:
			continue
		}
		if err != nil {
			return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("file %q: %w", name, err))
		}

		if existing, ok := catalogs[code]; ok {
			// Same locale in two formats: later files extend earlier ones.
			for k, v := range msgs {
				existing[k] = v
			}
			continue
		}
		catalogs[code] = msgs
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("%w: directory %q", ErrNoMessages, s.dir)
	}
	return catalogs, nil
}
