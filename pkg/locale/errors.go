package locale

import "errors"

var (
	// ErrInvalidLocale indicates a locale code that is not part of the catalog.
	// It is always wrapped with the rejected input, e.g. "invalid locale: de".
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrNoNavigator indicates a locale change was requested on a navigation
	// context that has no navigation sink attached.
	ErrNoNavigator = errors.New("navigation context has no navigator")
)
