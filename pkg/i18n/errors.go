package i18n

import "errors"

var (
	// ErrNilSource is returned when a Translator is created without a source.
	ErrNilSource = errors.New("translation source is nil")

	// ErrNoMessages is returned when a source yields no message catalogs at all.
	ErrNoMessages = errors.New("no message catalogs loaded")

	// ErrLoadCancelled wraps context cancellation during catalog loading.
	ErrLoadCancelled = errors.New("loading message catalogs cancelled")

	// ErrReadFailed wraps filesystem errors while reading a catalog file.
	ErrReadFailed = errors.New("failed to read message catalog")

	// ErrDecodeFailed wraps parse errors of a catalog file.
	ErrDecodeFailed = errors.New("failed to decode message catalog")

	// ErrLocaleNotLoaded indicates a catalog locale with no loaded messages.
	ErrLocaleNotLoaded = errors.New("no messages loaded for locale")
)
