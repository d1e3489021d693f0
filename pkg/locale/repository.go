package locale

import "fmt"

// Repository abstracts reading and changing the active locale, decoupling the
// use-case layer from the hosting transport.
type Repository interface {
	// Current returns the active locale. Implementations must always return a
	// catalog member, falling back to Default rather than exposing an invalid state.
	Current() Code

	// Set requests a change to the given locale. Setting the already-active
	// locale is a no-op; no navigation is triggered.
	Set(code Code) error

	// Valid reports whether input names a supported locale.
	Valid(input string) bool
}

// PathRepository implements Repository against a URL path whose leading
// segment encodes the locale, mirroring the /{locale}/... route convention.
// It is stateless beyond the navigation context it was built from and is cheap
// to construct per request.
type PathRepository struct {
	nav NavigationContext
}

// NewPathRepository returns a repository bound to the given navigation context.
func NewPathRepository(nav NavigationContext) *PathRepository {
	return &PathRepository{nav: nav}
}

// Current reads the locale segment from the path. Unknown or absent segments
// fall back to Default so malformed URLs never surface an invalid locale.
func (r *PathRepository) Current() Code {
	segment, _ := SplitPath(r.nav.Path)
	if code, err := Parse(segment); err == nil {
		return code
	}
	return Default
}

// Set rewrites the locale segment of the current path and hands the result to
// the navigator. Switching to the already-active locale does nothing.
func (r *PathRepository) Set(code Code) error {
	if !IsValid(string(code)) {
		return fmt.Errorf("%w: %s", ErrInvalidLocale, code)
	}
	if code == r.Current() {
		return nil
	}
	if r.nav.Navigator == nil {
		return ErrNoNavigator
	}
	r.nav.Navigator.Navigate(ReplaceSegment(r.nav.Path, code))
	return nil
}

// Valid reports whether input names a supported locale.
func (r *PathRepository) Valid(input string) bool {
	return IsValid(input)
}
