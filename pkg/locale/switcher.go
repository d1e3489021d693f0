package locale

import "fmt"

// Switcher bundles a Repository with the catalog access a switcher UI needs.
// It holds no state of its own; handlers construct one per request from the
// request's navigation context.
type Switcher struct {
	repo Repository
}

// NewSwitcher returns a Switcher delegating to repo.
func NewSwitcher(repo Repository) Switcher {
	return Switcher{repo: repo}
}

// Current returns the active locale.
func (s Switcher) Current() Code {
	return s.repo.Current()
}

// Locales returns the full catalog for rendering a switcher UI.
func (s Switcher) Locales() []Locale {
	return Supported()
}

// Switch validates input against the catalog and requests the change.
// Invalid input fails fast with ErrInvalidLocale wrapping the rejected code;
// switching to the already-active locale succeeds without navigating.
func (s Switcher) Switch(input string) (Code, error) {
	if !s.repo.Valid(input) {
		return "", fmt.Errorf("%w: %s", ErrInvalidLocale, input)
	}
	code := Code(input)
	if err := s.repo.Set(code); err != nil {
		return "", err
	}
	return code, nil
}
