package locale

import "fmt"

// Default is the locale used whenever no valid locale can be determined.
// It must always be a member of the catalog.
const Default Code = "en"

// catalog is the authoritative list of supported locales. Codes are unique and
// the slice order defines the rendering order of the switcher UI.
var catalog = []Locale{
	{Code: "en", Name: "English", NativeName: "English", Flag: "/flags/us.svg", Direction: DirectionLTR},
	{Code: "th", Name: "Thai", NativeName: "ไทย", Flag: "/flags/th.svg", Direction: DirectionLTR},
}

var byCode = func() map[Code]Locale {
	m := make(map[Code]Locale, len(catalog))
	for _, l := range catalog {
		if _, dup := m[l.Code]; dup {
			panic(fmt.Sprintf("locale: duplicate catalog code %q", l.Code))
		}
		m[l.Code] = l
	}
	if _, ok := m[Default]; !ok {
		panic(fmt.Sprintf("locale: default %q missing from catalog", Default))
	}
	return m
}()

// Supported returns the full catalog. The returned slice is a copy; mutating it
// does not affect the catalog.
func Supported() []Locale {
	out := make([]Locale, len(catalog))
	copy(out, catalog)
	return out
}

// Codes returns the catalog codes in catalog order.
func Codes() []Code {
	out := make([]Code, len(catalog))
	for i, l := range catalog {
		out[i] = l.Code
	}
	return out
}

// Get returns the catalog entry for code.
func Get(code Code) (Locale, bool) {
	l, ok := byCode[code]
	return l, ok
}

// IsValid reports whether input names a supported locale.
// Matching is exact and case-sensitive: "EN" is not a valid code.
func IsValid(input string) bool {
	_, ok := byCode[Code(input)]
	return ok
}

// Parse narrows input to a Code, failing with ErrInvalidLocale when input is
// not part of the catalog. The error message includes the rejected input.
func Parse(input string) (Code, error) {
	if !IsValid(input) {
		return "", fmt.Errorf("%w: %s", ErrInvalidLocale, input)
	}
	return Code(input), nil
}
