package locale

// Code identifies a supported locale. The set of valid codes is closed and
// extended only by editing the catalog, never at runtime.
type Code string

// Direction is the text direction of a locale.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Locale is a single entry of the supported-locale catalog. Entries are
// immutable; the Flag field is a static asset path rendered by the switcher UI.
type Locale struct {
	Code       Code
	Name       string
	NativeName string
	Flag       string
	Direction  Direction
}
