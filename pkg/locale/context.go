package locale

import "context"

type localeContextKey struct{}

// SetLocale stores the locale in the context.
func SetLocale(ctx context.Context, code Code) context.Context {
	return context.WithValue(ctx, localeContextKey{}, code)
}

// GetLocale returns the locale from the context.
// If no valid locale is set it returns Default.
func GetLocale(ctx context.Context) Code {
	code, _ := ctx.Value(localeContextKey{}).(Code)
	if _, ok := Get(code); !ok {
		return Default
	}
	return code
}
