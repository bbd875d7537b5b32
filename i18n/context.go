package i18n

import "context"

// localeContextKey is the key for storing a locale override in context.
type localeContextKey struct{}

// ContextWithLocale returns a context carrying a locale override for
// request-scoped rendering.
func ContextWithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the locale override stored in the context,
// or "" when none is set.
func LocaleFromContext(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale
}
