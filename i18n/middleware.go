package i18n

import (
	"net/http"
	"strings"
)

// LocaleExtractor extracts a locale candidate from an HTTP request.
type LocaleExtractor func(r *http.Request) string

// DefaultExtractor checks, in priority order: the locale cookie, the
// "lang" query parameter, then Accept-Language negotiation against the
// provider's supported set. It returns "" when nothing usable is found.
func DefaultExtractor(p *Provider, cookieName string) LocaleExtractor {
	return func(r *http.Request) string {
		if saved, ok := LocaleFromRequest(r, cookieName); ok {
			if locale := NormalizeLocale(saved, p.Locales()); locale != "" {
				return locale
			}
		}
		if lang := strings.TrimSpace(r.URL.Query().Get("lang")); lang != "" {
			if locale := NormalizeLocale(lang, p.Locales()); locale != "" {
				return locale
			}
		}
		return NegotiateLocale(r.Header.Get("Accept-Language"), p.Locales(), "")
	}
}

// Middleware resolves each request's locale and stores it in the
// request context, so handlers can render with TranslateCtx. The
// request blocks until the locale's dictionary is cached (a one-time
// cost per locale); rendering then stays synchronous. A nil extractor
// uses DefaultExtractor with the default cookie name.
func Middleware(p *Provider, extr LocaleExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultExtractor(p, DefaultCookieName)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := extr(r)
			if locale == "" {
				locale = p.loader.DefaultLocale()
			}
			// Errors degrade to the fallback chain.
			_, _ = p.loader.Load(r.Context(), locale)

			next.ServeHTTP(w, r.WithContext(ContextWithLocale(r.Context(), locale)))
		})
	}
}
