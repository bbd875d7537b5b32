package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is the hardcoded last-resort locale.
const DefaultLocale = "en"

// maxLocaleLength bounds locale codes taken from untrusted input.
// RFC 5646 recommends 35 characters as the longest plausible tag.
const maxLocaleLength = 35

// NormalizeLocale validates a candidate locale against the supported
// set and returns the matching supported code, or "" when the candidate
// is unknown. Matching is case-insensitive and falls back from a
// regional tag to its base language (en-US matches en).
func NormalizeLocale(candidate string, supported []string) string {
	candidate = strings.ToLower(strings.TrimSpace(candidate))
	if candidate == "" || len(candidate) > maxLocaleLength {
		return ""
	}
	for _, s := range supported {
		if strings.ToLower(s) == candidate {
			return s
		}
	}
	if idx := strings.Index(candidate, "-"); idx > 0 {
		base := candidate[:idx]
		for _, s := range supported {
			if strings.ToLower(s) == base {
				return s
			}
		}
	}
	return ""
}

// NegotiateLocale picks the best supported locale for an Accept-Language
// header, returning fallback when nothing matches. Negotiation uses
// x/text language matching, which honors quality values and base
// language distances (en-US;q=0.8 matches a supported "en").
func NegotiateLocale(acceptLanguage string, supported []string, fallback string) string {
	if acceptLanguage == "" || len(supported) == 0 {
		return fallback
	}

	codes := make([]string, 0, len(supported))
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		codes = append(codes, s)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return fallback
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	matcher := language.NewMatcher(tags)
	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return fallback
	}
	return codes[idx]
}
