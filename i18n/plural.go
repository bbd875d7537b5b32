package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Form is a CLDR plural category name, matching the variant sub-keys
// used in dictionaries (items.one, items.few, items.other, ...).
type Form string

const (
	FormZero  Form = "zero"
	FormOne   Form = "one"
	FormTwo   Form = "two"
	FormFew   Form = "few"
	FormMany  Form = "many"
	FormOther Form = "other"
)

// PluralForm returns the CLDR cardinal category for count in the given
// locale. Category selection uses the count's absolute value and is
// delegated entirely to the CLDR rule data, so no per-language rule
// tables are maintained here. Unparsable locales use English rules.
func PluralForm(locale string, count int) Form {
	if count < 0 {
		count = -count
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	switch plural.Cardinal.MatchPlural(tag, count, 0, 0, 0, 0) {
	case plural.Zero:
		return FormZero
	case plural.One:
		return FormOne
	case plural.Two:
		return FormTwo
	case plural.Few:
		return FormFew
	case plural.Many:
		return FormMany
	default:
		return FormOther
	}
}

// ResolvePlural selects the variant for count from the given variant
// set, falling back to the "other" category when the locale's category
// is absent (many dictionaries only define one/other). The count is
// made available to interpolation as {count} unless the caller already
// supplied one. Returns "" when no usable variant exists.
func ResolvePlural(variants map[string]string, count int, locale string, params Params) string {
	if len(variants) == 0 {
		return ""
	}
	template, ok := variants[string(PluralForm(locale, count))]
	if !ok {
		template, ok = variants[string(FormOther)]
	}
	if !ok {
		return ""
	}
	return Resolve(template, withCount(params, count))
}

// withCount returns params with a count entry, copying the map so the
// caller's view is never mutated.
func withCount(params Params, count int) Params {
	if _, ok := params["count"]; ok {
		return params
	}
	merged := make(Params, len(params)+1)
	for k, v := range params {
		merged[k] = v
	}
	merged["count"] = count
	return merged
}
