package format

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// defaultTag is the formatting fallback for unrecognized locales.
var defaultTag = language.English

// tagFor parses a locale into a language tag, falling back to English
// rather than failing. Formatters never error on unsupported locales.
func tagFor(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return defaultTag
	}
	return tag
}

// Number formats v with the locale's digit grouping and decimal
// separator, e.g. 1234567.5 as "1,234,567.5" for en and "1.234.567,5"
// for de.
func Number(v float64, locale string, opts ...number.Option) string {
	p := message.NewPrinter(tagFor(locale))
	return p.Sprintf("%v", number.Decimal(v, opts...))
}

// Integer formats n with the locale's digit grouping.
func Integer(n int64, locale string) string {
	p := message.NewPrinter(tagFor(locale))
	return p.Sprintf("%v", number.Decimal(n))
}

// Percent formats a ratio (0.42 → "42%") with the locale's conventions.
func Percent(ratio float64, locale string) string {
	p := message.NewPrinter(tagFor(locale))
	return p.Sprintf("%v", number.Percent(ratio))
}

// currencyStyle describes where a locale places the currency symbol.
type currencyStyle struct {
	after bool
	space bool
}

var currencyStyles = map[string]currencyStyle{
	"en": {after: false, space: false},
	"de": {after: true, space: true},
	"fr": {after: true, space: true},
	"es": {after: true, space: true},
	"pt": {after: false, space: true},
	"ja": {after: false, space: false},
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"BRL": "R$",
	"CHF": "CHF",
}

// Currency formats amount in the given ISO 4217 currency for the
// locale: the amount uses the locale's number conventions and the
// symbol is placed per local convention. Unknown currency codes render
// with the code itself as the symbol.
func Currency(amount float64, locale, code string) string {
	code = strings.ToUpper(code)
	symbol := currencySymbols[code]
	if symbol == "" {
		if unit, err := currency.ParseISO(code); err == nil {
			symbol = unit.String()
		} else {
			symbol = code
		}
	}

	digits := 2
	if unit, err := currency.ParseISO(code); err == nil {
		if scale, _ := currency.Standard.Rounding(unit); scale >= 0 {
			digits = scale
		}
	}

	value := Number(amount, locale,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	)

	style := currencyStyles[baseLang(locale)]
	sep := ""
	if style.space {
		sep = " "
	}
	if style.after {
		return value + sep + symbol
	}
	return symbol + sep + value
}

func baseLang(locale string) string {
	locale = strings.ToLower(locale)
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		return locale[:idx]
	}
	return locale
}
