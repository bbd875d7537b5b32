package format

import (
	"strconv"
	"strings"
	"time"
)

// DateStyle selects the verbosity of a formatted date.
type DateStyle int

const (
	StyleShort DateStyle = iota
	StyleMedium
	StyleLong
)

// dateRule carries a locale's date patterns. Short is a plain Go time
// layout; medium and long are templates over {day}, {mon}, {month},
// {monthnum} and {year}, since Go's time package only renders English
// month names.
type dateRule struct {
	short       string
	medium      string
	long        string
	months      [12]string
	monthsShort [12]string
}

var dateRules = map[string]dateRule{
	"en": {
		short:  "1/2/2006",
		medium: "{mon} {day}, {year}",
		long:   "{month} {day}, {year}",
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		monthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	},
	"de": {
		short:  "02.01.2006",
		medium: "{day}. {mon} {year}",
		long:   "{day}. {month} {year}",
		months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		monthsShort: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
			"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	},
	"fr": {
		short:  "02/01/2006",
		medium: "{day} {mon} {year}",
		long:   "{day} {month} {year}",
		months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		monthsShort: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc."},
	},
	"es": {
		short:  "2/1/2006",
		medium: "{day} {mon} {year}",
		long:   "{day} de {month} de {year}",
		months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		monthsShort: [12]string{"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sept", "oct", "nov", "dic"},
	},
	"pt": {
		short:  "02/01/2006",
		medium: "{day} de {mon} de {year}",
		long:   "{day} de {month} de {year}",
		months: [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		monthsShort: [12]string{"jan", "fev", "mar", "abr", "mai", "jun",
			"jul", "ago", "set", "out", "nov", "dez"},
	},
	"ja": {
		short:  "2006/01/02",
		medium: "{year}年{monthnum}月{day}日",
		long:   "{year}年{monthnum}月{day}日",
	},
}

// Date formats t for the locale at the requested style. Locales without
// a bundled pattern set use the default (English) patterns rather than
// failing.
func Date(t time.Time, locale string, style DateStyle) string {
	rule, ok := dateRules[baseLang(locale)]
	if !ok {
		rule = dateRules["en"]
	}

	if style == StyleShort {
		return t.Format(rule.short)
	}

	pattern := rule.medium
	monthName := rule.monthsShort[t.Month()-1]
	if style == StyleLong {
		pattern = rule.long
		monthName = rule.months[t.Month()-1]
	}

	replacer := strings.NewReplacer(
		"{day}", strconv.Itoa(t.Day()),
		"{mon}", monthName,
		"{month}", rule.months[t.Month()-1],
		"{monthnum}", strconv.Itoa(int(t.Month())),
		"{year}", strconv.Itoa(t.Year()),
	)
	return replacer.Replace(pattern)
}

// DateTime formats a date with a 24-hour clock time suffix.
func DateTime(t time.Time, locale string, style DateStyle) string {
	return Date(t, locale, style) + " " + t.Format("15:04")
}
