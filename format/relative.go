package format

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/feature/plural"
)

// relUnit holds the singular and plural renderings of one time unit,
// as templates over {count}.
type relUnit struct {
	one   string
	other string
}

// relRule carries a locale's relative-time phrasing. Past and future
// are templates over {phrase}.
type relRule struct {
	past   string
	future string
	now    string
	minute relUnit
	hour   relUnit
	day    relUnit
	month  relUnit
	year   relUnit
}

var relRules = map[string]relRule{
	"en": {
		past: "{phrase} ago", future: "in {phrase}", now: "just now",
		minute: relUnit{"1 minute", "{count} minutes"},
		hour:   relUnit{"1 hour", "{count} hours"},
		day:    relUnit{"1 day", "{count} days"},
		month:  relUnit{"1 month", "{count} months"},
		year:   relUnit{"1 year", "{count} years"},
	},
	"de": {
		past: "vor {phrase}", future: "in {phrase}", now: "gerade eben",
		minute: relUnit{"1 Minute", "{count} Minuten"},
		hour:   relUnit{"1 Stunde", "{count} Stunden"},
		day:    relUnit{"1 Tag", "{count} Tagen"},
		month:  relUnit{"1 Monat", "{count} Monaten"},
		year:   relUnit{"1 Jahr", "{count} Jahren"},
	},
	"fr": {
		past: "il y a {phrase}", future: "dans {phrase}", now: "à l'instant",
		minute: relUnit{"1 minute", "{count} minutes"},
		hour:   relUnit{"1 heure", "{count} heures"},
		day:    relUnit{"1 jour", "{count} jours"},
		month:  relUnit{"1 mois", "{count} mois"},
		year:   relUnit{"1 an", "{count} ans"},
	},
	"es": {
		past: "hace {phrase}", future: "en {phrase}", now: "ahora mismo",
		minute: relUnit{"1 minuto", "{count} minutos"},
		hour:   relUnit{"1 hora", "{count} horas"},
		day:    relUnit{"1 día", "{count} días"},
		month:  relUnit{"1 mes", "{count} meses"},
		year:   relUnit{"1 año", "{count} años"},
	},
}

// RelativeTime renders the distance between t and ref in the locale's
// phrasing: "5 minutes ago", "in 3 days". Distances under a minute
// render as the locale's "now" phrase. Locales without bundled phrasing
// use English.
func RelativeTime(t, ref time.Time, locale string) string {
	rule, ok := relRules[baseLang(locale)]
	if !ok {
		rule = relRules["en"]
	}

	diff := ref.Sub(t)
	future := diff < 0
	if future {
		diff = -diff
	}
	if diff < time.Minute {
		return rule.now
	}

	count, unit := splitUnits(diff, rule)
	phrase := renderUnit(unit, count, locale)
	wrapper := rule.past
	if future {
		wrapper = rule.future
	}
	return strings.ReplaceAll(wrapper, "{phrase}", phrase)
}

// splitUnits picks the largest unit the distance fills, rounding to the
// nearest whole unit.
func splitUnits(d time.Duration, rule relRule) (int, relUnit) {
	const (
		day   = 24 * time.Hour
		month = 30 * day
		year  = 365 * day
	)
	switch {
	case d >= year:
		return int((d + year/2) / year), rule.year
	case d >= month:
		return int((d + month/2) / month), rule.month
	case d >= day:
		return int((d + day/2) / day), rule.day
	case d >= time.Hour:
		return int((d + time.Hour/2) / time.Hour), rule.hour
	default:
		return int((d + time.Minute/2) / time.Minute), rule.minute
	}
}

// renderUnit selects the singular or plural phrasing by the locale's
// CLDR cardinal rule.
func renderUnit(unit relUnit, count int, locale string) string {
	template := unit.other
	if plural.Cardinal.MatchPlural(tagFor(locale), count, 0, 0, 0, 0) == plural.One {
		template = unit.one
	}
	return strings.ReplaceAll(template, "{count}", strconv.Itoa(count))
}
