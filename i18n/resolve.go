package i18n

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Params carries caller-supplied values for placeholder substitution.
// Values are rendered with fmt and HTML-escaped before insertion.
type Params map[string]any

// placeholderRe matches {identifier} tokens in templates.
var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Resolve substitutes {name} placeholders in template with values from
// params. Substituted values are HTML-escaped so translations are safe
// to render as markup. Placeholders without a matching parameter are
// kept as literal token text, which makes caller bugs visible instead
// of silently dropping content.
func Resolve(template string, params Params) string {
	if len(params) == 0 || !strings.Contains(template, "{") {
		return template
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		val, ok := params[name]
		if !ok {
			return match
		}
		return html.EscapeString(fmt.Sprint(val))
	})
}
