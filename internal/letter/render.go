package letter

import "regexp"

// tokenPattern matches any {{snake_case}} placeholder.
var tokenPattern = regexp.MustCompile(`\{\{[a-z0-9_]+\}\}`)

// Substitute replaces every catalog token in the template with its resolved
// value in a single left-to-right scan. Because the scan advances past each
// inserted value, a resolved value that itself looks like a token is never
// re-substituted. Tokens outside the values map are left verbatim.
func Substitute(template string, values map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(template, func(token string) string {
		if value, ok := values[token]; ok {
			return value
		}
		return token
	})
}
