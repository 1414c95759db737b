package validate

import "regexp"

// whitespace is the ECMAScript \s class. RE2's \s is ASCII only.
const whitespace = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// emailRegex is ^[^\s@]+@[^\s@]+\.[^\s@]+$ with whitespace spelled out.
var emailRegex = regexp.MustCompile(
	`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`,
)

// Email reports whether email looks like local@domain.tld.
func Email(email string) bool {
	return emailRegex.MatchString(email)
}
