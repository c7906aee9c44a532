package bot

import "regexp"

// emailPattern matches local@domain.tld with a 2+ letter final label.
// Anchored at both ends so the whole string must be the address.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether candidate looks like an email address.
// Pure and total: malformed input, including the empty string, is false.
func IsValidEmail(candidate string) bool {
	return emailPattern.MatchString(candidate)
}
