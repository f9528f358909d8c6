package validate

import "strings"

// DigitsOnly strips every non-digit character.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone formats a digit string as a local 11-digit mobile number:
// 0917 -> 0917, 0917123 -> 0917-123, 09171234567 -> 0917-123-4567.
// Input beyond 11 digits is truncated.
func FormatPhone(digits string) string {
	d := digits
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) <= 4:
		return d
	case len(d) <= 7:
		return d[:4] + "-" + d[4:]
	default:
		return d[:4] + "-" + d[4:7] + "-" + d[7:]
	}
}

// Email is the registration form's email shape check: one @, no spaces,
// a dot somewhere in the domain part.
func Email(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if local == "" || domain == "" {
		return false
	}
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
