package entities

import "strings"

// FormatRut formats a Chilean tax id as dotted groups of three plus the check
// digit, e.g. "763543219" -> "76.354.321-9". Anything but digits and K is dropped.
func FormatRut(value string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(value) {
		if (r >= '0' && r <= '9') || r == 'K' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return ""
	}

	body, dv := clean[:len(clean)-1], clean[len(clean)-1:]
	if body == "" {
		return dv
	}

	var parts []string
	for i := len(body); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{body[start:i]}, parts...)
	}
	return strings.Join(parts, ".") + "-" + dv
}
