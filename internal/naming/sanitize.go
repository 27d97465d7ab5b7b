package naming

import "strings"

// maxDescriptionLen caps the sanitized description so the final path stays
// comfortably inside common filesystem limits (255-byte names) even with the
// 17-digit millisecond token, prefix, separator and extension attached.
const maxDescriptionLen = 128

// Sanitize reduces a free-form label to the allowed filename alphabet.
// Characters outside [A-Za-z0-9] are replaced by a single underscore per
// run, leading and trailing underscores are trimmed, and the result is
// truncated to maxDescriptionLen. Sanitize is idempotent and total: any
// input (including non-ASCII) yields a deterministic result, possibly "".
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	pendingSep := false
	for _, r := range raw {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}

	s := b.String()
	// The builder only ever holds ASCII, so byte truncation cannot split a
	// multi-byte character.
	if len(s) > maxDescriptionLen {
		s = strings.TrimRight(s[:maxDescriptionLen], "_")
	}
	return s
}
