package naming

import "regexp"

// Parsed holds the structured result of recognizing an existing migration
// filename. Token is empty for repeatable migrations.
type Parsed struct {
	Kind        Kind
	Token       string
	Description string
}

// Filename grammar. The token is 14 digits (second precision) or 17
// (millisecond precision); the description is the sanitized alphabet plus
// the underscore separator it may contain internally.
var (
	reVersioned  = regexp.MustCompile(`^V(\d{14}|\d{17})__([A-Za-z0-9_]+)\.sql$`)
	reRepeatable = regexp.MustCompile(`^R__([A-Za-z0-9_]+)\.sql$`)
)

// Parse recognizes basename against the migration filename grammar.
// It reports ok=false for anything that does not match exactly; near-misses
// (wrong separator, lowercase prefix, stray extension) are the doctor
// command's business, not this function's.
func Parse(basename string) (Parsed, bool) {
	if m := reVersioned.FindStringSubmatch(basename); m != nil {
		return Parsed{Kind: KindVersioned, Token: m[1], Description: m[2]}, true
	}
	if m := reRepeatable.FindStringSubmatch(basename); m != nil {
		return Parsed{Kind: KindRepeatable, Description: m[1]}, true
	}
	return Parsed{}, false
}
