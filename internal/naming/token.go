package naming

import (
	"fmt"
	"time"
)

// Precision selects the version token granularity.
type Precision string

const (
	// PrecisionSecond is the conventional 14-digit token (YYYYMMDDHHmmss).
	PrecisionSecond Precision = "second"
	// PrecisionMilli appends milliseconds (17 digits). Useful when several
	// developers cut migrations within the same second.
	PrecisionMilli Precision = "milli"
)

// Token formats t (normalized to UTC) as a strictly-increasing numeric
// version string. For two times at least one precision unit apart, the
// earlier token always sorts lexicographically before the later one; calls
// within the same unit produce equal tokens, which the writer surfaces as a
// collision rather than silently merging.
func Token(t time.Time, prec Precision) string {
	u := t.UTC()
	if prec == PrecisionMilli {
		return fmt.Sprintf("%s%03d", u.Format("20060102150405"), u.Nanosecond()/int(time.Millisecond))
	}
	return u.Format("20060102150405")
}
