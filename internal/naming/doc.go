// Package naming computes Flyway-convention migration filenames from a
// migration kind, a timestamp, and a free-form user description.
//
// The grammar produced (and recognized by [Parse]):
//
//	Versioned:  V<token>__<description>.sql
//	Repeatable: R__<description>.sql
//
// where <token> is a zero-padded UTC timestamp (YYYYMMDDHHmmss, optionally
// with milliseconds) whose lexicographic order equals chronological order,
// and <description> is the sanitized user label (letters and digits only,
// runs of anything else collapsed to single underscores).
//
// Everything in this package is pure: no filesystem access, no clocks, no
// globals. Collision handling belongs to the writer package.
package naming
