package naming

import (
	"errors"
	"fmt"
	"time"
)

// Kind selects the migration flavor.
type Kind string

const (
	KindVersioned  Kind = "versioned"  // Applied exactly once, ordered by version token.
	KindRepeatable Kind = "repeatable" // Re-applied whenever its content changes.
)

// prefix returns the single-character filename prefix mandated by the
// Flyway naming convention.
func (k Kind) prefix() string {
	if k == KindRepeatable {
		return "R"
	}
	return "V"
}

// Fixed pieces of the filename grammar.
const (
	// Separator sits between the version prefix and the description.
	Separator = "__"
	// Extension is always appended; user input ending in ".sql" is not
	// special-cased because sanitization strips the dot anyway.
	Extension = ".sql"
)

// Sentinel errors returned by Compute.
var (
	// ErrEmptyDescription means the description sanitized down to nothing.
	// The user must re-enter a label containing at least one letter or digit.
	ErrEmptyDescription = errors.New("description is empty after sanitization")

	// ErrUnknownKind means the caller passed a Kind outside the enum.
	ErrUnknownKind = errors.New("unknown migration kind")
)

// Descriptor is the computed artifact handed from the naming engine to the
// writer. It lives only for the duration of one save operation and is never
// persisted.
type Descriptor struct {
	Kind     Kind
	Filename string
	Dir      string
	Content  []byte
}

// Compute builds the migration filename for kind from a raw user description
// and, for versioned migrations, the timestamp now. It is a pure function:
// two calls with equal arguments yield equal results.
//
// The description is sanitized per [Sanitize]; an empty result yields
// ErrEmptyDescription. Uniqueness of the returned name is not guaranteed
// here; the writer's no-clobber check is the sole collision arbiter.
func Compute(kind Kind, description string, now time.Time, prec Precision) (string, error) {
	desc := Sanitize(description)
	if desc == "" {
		return "", ErrEmptyDescription
	}

	switch kind {
	case KindVersioned:
		return kind.prefix() + Token(now, prec) + Separator + desc + Extension, nil
	case KindRepeatable:
		return kind.prefix() + Separator + desc + Extension, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}
