// Package check implements the doctor command: read-only diagnostics over a
// migrations directory. It reports duplicate version tokens (which make
// apply order ambiguous) and filenames that almost match the naming
// convention, with a hint about what is off.
package check

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/backmassage/migforge/internal/naming"
	"github.com/backmassage/migforge/internal/scan"
)

// Logger is the minimal logging interface needed by RunDoctor. Defined here
// (rather than importing the logging package) so that check stays
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunDoctor inspects dir and logs findings. It never mutates anything.
// The return value is false when the directory has problems a migration
// tool would reject (unreadable, or duplicate version tokens).
func RunDoctor(dir string, log Logger) bool {
	inv, err := scan.Dir(dir)
	if err != nil {
		log.Error("Cannot read migrations directory: %v", err)
		return false
	}

	versioned, repeatable := 0, 0
	for _, m := range inv.Migrations {
		if m.Kind == naming.KindVersioned {
			versioned++
		} else {
			repeatable++
		}
	}
	log.Info("%s: %d versioned, %d repeatable migration(s)", dir, versioned, repeatable)

	ok := true
	dups := inv.DuplicateTokens()
	for _, tok := range sortedKeys(dups) {
		log.Error("Duplicate version token %s (%s): apply order is ambiguous",
			tok, strings.Join(dups[tok], ", "))
		ok = false
	}

	for _, name := range inv.Strays {
		if hint, nearMiss := Diagnose(name); nearMiss {
			log.Warn("%s: %s", name, hint)
		} else if strings.HasSuffix(strings.ToLower(name), ".sql") {
			log.Warn("%s: not a recognized migration filename", name)
		}
	}

	if ok && len(inv.Strays) == 0 {
		log.Success("Migrations directory looks healthy")
	}
	return ok
}

// Diagnose inspects a filename that failed strict parsing and, for common
// near-misses of the naming convention, explains what is wrong.
func Diagnose(name string) (hint string, nearMiss bool) {
	lower := strings.ToLower(name)

	switch {
	case !strings.HasSuffix(lower, ".sql"):
		if reAlmostNoExt.MatchString(name) {
			return "missing the .sql extension", true
		}
		return "", false
	case !strings.HasSuffix(name, ".sql"):
		return "extension must be lowercase .sql", true
	case strings.HasPrefix(name, "v") || strings.HasPrefix(name, "r"):
		if _, ok := naming.Parse(strings.ToUpper(name[:1]) + name[1:]); ok {
			return fmt.Sprintf("prefix must be uppercase %q", strings.ToUpper(name[:1])), true
		}
		return "", false
	case reSingleSep.MatchString(name):
		return "use a double underscore between version and description", true
	case reBadTokenLen.MatchString(name):
		return "version token must be 14 digits (or 17 with milliseconds)", true
	default:
		return "", false
	}
}

var (
	reSingleSep   = regexp.MustCompile(`^[VR]\d*_[^_]`)
	reBadTokenLen = regexp.MustCompile(`^V\d+__`)
	reAlmostNoExt = regexp.MustCompile(`^(V\d+|R)__[A-Za-z0-9_]+$`)
)

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
