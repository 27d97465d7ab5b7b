// Package scan inventories a migrations directory: files matching the
// naming grammar become ordered entries, everything else is kept aside so
// the doctor command can complain about it.
package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/migforge/internal/naming"
)

// Entry is one recognized migration file.
type Entry struct {
	naming.Parsed
	Name string // basename as found on disk
	Path string
	Size int64
}

// Inventory is the result of scanning one directory. Migrations are sorted
// in apply order: versioned by token (then description), repeatable after
// them by description, matching how the migration tool orders execution.
type Inventory struct {
	Migrations []Entry
	Strays     []string // non-matching basenames, sorted, dotfiles excluded
}

// Dir reads directory and classifies its files. Subdirectories are ignored;
// migration tools do not recurse either.
func Dir(dir string) (Inventory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Inventory{}, err
	}

	var inv Inventory
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		p, ok := naming.Parse(e.Name())
		if !ok {
			inv.Strays = append(inv.Strays, e.Name())
			continue
		}
		var size int64
		if fi, err := e.Info(); err == nil {
			size = fi.Size()
		}
		inv.Migrations = append(inv.Migrations, Entry{
			Parsed: p,
			Name:   e.Name(),
			Path:   filepath.Join(dir, e.Name()),
			Size:   size,
		})
	}

	sort.Slice(inv.Migrations, func(i, j int) bool {
		return less(inv.Migrations[i], inv.Migrations[j])
	})
	sort.Strings(inv.Strays)
	return inv, nil
}

// less orders versioned before repeatable, versioned by token then
// description, repeatable by description.
func less(a, b Entry) bool {
	if a.Kind != b.Kind {
		return a.Kind == naming.KindVersioned
	}
	if a.Kind == naming.KindVersioned && a.Token != b.Token {
		return a.Token < b.Token
	}
	return a.Description < b.Description
}

// DuplicateTokens returns version tokens claimed by more than one file,
// each with the claiming basenames. A duplicate token means apply order is
// ambiguous and the migration tool will refuse the set.
func (inv Inventory) DuplicateTokens() map[string][]string {
	byToken := make(map[string][]string)
	for _, m := range inv.Migrations {
		if m.Kind == naming.KindVersioned {
			byToken[m.Token] = append(byToken[m.Token], m.Name)
		}
	}
	dups := make(map[string][]string)
	for tok, names := range byToken {
		if len(names) > 1 {
			dups[tok] = names
		}
	}
	return dups
}
