// Package brand resolves the requested ELF ABI brand and applies it to a batch
// of files.
package brand

import (
	"fmt"

	"github.com/samcharles93/brandelf/pkg/osabi"
)

// DefaultName is the brand assumed when no target is selected.
const DefaultName = "FreeBSD"

// Selection is the raw target choice taken from the command line.
type Selection struct {
	Name      string
	NameSet   bool
	Number    int
	NumberSet bool
}

// Target is a resolved brand. Stamp is false in report mode. Name is empty
// for numeric targets without a registered name.
type Target struct {
	Code     osabi.Code
	Name     string
	Stamp    bool
	ByNumber bool
}

// Known reports whether the target code has a registered name. Numeric
// targets may legitimately carry vendor codes that do not.
func (t Target) Known() bool {
	return t.Code.Known()
}

// Check reports the selection errors that do not depend on the registry:
// both a name and a number, or a number that does not fit in a byte.
func (sel Selection) Check() error {
	if sel.NameSet && sel.NumberSet {
		return ErrConflictingTarget
	}
	if sel.NumberSet && (sel.Number < 0 || sel.Number > 255) {
		return fmt.Errorf("%w: got %d", ErrCodeRange, sel.Number)
	}
	return nil
}

// ResolveTarget validates sel. A name must be registered; a number only has
// to fit in a byte and is never checked against the registry.
func ResolveTarget(sel Selection) (Target, error) {
	if err := sel.Check(); err != nil {
		return Target{}, err
	}

	if sel.NumberSet {
		code := osabi.Code(sel.Number)
		name, _ := osabi.ByCode(code)
		return Target{Code: code, Name: name, Stamp: true, ByNumber: true}, nil
	}

	name := DefaultName
	if sel.NameSet {
		name = sel.Name
	}
	code, err := osabi.ByName(name)
	if err != nil {
		return Target{}, fmt.Errorf("%w: invalid ELF type '%s': %w", ErrConfig, name, err)
	}
	return Target{Code: code, Name: name, Stamp: sel.NameSet}, nil
}
