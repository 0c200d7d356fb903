// Package osabi is the registry of ELF OS/ABI brands.
//
// The names and codes are shared with other brandelf implementations and
// must never change; binaries stamped by those tools rely on them.
package osabi

import (
	"errors"
	"fmt"
)

// Code is the value of the EI_OSABI byte.
type Code uint8

// Unrecognized is printed in place of a name for codes absent from the table.
const Unrecognized = "unrecognized"

// ErrUnknownName is returned by ByName for names not in the table.
var ErrUnknownName = errors.New("unknown ELF ABI brand")

// Entry pairs a brand name with its EI_OSABI code.
type Entry struct {
	Name string
	Code Code
}

// Values follow include/llvm/Support/ELF.h and GNU elf.h.
var table = [...]Entry{
	{"SysV", 0},
	{"HP-UX", 1},
	{"NetBSD", 2},
	{"Linux", 3},
	{"Hurd", 4},
	{"Solaris", 6},
	{"AIX", 7},
	{"IRIX", 8},
	{"FreeBSD", 9},
	{"TRU64", 10},
	{"Modesto", 11},
	{"OpenBSD", 12},
	{"OpenVMS", 13},
	{"NSK", 14},
	{"AROS", 15},
	{"FenixOS", 16},
	{"ARM EABI", 64},
	{"TMS320C6000 Linux", 65},
	{"ARM", 97},
	{"Standalone", 255},
}

// ByName returns the code registered for name. The match is exact and
// case-sensitive.
func ByName(name string) (Code, error) {
	for _, e := range table {
		if e.Name == name {
			return e.Code, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, name)
}

// ByCode returns the name registered for c. Vendor-specific codes are valid
// data; ok is false for them and callers decide how to label them.
func ByCode(c Code) (name string, ok bool) {
	for _, e := range table {
		if e.Code == c {
			return e.Name, true
		}
	}
	return "", false
}

// All returns the table in declaration order. The slice is a copy.
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table[:])
	return out
}

// Names returns the brand names in table order.
func Names() []string {
	names := make([]string, len(table))
	for i, e := range table {
		names[i] = e.Name
	}
	return names
}

// Known reports whether c has a registered name.
func (c Code) Known() bool {
	_, ok := ByCode(c)
	return ok
}

// String returns the registered name of c, or Unrecognized.
func (c Code) String() string {
	if name, ok := ByCode(c); ok {
		return name
	}
	return Unrecognized
}

func (e Entry) String() string {
	return fmt.Sprintf("%s(%d)", e.Name, e.Code)
}
