// Package elfident reads and patches the ELF identification block.
//
// Only the magic (bytes 0-3) and the OS/ABI byte are interpreted. Every other
// byte of the block is carried through unchanged and nothing past the block
// is ever read or written.
package elfident

const (
	// Magic is the ELF signature, "\x7fELF".
	Magic = "\x7fELF"

	// IdentSize is EI_NIDENT.
	IdentSize = 16

	// OSABIOffset is EI_OSABI.
	OSABIOffset = 7
)

// Ident is a copy of the first IdentSize bytes of a file.
type Ident [IdentSize]byte

// Valid reports whether the block starts with the ELF magic.
func (id *Ident) Valid() bool {
	return string(id[:len(Magic)]) == Magic
}

// OSABI returns the EI_OSABI byte.
func (id *Ident) OSABI() uint8 {
	return id[OSABIOffset]
}

// SetOSABI overwrites the EI_OSABI byte in memory only.
func (id *Ident) SetOSABI(code uint8) {
	id[OSABIOffset] = code
}
