package elfident

import (
	"errors"
	"fmt"
	"io"
)

// ReadIdent reads exactly IdentSize bytes from r and validates the magic.
// A short read is reported as ErrTruncated.
func ReadIdent(r io.Reader) (Ident, error) {
	var id Ident
	if _, err := io.ReadFull(r, id[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Ident{}, ErrTruncated
		}
		return Ident{}, err
	}
	if !id.Valid() {
		return Ident{}, ErrBadMagic
	}
	return id, nil
}

// Patch rewrites the OS/ABI byte of the identification block at the start of
// rws and returns the previous value. The whole block is written back at
// offset 0 so the file length never changes.
func Patch(rws io.ReadWriteSeeker, code uint8) (uint8, error) {
	if _, err := rws.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	id, err := ReadIdent(rws)
	if err != nil {
		return 0, err
	}
	prev := id.OSABI()
	id.SetOSABI(code)

	if _, err := rws.Seek(0, io.SeekStart); err != nil {
		return prev, err
	}
	n, err := rws.Write(id[:])
	if err != nil {
		return prev, fmt.Errorf("%w: %w", ErrShortWrite, err)
	}
	if n != IdentSize {
		return prev, fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, n, IdentSize)
	}
	return prev, nil
}
