package elfident

import "errors"

// Errors returned while reading or patching an identification block.
var (
	ErrTruncated  = errors.New("file too short")
	ErrBadMagic   = errors.New("not ELF format")
	ErrShortWrite = errors.New("short write of ELF identification")
)
