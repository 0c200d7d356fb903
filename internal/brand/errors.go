package brand

import (
	"errors"
	"fmt"
)

// ErrConfig marks invocation-wide errors. They are detected before any file
// is opened.
var ErrConfig = errors.New("configuration error")

var (
	ErrConflictingTarget = fmt.Errorf("%w: -f option incompatible with -t option", ErrConfig)
	ErrCodeRange         = fmt.Errorf("%w: ELF ABI number must be in 0..255", ErrConfig)
	ErrNoFiles           = fmt.Errorf("%w: no file(s) specified", ErrConfig)
)

// FileError is a failure confined to one file of a batch.
type FileError struct {
	Path string
	Err  error
}

// Error formats the failure with the file name, as in
// "file 'a.out': not ELF format".
func (e *FileError) Error() string {
	return fmt.Sprintf("file '%s': %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
