package elfident

import "os"

// Report describes the identification block of one file after an Inspect or
// Stamp call.
type Report struct {
	Path     string
	OSABI    uint8
	Previous uint8
	Stamped  bool
}

// Inspect opens path read-only and reports its OS/ABI byte.
func Inspect(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer func() { _ = f.Close() }()

	id, err := ReadIdent(f)
	if err != nil {
		return Report{}, err
	}
	return Report{Path: path, OSABI: id.OSABI(), Previous: id.OSABI()}, nil
}

// Stamp opens path read-write and sets its OS/ABI byte to code.
func Stamp(path string, code uint8) (rep Report, err error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return Report{}, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	prev, err := Patch(f, code)
	if err != nil {
		return Report{}, err
	}
	return Report{Path: path, OSABI: code, Previous: prev, Stamped: true}, nil
}
