package brand

import (
	"context"

	"github.com/samcharles93/brandelf/internal/logger"
	"github.com/samcharles93/brandelf/pkg/elfident"
	"github.com/samcharles93/brandelf/pkg/osabi"
)

// Result is the outcome for one file. Code is the brand now in the file;
// Previous differs from it only after a stamp.
type Result struct {
	Path     string
	Code     osabi.Code
	Previous osabi.Code
	Stamped  bool
	Err      error
}

// OK reports whether the file was processed without error.
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary collects the results of a batch in argument order.
type Summary struct {
	Results []Result
}

// Failed returns the number of files that failed.
func (s Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// OK reports whether every file succeeded.
func (s Summary) OK() bool {
	return s.Failed() == 0
}

// Runner applies a Target to files one at a time. Inspect and Stamp default
// to the elfident file helpers.
type Runner struct {
	Target  Target
	Inspect func(path string) (elfident.Report, error)
	Stamp   func(path string, code uint8) (elfident.Report, error)
}

// NewRunner creates a Runner that operates on real files.
func NewRunner(t Target) *Runner {
	return &Runner{
		Target:  t,
		Inspect: elfident.Inspect,
		Stamp:   elfident.Stamp,
	}
}

// Run processes paths in order. A failing file is recorded in its Result and
// logged; it never stops the batch.
func (r *Runner) Run(ctx context.Context, paths []string) Summary {
	log := logger.FromContext(ctx)

	if r.Target.Stamp && !r.Target.Known() {
		log.Warn("stamping unrecognized ELF ABI brand", "osabi", uint8(r.Target.Code))
	}

	sum := Summary{Results: make([]Result, 0, len(paths))}
	for _, path := range paths {
		res := r.one(path)
		flog := log.With("file", path)
		switch {
		case res.Err != nil:
			flog.Error(res.Err.Error())
		case res.Stamped:
			flog.Debug("stamped", "from", res.Previous.String(), "to", res.Code.String(), "osabi", uint8(res.Code))
		default:
			flog.Debug("inspected", "brand", res.Code.String(), "osabi", uint8(res.Code))
			if !res.Code.Known() {
				flog.Warn("ELF ABI brand is unknown", "osabi", uint8(res.Code), "known", osabi.Names())
			}
		}
		sum.Results = append(sum.Results, res)
	}
	return sum
}

func (r *Runner) one(path string) Result {
	var (
		rep elfident.Report
		err error
	)
	if r.Target.Stamp {
		rep, err = r.Stamp(path, uint8(r.Target.Code))
	} else {
		rep, err = r.Inspect(path)
	}
	if err != nil {
		return Result{Path: path, Err: &FileError{Path: path, Err: err}}
	}
	return Result{
		Path:     path,
		Code:     osabi.Code(rep.OSABI),
		Previous: osabi.Code(rep.Previous),
		Stamped:  rep.Stamped,
	}
}
