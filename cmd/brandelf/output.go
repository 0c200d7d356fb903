package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"github.com/samcharles93/brandelf/internal/brand"
	"github.com/samcharles93/brandelf/pkg/osabi"
)

type entryJSON struct {
	Name string `json:"name"`
	Code uint8  `json:"osabi"`
}

type fileJSON struct {
	File     string `json:"file"`
	OSABI    *uint8 `json:"osabi,omitempty"`
	Brand    string `json:"brand,omitempty"`
	Known    *bool  `json:"known,omitempty"`
	Previous *uint8 `json:"previous,omitempty"`
	Stamped  bool   `json:"stamped,omitempty"`
	Error    string `json:"error,omitempty"`
}

// batchJSON is the single JSON document written for a run over files. The
// brand table is embedded when --list is combined with files.
type batchJSON struct {
	Run    string      `json:"run"`
	Brands []entryJSON `json:"brands,omitempty"`
	Files  []fileJSON  `json:"files"`
	Failed int         `json:"failed"`
}

func (a *app) printList() error {
	if a.opts.jsonOut {
		return a.writeJSON(brandEntries())
	}

	entries := osabi.All()
	table := tablewriter.NewWriter(a.stdout)
	table.SetHeader([]string{"Brand", "OSABI"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	if a.colorize {
		table.SetHeaderColor(tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor})
	}
	for _, e := range entries {
		table.Append([]string{e.Name, strconv.Itoa(int(e.Code))})
	}
	table.Render()
	return nil
}

func brandEntries() []entryJSON {
	entries := osabi.All()
	out := make([]entryJSON, len(entries))
	for i, e := range entries {
		out[i] = entryJSON{Name: e.Name, Code: uint8(e.Code)}
	}
	return out
}

// printKnown writes the one-line brand list used alongside name errors.
func (a *app) printKnown() {
	parts := make([]string, 0, len(osabi.All()))
	for _, e := range osabi.All() {
		parts = append(parts, e.String())
	}
	_, _ = fmt.Fprintf(a.stderr, "known ELF types are: %s\n", strings.Join(parts, " "))
}

// printSummary writes one line per inspected file. Stamped files are silent
// in text mode; failures are reported by the runner on stderr.
func (a *app) printSummary(sum brand.Summary) error {
	if a.opts.jsonOut {
		out := batchJSON{Run: a.runID, Files: make([]fileJSON, 0, len(sum.Results)), Failed: sum.Failed()}
		if a.opts.list {
			out.Brands = brandEntries()
		}
		for _, r := range sum.Results {
			out.Files = append(out.Files, toFileJSON(r))
		}
		return a.writeJSON(out)
	}

	known := color.New(color.FgGreen, color.Bold)
	unknown := color.New(color.FgHiYellow)
	if !a.colorize {
		known.DisableColor()
		unknown.DisableColor()
	}
	for _, r := range sum.Results {
		if r.Err != nil || r.Stamped {
			continue
		}
		name := known.Sprint(r.Code.String())
		if !r.Code.Known() {
			name = unknown.Sprint(osabi.Unrecognized)
		}
		if _, err := fmt.Fprintf(a.stdout, "File '%s' is of brand '%s' (%d).\n", r.Path, name, uint8(r.Code)); err != nil {
			return err
		}
	}
	return nil
}

func toFileJSON(r brand.Result) fileJSON {
	if r.Err != nil {
		return fileJSON{File: r.Path, Error: r.Err.Error()}
	}
	code := uint8(r.Code)
	known := r.Code.Known()
	out := fileJSON{
		File:    r.Path,
		OSABI:   &code,
		Brand:   r.Code.String(),
		Known:   &known,
		Stamped: r.Stamped,
	}
	if r.Stamped {
		prev := uint8(r.Previous)
		out.Previous = &prev
	}
	return out
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
