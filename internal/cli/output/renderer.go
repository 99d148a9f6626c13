// Package output renders command results as a table, CSV, or JSON. Auto
// mode picks the table renderer on a terminal and CSV when piped.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeTable Mode = "table"
	ModeCSV   Mode = "csv"
	ModeJSON  Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
}

// NewRenderer creates a renderer for the given writers and mode.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// EffectiveMode resolves auto mode against the output writer.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeTable
	}
	return ModeCSV
}

// Println writes a line to the output writer.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Rows renders a header and rows in the effective mode. JSON output is a
// list of objects keyed by the header.
func (r *Renderer) Rows(header []string, rows [][]string) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		records := make([]map[string]string, 0, len(rows))
		for _, row := range rows {
			rec := make(map[string]string, len(header))
			for i, h := range header {
				if i < len(row) {
					rec[h] = row[i]
				}
			}
			records = append(records, rec)
		}
		return r.JSON(records)
	case ModeCSV:
		return r.CSV(header, rows)
	default:
		r.Table(header, rows)
		return nil
	}
}

// Table renders with go-pretty in light style.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = v
		}
		t.AppendRow(tr)
	}
	t.Render()
}

// CSV renders header and rows as comma-separated values.
func (r *Renderer) CSV(header []string, rows [][]string) error {
	w := csv.NewWriter(r.out)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// JSON renders v with indentation.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
