// SPDX-License-Identifier: MIT

// Package render writes matrices, vectors and models as a terminal table,
// JSON or CSV.
package render

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/tidwall/pretty"

	"github.com/katalvlaran/tfidf/matrix"
)

// Output formats accepted by Options.Format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// ErrUnknownFormat is returned for a format other than table, json or csv.
var ErrUnknownFormat = errors.New("render: unknown output format")

// ErrLabelMismatch is returned when labels and data disagree in length.
var ErrLabelMismatch = errors.New("render: label count does not match data")

// Options selects the output format. Color applies to table and JSON output
// only and is meant to be set from ColorEnabled.
type Options struct {
	Format    string
	Precision int // -1: shortest exact representation
	Color     bool
}

// Renderer writes results to one io.Writer in one format.
type Renderer struct {
	w    io.Writer
	opts Options
}

// New returns a Renderer writing to w. The format is checked per call, so an
// unknown one surfaces as ErrUnknownFormat on the first write.
func New(w io.Writer, opts Options) *Renderer {
	return &Renderer{w: w, opts: opts}
}

// ColorEnabled reports whether f is a terminal and the user has not opted out
// (noColor flag or NO_COLOR / TERM=dumb environment).
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// matrixDoc is the JSON shape of a labelled matrix.
type matrixDoc struct {
	FeatureNames []string    `json:"feature_names"`
	Rows         [][]float64 `json:"rows"`
}

// Matrix writes m with one column per feature and one row per document.
func (r *Renderer) Matrix(features []string, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("render matrix: %w", err)
	}
	if len(features) != m.Cols() {
		return fmt.Errorf("render matrix: %d features for %d columns: %w", len(features), m.Cols(), ErrLabelMismatch)
	}

	switch r.opts.Format {
	case FormatJSON:
		rows := m.ToRows()
		if rows == nil {
			rows = [][]float64{}
		}
		return r.JSON(matrixDoc{FeatureNames: features, Rows: rows})
	case FormatCSV, FormatTable:
		header := append([]string{"doc"}, features...)
		body := make([][]string, m.Rows())
		for i := range body {
			row, err := m.Row(i)
			if err != nil {
				return fmt.Errorf("render matrix: %w", err)
			}
			cells := make([]string, 0, len(row)+1)
			cells = append(cells, strconv.Itoa(i))
			for _, v := range row {
				cells = append(cells, r.float(v))
			}
			body[i] = cells
		}
		return r.grid(header, body)
	default:
		return fmt.Errorf("%q: %w", r.opts.Format, ErrUnknownFormat)
	}
}

// Vector writes one labelled value per line (e.g. term -> idf).
func (r *Renderer) Vector(names []string, valueHeader string, values []float64) error {
	if len(names) != len(values) {
		return fmt.Errorf("render vector: %d names for %d values: %w", len(names), len(values), ErrLabelMismatch)
	}

	switch r.opts.Format {
	case FormatJSON:
		pairs := make([]map[string]any, len(names))
		for i, n := range names {
			pairs[i] = map[string]any{"term": n, valueHeader: values[i]}
		}
		return r.JSON(pairs)
	case FormatCSV, FormatTable:
		body := make([][]string, len(names))
		for i, n := range names {
			body[i] = []string{n, r.float(values[i])}
		}
		return r.grid([]string{"term", valueHeader}, body)
	default:
		return fmt.Errorf("%q: %w", r.opts.Format, ErrUnknownFormat)
	}
}

// List writes items in order under a single header.
func (r *Renderer) List(header string, items []string) error {
	switch r.opts.Format {
	case FormatJSON:
		if items == nil {
			items = []string{}
		}
		return r.JSON(items)
	case FormatCSV, FormatTable:
		body := make([][]string, len(items))
		for i, it := range items {
			body[i] = []string{strconv.Itoa(i), it}
		}
		return r.grid([]string{"index", header}, body)
	default:
		return fmt.Errorf("%q: %w", r.opts.Format, ErrUnknownFormat)
	}
}

// JSON writes v as indented JSON, colorized when Color is set.
func (r *Renderer) JSON(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	out := pretty.Pretty(raw)
	if r.opts.Color {
		out = pretty.Color(out, pretty.TerminalStyle)
	}
	_, err = r.w.Write(out)

	return err
}

// grid writes header+body as CSV or a bordered table.
func (r *Renderer) grid(header []string, body [][]string) error {
	if r.opts.Format == FormatCSV {
		cw := csv.NewWriter(r.w)
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("render csv: %w", err)
		}
		if err := cw.WriteAll(body); err != nil {
			return fmt.Errorf("render csv: %w", err)
		}
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(header...).
		Rows(body...).
		StyleFunc(r.cellStyle)
	_, err := fmt.Fprintln(r.w, t.Render())

	return err
}

func (r *Renderer) cellStyle(row, col int) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if !r.opts.Color {
		return s
	}
	switch {
	case row == table.HeaderRow:
		return s.Bold(true).Foreground(lipgloss.Color("86"))
	case col == 0:
		return s.Foreground(lipgloss.Color("245"))
	default:
		return s
	}
}

func (r *Renderer) float(v float64) string {
	if r.opts.Precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', r.opts.Precision, 64)
}
