// Package printer renders allocator reports as text or JSON.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/buddykit/buddy/alloc"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the bm_list table followed by the stats block.
	FormatText Format = "text"

	// FormatJSON outputs the report as a JSON document.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// LeadBytes limits how many leading payload bytes are shown per block.
	// The report never carries more than alloc.DefaultLeadBytes. Zero selects
	// the default and a negative value hides the bytes.
	// Default: 8
	LeadBytes int

	// ShowASCII appends the lead bytes as Windows-1252 characters (text format only).
	// Default: false
	ShowASCII bool

	// ShowStats includes the totals block.
	// Default: true
	ShowStats bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:    FormatText,
		LeadBytes: alloc.DefaultLeadBytes,
		ShowASCII: false,
		ShowStats: true,
	}
}

// Printer writes allocator reports.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(a.Dump())
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// Print renders r in the configured format.
func (p *Printer) Print(r alloc.Report) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(r)
	case FormatText, "":
		return p.printText(r)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}

// Fprint is shorthand for New(w, opts).Print(r).
func Fprint(w io.Writer, r alloc.Report, opts Options) error {
	return New(w, opts).Print(r)
}

func (p *Printer) lead(b alloc.BlockInfo) []byte {
	n := p.opts.LeadBytes
	switch {
	case n < 0:
		n = 0
	case n == 0:
		n = alloc.DefaultLeadBytes
	}
	n = min(n, len(b.Lead))
	return b.Lead[:n]
}
