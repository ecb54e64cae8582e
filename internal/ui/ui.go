// Package ui renders qgates CLI output: gate tables and check results.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Printer writes formatted output, optionally coloured.
type Printer struct {
	w      io.Writer
	header *color.Color
	pass   *color.Color
	fail   *color.Color
}

// NewPrinter creates a Printer writing to w. Unless noColor is set, colour
// follows fatih/color's terminal detection.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	p := &Printer{
		w:      w,
		header: color.New(color.Bold, color.FgCyan),
		pass:   color.New(color.FgGreen, color.Bold),
		fail:   color.New(color.FgRed, color.Bold),
	}
	if noColor {
		p.header.DisableColor()
		p.pass.DisableColor()
		p.fail.DisableColor()
	}

	return p
}

// Table prints rows under headers with left-aligned, padded columns.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	cells := make([]string, len(headers))
	for i, h := range headers {
		cell := p.header.Sprint(h)
		if i < len(headers)-1 {
			cell += strings.Repeat(" ", widths[i]-len(h))
		}
		cells[i] = cell
	}
	fmt.Fprintln(p.w, strings.Join(cells, "  "))

	for _, row := range rows {
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, widths[i])
		}
		fmt.Fprintln(p.w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

// Result prints a PASS or FAIL line for label with optional detail.
func (p *Printer) Result(ok bool, label, detail string) {
	mark := p.pass.Sprint("PASS")
	if !ok {
		mark = p.fail.Sprint("FAIL")
	}
	if detail != "" {
		fmt.Fprintf(p.w, "%s  %s  %s\n", mark, label, detail)
		return
	}
	fmt.Fprintf(p.w, "%s  %s\n", mark, label)
}

// Println writes a plain line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
