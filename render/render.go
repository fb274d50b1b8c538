// SPDX-License-Identifier: MIT

// Package render prints padded grid snapshots in the list-per-row format
// used by the islands command, optionally colouring land and water.
//
//	Initial data:
//
//	[0, 0, 0, 0]
//	[0, 1, 1, 0]
//	[0, 0, 0, 0]
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/katalvlaran/islands/grid"
)

// Printer writes headed grid dumps to an io.Writer.
type Printer struct {
	w     io.Writer
	color bool
	land  lipgloss.Style
	water lipgloss.Style
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor renders land and water cells in distinct colours when on is
// true, regardless of whether the writer is a terminal.
func WithColor(on bool) Option {
	return func(p *Printer) {
		p.color = on
	}
}

// NewPrinter returns a Printer writing to w. Output is plain unless
// WithColor(true) is given.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.color {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI256)
		p.land = r.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
		p.water = r.NewStyle().Foreground(lipgloss.Color("27"))
	}
	return p
}

// IsTerminal reports whether f is attached to a terminal, for callers
// picking a colour default.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Grid writes "\n<heading>\n\n" followed by one bracketed line per padded
// row, border included.
func (p *Printer) Grid(heading string, g *grid.Grid) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n\n", heading)
	for _, row := range g.Snapshot() {
		sb.WriteByte('[')
		for i, v := range row {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.cell(v))
		}
		sb.WriteString("]\n")
	}
	_, err := io.WriteString(p.w, sb.String())
	return errors.Wrap(err, "render: writing grid")
}

// Printf writes a free-form line such as the final total.
func (p *Printer) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format, args...)
	return errors.Wrap(err, "render: writing text")
}

func (p *Printer) cell(v int) string {
	s := strconv.Itoa(v)
	if !p.color {
		return s
	}
	if v == grid.Water {
		return p.water.Render(s)
	}
	return p.land.Render(s)
}
