package units

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is the separator width used when no width is requested.
const DefaultWidth = 50

// Terminal palette: ANSI yellow for money and warnings, red for errors.
var (
	moneyColor   = lipgloss.Color("3")
	warningColor = lipgloss.Color("3")
	errorColor   = lipgloss.Color("1")
)

// Printer writes framed report blocks. Colors are applied only when the
// underlying writer is a terminal that supports them.
type Printer struct {
	w       io.Writer
	money   lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		money:   r.NewStyle().Foreground(moneyColor),
		warning: r.NewStyle().Foreground(warningColor),
		err:     r.NewStyle().Foreground(errorColor),
	}
}

// Money colors text as a money amount.
func (p *Printer) Money(text string) string { return p.money.Render(text) }

// Warning colors text as a warning.
func (p *Printer) Warning(text string) string { return p.warning.Render(text) }

// Error colors text as an error.
func (p *Printer) Error(text string) string { return p.err.Render(text) }

// Separator writes symbol repeated width times on its own line.
func (p *Printer) Separator(symbol string, width int) {
	fmt.Fprintln(p.w, strings.Repeat(symbol, width))
}

// Lines writes lines between two "=" separators of DefaultWidth.
func (p *Printer) Lines(lines ...string) {
	p.Framed(DefaultWidth, lines...)
}

// Framed writes lines between two "=" separators of the given width. A width
// of 0 uses the visible width of the longest line.
func (p *Printer) Framed(width int, lines ...string) {
	if width == 0 {
		for _, l := range lines {
			width = max(width, lipgloss.Width(l))
		}
	}
	p.Separator("=", width)
	for _, l := range lines {
		fmt.Fprintln(p.w, l)
	}
	p.Separator("=", width)
}

// Failed writes a single "FAILED: ..." line in the error color.
func (p *Printer) Failed(format string, args ...any) {
	fmt.Fprintln(p.w, p.Error("FAILED: "+fmt.Sprintf(format, args...)))
}
