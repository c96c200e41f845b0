// Package output renders extracted events as tab-separated text or NDJSON,
// applies the last-N window, and prints the optional per-label summary.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/openclaw/clawgrep/internal/domain"
)

// Label colors follow the original palette: basic ANSI colors for the four
// primary labels, bright variants for the file actions.
var labelColors = map[string]lipgloss.Color{
	domain.LabelExec:     lipgloss.Color("3"),  // yellow
	domain.LabelThinking: lipgloss.Color("2"),  // green
	domain.LabelWeb:      lipgloss.Color("5"),  // magenta
	domain.LabelFetch:    lipgloss.Color("4"),  // blue
	domain.LabelRead:     lipgloss.Color("12"), // bright blue
	domain.LabelWrite:    lipgloss.Color("9"),  // bright red
	domain.LabelEdit:     lipgloss.Color("11"), // bright yellow
}

const (
	timestampColor = lipgloss.Color("6") // cyan
	fallbackColor  = lipgloss.Color("7") // gray for unrecognized labels
)

// Formatter renders one event per line as <timestamp>\t<label>\t<payload>.
// Color is an explicit construction-time choice, never ambient state; the
// caller decides based on TTY detection and flags.
type Formatter struct {
	ts       lipgloss.Style
	labels   map[string]lipgloss.Style
	fallback lipgloss.Style
}

// NewFormatter builds a Formatter. With color disabled the styles render to
// plain text, so callers format unconditionally.
func NewFormatter(color bool) *Formatter {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	labels := make(map[string]lipgloss.Style, len(labelColors))
	for label, c := range labelColors {
		labels[label] = r.NewStyle().Foreground(c)
	}
	return &Formatter{
		ts:       r.NewStyle().Foreground(timestampColor),
		labels:   labels,
		fallback: r.NewStyle().Foreground(fallbackColor),
	}
}

// Line renders one event. Only the timestamp and label fields are colored;
// the payload is passed through verbatim.
func (f *Formatter) Line(ev domain.Event) string {
	style, ok := f.labels[ev.Label]
	if !ok {
		style = f.fallback
	}
	return fmt.Sprintf("%s\t%s\t%s", f.ts.Render(ev.Timestamp), style.Render(ev.Label), ev.Payload)
}
