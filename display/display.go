// Package display renders an ASCII-art asset side by side with the system
// information column.
package display

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"boykisserfetch/ascii"
	"boykisserfetch/sysinfo"
)

const (
	// labelWidth is the column width labels are padded to.
	labelWidth = 12
	// labelSeparator sits between a label and its value.
	labelSeparator = " : "
	// centerOffset is how many rows above the art's middle the column starts.
	centerOffset = 6
	// DefaultGap is the number of spaces between art and info column.
	DefaultGap = 4
)

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Row pairs one art line with the detail printed next to it, if any.
type Row struct {
	Art    string
	Detail *Detail
}

// Skip returns the art line index the first detail is printed on:
// floor(lineCount/2) - 6. It is negative for arts shorter than twelve lines,
// in which case the leading details fall above the art and are dropped.
func Skip(lineCount int) int {
	return lineCount/2 - centerOffset
}

// Layout aligns details against the art's vertical center. Art line i
// carries details[i-Skip(len(lines))] when that index exists; every other
// line stands alone. Details past the last art line are not shown.
func Layout(lines []string, details []Detail) []Row {
	skip := Skip(len(lines))
	rows := make([]Row, len(lines))
	for i, line := range lines {
		rows[i].Art = line
		if j := i - skip; j >= 0 && j < len(details) {
			rows[i].Detail = &details[j]
		}
	}
	return rows
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithGap sets the number of spaces between the art and the info column.
func WithGap(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.gap = n
		}
	}
}

// WithWidth limits rows to n terminal columns by truncating values. Zero
// disables truncation.
func WithWidth(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.width = n
		}
	}
}

// Renderer writes art and details to a terminal in one accent color.
type Renderer struct {
	out   io.Writer
	gap   int
	width int

	art       lipgloss.Style
	accent    lipgloss.Style
	white     lipgloss.Style
	whiteBold lipgloss.Style
	swatch    []lipgloss.Style
}

// NewRenderer creates a Renderer writing to w. The color profile is detected
// from w, so colors are dropped when w is not a terminal.
//
// Parameters:
//   - w: destination, usually os.Stdout
//   - color: palette name used for the art and labels
//   - opts: gap and width overrides
//
// Returns:
//   - ErrUnknownColor (wrapped) if color is not in the palette
func NewRenderer(w io.Writer, color string, opts ...Option) (*Renderer, error) {
	c, ok := palette[color]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, color)
	}

	lg := lipgloss.NewRenderer(w)
	white := palette["white"]

	r := &Renderer{
		out:       w,
		gap:       DefaultGap,
		art:       lg.NewStyle().Foreground(c),
		accent:    lg.NewStyle().Foreground(c).Bold(true),
		white:     lg.NewStyle().Foreground(white),
		whiteBold: lg.NewStyle().Foreground(white).Bold(true),
	}
	for _, name := range swatch {
		r.swatch = append(r.swatch, lg.NewStyle().Foreground(palette[name]))
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render prints art with details interleaved and returns the number of
// lines that carried a detail.
func (r *Renderer) Render(art *ascii.Art, details []Detail) (int, error) {
	lines := art.Lines()

	artWidth := 0
	for _, line := range lines {
		if w := visibleWidth(line); w > artWidth {
			artWidth = w
		}
	}

	shown := 0
	for _, row := range Layout(lines, details) {
		var b strings.Builder
		if row.Detail == nil {
			b.WriteString(r.art.Render(row.Art))
		} else {
			b.WriteString(r.art.Render(sysinfo.PadRight(row.Art, artWidth)))
			b.WriteString(strings.Repeat(" ", r.gap))
			b.WriteString(r.detail(*row.Detail, artWidth+r.gap))
			shown++
		}
		b.WriteByte('\n')

		if _, err := io.WriteString(r.out, b.String()); err != nil {
			return shown, fmt.Errorf("writing output: %w", err)
		}
	}
	return shown, nil
}

// detail draws one info row; used is the width already taken on the line.
func (r *Renderer) detail(d Detail, used int) string {
	switch d.Kind {
	case KindDelimiter:
		return r.white.Render(strings.Repeat("-", 29))

	case KindHostInfo:
		return r.accent.Render(d.Label) + r.whiteBold.Render("@") + r.accent.Render(d.Value)

	case KindColors:
		var b strings.Builder
		for _, s := range r.swatch {
			b.WriteString(s.Render("████"))
		}
		return b.String()

	default:
		label := r.accent.Render(d.Label)
		if pad := labelWidth - runewidth.StringWidth(d.Label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		value := d.Value
		if r.width > 0 {
			room := r.width - used - max(labelWidth, runewidth.StringWidth(d.Label)) - len(labelSeparator)
			value = sysinfo.TruncateString(value, room)
		}
		return label + r.whiteBold.Render(labelSeparator) + value
	}
}

// visibleWidth calculates the display width of s excluding ANSI escape codes.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}
