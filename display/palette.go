package display

import (
	"errors"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// DefaultColor is the accent used when none is selected.
const DefaultColor = "white"

// ErrUnknownColor is returned for names outside the palette.
var ErrUnknownColor = errors.New("unknown color")

// palette maps selectable color names to terminal colors. The first sixteen
// are the standard ANSI slots so they follow the user's terminal theme.
var palette = map[string]lipgloss.Color{
	"black":          lipgloss.Color("0"),
	"red":            lipgloss.Color("1"),
	"green":          lipgloss.Color("2"),
	"yellow":         lipgloss.Color("3"),
	"blue":           lipgloss.Color("4"),
	"magenta":        lipgloss.Color("5"),
	"cyan":           lipgloss.Color("6"),
	"white":          lipgloss.Color("7"),
	"bright_black":   lipgloss.Color("8"),
	"bright_red":     lipgloss.Color("9"),
	"bright_green":   lipgloss.Color("10"),
	"bright_yellow":  lipgloss.Color("11"),
	"bright_blue":    lipgloss.Color("12"),
	"bright_magenta": lipgloss.Color("13"),
	"bright_cyan":    lipgloss.Color("14"),
	"bright_white":   lipgloss.Color("15"),
	"pink":           lipgloss.Color("#ff69b4"),
	"purple":         lipgloss.Color("#9b59b6"),
	"orange":         lipgloss.Color("#ff8c00"),
}

// swatch is the order of the color-row blocks.
var swatch = []string{"black", "red", "green", "yellow", "blue", "magenta"}

// ColorNames returns every selectable color, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasColor reports whether name is in the palette.
func HasColor(name string) bool {
	_, ok := palette[name]
	return ok
}
