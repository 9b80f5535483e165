// Package ascii provides the embedded boykisser ASCII art variants that are
// displayed next to the system information.
package ascii

import (
	"embed"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
)

// DefaultName is the art shown when none is selected.
const DefaultName = "howyoulook"

// ErrUnknownArt is returned when a name is not in the catalog for the
// current platform.
var ErrUnknownArt = errors.New("unknown boykisser")

//go:embed art/*.txt
var artFS embed.FS

// Art is a single named ASCII-art asset.
type Art struct {
	// Name is the identifier used on the command line (e.g. "howyoulook")
	Name string

	// Text is the raw art with Windows line endings removed
	Text string
}

// Lines splits the art into display lines. A trailing newline does not
// produce an extra empty line.
func (a *Art) Lines() []string {
	return strings.Split(a.Text, "\n")
}

// LineCount returns the number of display lines.
func (a *Art) LineCount() int {
	return strings.Count(a.Text, "\n") + 1
}

// catalog maps art names to their embedded file and the platforms they are
// offered on. A nil goos list means every platform.
var catalog = map[string][]string{
	"withhighthighs":      nil,
	"howyoulook":          nil,
	"ahhhaah":             {"linux"},
	"cute":                nil,
	"cutereversed":        nil,
	"cutie":               nil,
	"sad":                 nil,
	"sowhat":              nil,
	"squinting":           nil,
	"thesilly_large":      nil,
	"thesilly":            nil,
	"typing":              nil,
	"withhighthighsalt":   nil,
	"yayyy":               nil,
	"yippie":              nil,
	"youafurry":           nil,
	"youlikeboys":         nil,
	"youlikeboysfullbody": nil,
}

// Names returns the sorted art names available on this platform.
func Names() []string {
	return namesFor(runtime.GOOS)
}

func namesFor(goos string) []string {
	names := make([]string, 0, len(catalog))
	for name, platforms := range catalog {
		if availableOn(platforms, goos) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func availableOn(platforms []string, goos string) bool {
	if len(platforms) == 0 {
		return true
	}
	for _, p := range platforms {
		if p == goos {
			return true
		}
	}
	return false
}

// Valid reports whether name is offered on this platform.
func Valid(name string) bool {
	return validFor(name, runtime.GOOS)
}

func validFor(name, goos string) bool {
	platforms, ok := catalog[name]
	return ok && availableOn(platforms, goos)
}

// Get loads the named art.
//
// Returns:
//   - The art asset with its text normalized to "\n" line endings
//   - ErrUnknownArt (wrapped) if the name is not offered on this platform
func Get(name string) (*Art, error) {
	return getFor(name, runtime.GOOS)
}

func getFor(name, goos string) (*Art, error) {
	if !validFor(name, goos) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArt, name)
	}

	data, err := artFS.ReadFile("art/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("reading art %q: %w", name, err)
	}

	text := strings.ReplaceAll(string(data), "\r", "")
	text = strings.TrimSuffix(text, "\n")

	return &Art{Name: name, Text: text}, nil
}
