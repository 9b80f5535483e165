// Package config resolves the user's options from built-in defaults and an
// optional YAML config file. Command-line flags are applied on top by the
// caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"boykisserfetch/ascii"
	"boykisserfetch/display"
)

// EnvConfigPath names an alternative config file.
const EnvConfigPath = "BOYKISSERFETCH_CONFIG"

// Options are the resolved user choices.
type Options struct {
	// Color is the palette name for the art and labels
	Color string
	// Boykisser is the art name
	Boykisser string
	// Gap is the number of spaces between art and info column
	Gap int
}

// file mirrors config.yaml. Pointers distinguish "unset" from zero values.
type file struct {
	Color     string `yaml:"color"`
	Boykisser string `yaml:"boykisser"`
	Gap       *int   `yaml:"gap"`
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		Color:     display.DefaultColor,
		Boykisser: ascii.DefaultName,
		Gap:       display.DefaultGap,
	}
}

// ResolvePath picks the config file to read. An explicit path (from the
// command line, then the environment) must exist; the default location is
// optional.
func ResolvePath(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "boykisserfetch", "config.yaml"), false
}

// Load reads path over the defaults and validates the result. A missing
// file is only an error when explicit is set.
func Load(path string, explicit bool) (Options, error) {
	opts := Default()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return opts, nil
		}
		return opts, fmt.Errorf("reading config file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return opts, fmt.Errorf("parsing config YAML %s: %w", path, err)
	}

	if f.Color != "" {
		opts.Color = f.Color
	}
	if f.Boykisser != "" {
		opts.Boykisser = f.Boykisser
	}
	if f.Gap != nil {
		opts.Gap = *f.Gap
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("config file %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks every option against its allow-list.
func (o Options) Validate() error {
	if err := ValidateColor(o.Color); err != nil {
		return err
	}
	if err := ValidateBoykisser(o.Boykisser); err != nil {
		return err
	}
	if o.Gap < 0 {
		return fmt.Errorf("invalid gap %d: must not be negative", o.Gap)
	}
	return nil
}

// ValidateColor reports whether name is a selectable color.
func ValidateColor(name string) error {
	if !display.HasColor(name) {
		return fmt.Errorf("invalid color %q: %w", name, display.ErrUnknownColor)
	}
	return nil
}

// ValidateBoykisser reports whether name is an art offered on this platform.
func ValidateBoykisser(name string) error {
	if !ascii.Valid(name) {
		return fmt.Errorf("invalid boykisser %q: %w", name, ascii.ErrUnknownArt)
	}
	return nil
}
