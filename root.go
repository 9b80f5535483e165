package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"boykisserfetch/ascii"
	"boykisserfetch/config"
	"boykisserfetch/display"
	"boykisserfetch/sysinfo"
)

// flags holds the raw command-line values.
type flags struct {
	color      string
	boykisser  string
	list       bool
	gap        int
	debug      bool
	configPath string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "boykisserfetch",
		Short: "Prints a boykisser with system information",
		Long: `Prints a boykisser with system information.

Defaults can be set in $XDG_CONFIG_HOME/boykisserfetch/config.yaml
(keys: color, boykisser, gap). Flags take precedence over the file.`,
		Example: `  boykisserfetch -c=pink
  boykisserfetch --boykisser=cute --color magenta
  boykisserfetch --list`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.list {
				printBoykissers(stdout)
				return nil
			}

			path, explicit := config.ResolvePath(f.configPath)
			opts, err := config.Load(path, explicit)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("color") {
				opts.Color = f.color
			}
			if cmd.Flags().Changed("boykisser") {
				opts.Boykisser = f.boykisser
			}
			if cmd.Flags().Changed("gap") {
				opts.Gap = f.gap
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			return fetch(opts, f.debug, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.VarP(newChoiceValue(&f.color, display.DefaultColor, config.ValidateColor),
		"color", "c", "set the color of the boykisser")
	fs.VarP(newChoiceValue(&f.boykisser, ascii.DefaultName, config.ValidateBoykisser),
		"boykisser", "b", "set the boykisser to display")
	fs.BoolVarP(&f.list, "list", "l", false, "list all available boykissers")
	fs.IntVar(&f.gap, "gap", display.DefaultGap, "number of spaces between boykisser and info")
	fs.BoolVar(&f.debug, "debug", false, "log failed system probes to stderr")
	fs.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/boykisserfetch/config.yaml)")

	return cmd
}

// printBoykissers lists every art available on this platform.
func printBoykissers(w io.Writer) {
	fmt.Fprintln(w, "Available boykissers:")
	for _, name := range ascii.Names() {
		fmt.Fprintf(w, "    %s\n", name)
	}
}

// fetch collects system information and renders it next to the art.
func fetch(opts config.Options, debug bool, stdout, stderr io.Writer) error {
	art, err := ascii.Get(opts.Boykisser)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, debug)
	info := sysinfo.GetSystemInfo(logger)
	logger.Debug("collected system info", "platform", info.Platform, "gpus", len(info.GPUs))

	r, err := display.NewRenderer(stdout, opts.Color,
		display.WithGap(opts.Gap),
		display.WithWidth(terminalWidth(stdout)),
	)
	if err != nil {
		return err
	}

	details := display.BuildDetails(info)
	shown, err := r.Render(art, details)
	if err != nil {
		return err
	}
	if shown < len(details) {
		logger.Debug("art too short for every detail", "boykisser", art.Name, "shown", shown, "details", len(details))
	}
	return nil
}

// terminalWidth returns the column count of w, or 0 when w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
