// Package main provides the boykisserfetch command-line tool, which prints a
// boykisser ASCII art next to a column of system information.
package main

import (
	"fmt"
	"io"
	"os"
)

// Set via ldflags at release time.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit code:
// 0 for a normal run, help or list, 1 for any invalid argument.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Usage: %s\n", cmd.UseLine())
		fmt.Fprintf(stderr, "Try '%s --help' for more information.\n", cmd.Name())
		return 1
	}
	return 0
}

// choiceValue is a string flag restricted to an allow-list; invalid values
// are rejected while flags are parsed.
type choiceValue struct {
	value    *string
	validate func(string) error
}

func newChoiceValue(p *string, def string, validate func(string) error) *choiceValue {
	*p = def
	return &choiceValue{value: p, validate: validate}
}

func (v *choiceValue) String() string { return *v.value }

func (v *choiceValue) Set(s string) error {
	if err := v.validate(s); err != nil {
		return err
	}
	*v.value = s
	return nil
}

func (v *choiceValue) Type() string { return "name" }
