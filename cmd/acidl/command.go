package main

import (
	"context"
	"errors"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command defines a CLI subcommand: its flags, usage string, one-line
// help summary, and the Exec function that runs it.
type Command struct {
	// Flags defines command-specific flags. Nil means no flags.
	Flags *flag.FlagSet

	// Usage is the freeform usage string, e.g. "show <path>".
	Usage string

	// Short is a one-line description shown in the top-level help listing.
	Short string

	// Exec runs the command after flags are parsed.
	Exec func(ctx context.Context, o *IO, args []string) error
}

func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

func (c *Command) HelpLine() string {
	return "  " + c.Usage + strings.Repeat(" ", max(1, 24-len(c.Usage))) + c.Short
}

func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: acidl", c.Usage)
	if c.Flags != nil && c.Flags.HasFlags() {
		o.Println()
		o.Println("Flags:")
		var buf strings.Builder
		c.Flags.SetOutput(&buf)
		c.Flags.PrintDefaults()
		o.Printf("%s", buf.String())
	}
}

// Run parses flags and executes the command, returning the process exit
// code. Flag-parse errors and Exec errors are both printed to stderr.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	var rest []string
	if c.Flags != nil {
		c.Flags.SetOutput(&strings.Builder{})
		if err := c.Flags.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				c.PrintHelp(o)
				return 0
			}
			o.ErrPrintln("error:", err)
			return 1
		}
		rest = c.Flags.Args()
	} else {
		rest = args
	}

	if err := c.Exec(ctx, o, rest); err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}
	return 0
}
