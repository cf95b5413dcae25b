// acidl is a small command-line front end over the acidlist engine: create
// files, inspect their lists, relink nodes, and run an interactive session.
// It is a separate binary, not part of the library.
package main

import (
	"context"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func allCommands() []*Command {
	return []*Command{
		newCmd(),
		showCmd(),
		moveCmd(),
		touchCmd(),
		replCmd(),
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	o := NewIO(stdout, stderr)

	if len(args) < 2 {
		printUsage(o)
		return 1
	}

	name, rest := args[1], args[2:]

	if name == "-h" || name == "--help" || name == "help" {
		printUsage(o)
		return 0
	}

	for _, c := range allCommands() {
		if c.Name() == name {
			return c.Run(context.Background(), o, rest)
		}
	}

	o.ErrPrintln("unknown command:", name)
	printUsage(o)
	return 1
}

func printUsage(o *IO) {
	o.Println("Usage: acidl <command> [args]")
	o.Println()
	o.Println("Commands:")
	for _, c := range allCommands() {
		o.Println(c.HelpLine())
	}
}
