package main

import (
	"context"
	"fmt"

	acidlist "github.com/jameysharp/acid-list"
	flag "github.com/spf13/pflag"
)

// touchCmd implements the common LRU idiom: move a node to the front of
// a list. MoveBefore(node, Head(h)) would place node immediately before
// the head in next-traversal order, i.e. at the tail, not the front; it
// takes MoveAfter(node, Head(h)) to put node right after the head, which
// is the list's front.
func touchCmd() *Command {
	flags := flag.NewFlagSet("touch", flag.ContinueOnError)
	head := flags.Uint32("head", 0, "head of the LRU list")

	return &Command{
		Flags: flags,
		Usage: "touch <path> <node>",
		Short: "Move a node to the front of a list (LRU touch)",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) < 2 {
				return errMissingPath
			}

			node, err := parseUint32(args[1])
			if err != nil {
				return fmt.Errorf("invalid node index %q: %w", args[1], err)
			}

			s, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			s.MoveAfter(node, acidlist.Head(*head))
			return nil
		},
	}
}
