package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

var errNeedExactlyOneAnchor = errors.New("specify exactly one of --before or --after")

func moveCmd() *Command {
	flags := flag.NewFlagSet("move", flag.ContinueOnError)
	before := flags.String("before", "", "place node immediately before this anchor")
	after := flags.String("after", "", "place node immediately after this anchor")

	return &Command{
		Flags: flags,
		Usage: "move <path> <node>",
		Short: "Move a node before or after an anchor",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) < 2 {
				return errMissingPath
			}
			if (*before == "") == (*after == "") {
				return errNeedExactlyOneAnchor
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

			if *before != "" {
				anchor, err := parseLinkIndex(*before)
				if err != nil {
					return err
				}
				s.MoveBefore(node, anchor)
			} else {
				anchor, err := parseLinkIndex(*after)
				if err != nil {
					return err
				}
				s.MoveAfter(node, anchor)
			}

			return nil
		},
	}
}
