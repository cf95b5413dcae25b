package main

import (
	"context"

	acidlist "github.com/jameysharp/acid-list"
	flag "github.com/spf13/pflag"
)

func showCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("show", flag.ContinueOnError),
		Usage: "show <path>",
		Short: "Print every list's traversal",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) < 1 {
				return errMissingPath
			}

			s, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			hdr := s.Header()
			o.Printf("heads=%d nodes=%d\n", hdr.Heads, hdr.Nodes)

			for h := uint32(0); h < hdr.Heads; h++ {
				o.Printf("head %d:", h)
				printList(o, s, h)
			}
			return nil
		},
	}
}

func printList(o *IO, s *acidlist.Store[record], h uint32) {
	start := acidlist.Head(h)
	cur := start
	for {
		_, next := s.Neighbors(cur)
		if next == start {
			o.Println()
			return
		}
		rec := s.Get(next.Index())
		o.Printf(" %d(%q)", next.Index(), stringOf(rec.Label))
		cur = next
	}
}
