package main

import (
	"context"
	"errors"

	acidlist "github.com/jameysharp/acid-list"
	flag "github.com/spf13/pflag"
)

var errMissingPath = errors.New("missing file path")

func newCmd() *Command {
	flags := flag.NewFlagSet("new", flag.ContinueOnError)
	heads := flags.Uint32("heads", 1, "number of list heads")
	nodes := flags.Uint32("nodes", 0, "number of nodes")
	configPath := flags.String("config", "", "HuJSON file specifying heads/nodes")

	return &Command{
		Flags: flags,
		Usage: "new <path>",
		Short: "Create a new acidlist file",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) < 1 {
				return errMissingPath
			}

			h, n := *heads, *nodes
			if *configPath != "" {
				cfg, err := loadNewConfig(*configPath)
				if err != nil {
					return err
				}
				h, n = cfg.Heads, cfg.Nodes
			}

			s, err := acidlist.Create[record](args[0], h, n)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			o.Printf("created %s: heads=%d nodes=%d\n", args[0], h, n)
			return nil
		},
	}
}
