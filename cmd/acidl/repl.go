package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	acidlist "github.com/jameysharp/acid-list"
	"github.com/peterh/liner"
)

// repl is an interactive session over one already-open store: show, move,
// touch, get, set, without reopening (and re-locking) the file per command.
type repl struct {
	store *acidlist.Store[record]
	liner *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".acidl_history")
}

func (r *repl) run(o *IO) error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = r.liner.ReadHistory(f)
		_ = f.Close()
	}
	defer r.saveHistory()

	hdr := r.store.Header()
	o.Printf("acidl repl (heads=%d nodes=%d). Type 'help' for commands.\n", hdr.Heads, hdr.Nodes)

	for {
		line, err := r.liner.Prompt("acidl> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				o.Println("bye")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			o.Println("bye")
			return nil
		case "help", "?":
			r.printHelp(o)
		case "show":
			for h := uint32(0); h < hdr.Heads; h++ {
				o.Printf("head %d:", h)
				printList(o, r.store, h)
			}
		case "get":
			r.cmdGet(o, args)
		case "set":
			r.cmdSet(o, args)
		case "before":
			r.cmdRelink(o, args, r.store.MoveBefore)
		case "after":
			r.cmdRelink(o, args, r.store.MoveAfter)
		case "touch":
			r.cmdTouch(o, args)
		case "checkpoint":
			if err := r.store.Checkpoint(); err != nil {
				o.ErrPrintln("error:", err)
			}
		default:
			o.Printf("unknown command: %s (type 'help')\n", cmd)
		}
	}
}

func (r *repl) printHelp(o *IO) {
	o.Println(`commands:
  show                    print every list's traversal
  get <node>               print a node's label
  set <node> <label>       set a node's label
  before <node> <anchor>   MoveBefore(node, anchor)
  after <node> <anchor>    MoveAfter(node, anchor)
  touch <node> [head]      MoveAfter(node, Head(head)), default head 0
  checkpoint               flush to stable storage
  exit / quit / q          leave the repl`)
}

func (r *repl) cmdGet(o *IO, args []string) {
	if len(args) < 1 {
		o.ErrPrintln("usage: get <node>")
		return
	}
	i, err := parseUint32(args[0])
	if err != nil {
		o.ErrPrintln("error:", err)
		return
	}
	o.Println(stringOf(r.store.Get(i).Label))
}

func (r *repl) cmdSet(o *IO, args []string) {
	if len(args) < 2 {
		o.ErrPrintln("usage: set <node> <label>")
		return
	}
	i, err := parseUint32(args[0])
	if err != nil {
		o.ErrPrintln("error:", err)
		return
	}
	r.store.Set(i, record{Label: labelOf(strings.Join(args[1:], " "))})
}

func (r *repl) cmdRelink(o *IO, args []string, relink func(uint32, acidlist.LinkIndex)) {
	if len(args) < 2 {
		o.ErrPrintln("usage: before|after <node> <anchor>")
		return
	}
	node, err := parseUint32(args[0])
	if err != nil {
		o.ErrPrintln("error:", err)
		return
	}
	anchor, err := parseLinkIndex(args[1])
	if err != nil {
		o.ErrPrintln("error:", err)
		return
	}
	relink(node, anchor)
}

func (r *repl) cmdTouch(o *IO, args []string) {
	if len(args) < 1 {
		o.ErrPrintln("usage: touch <node> [head]")
		return
	}
	node, err := parseUint32(args[0])
	if err != nil {
		o.ErrPrintln("error:", err)
		return
	}
	head := uint32(0)
	if len(args) > 1 {
		head, err = parseUint32(args[1])
		if err != nil {
			o.ErrPrintln("error:", err)
			return
		}
	}
	r.store.MoveAfter(node, acidlist.Head(head))
}

func (r *repl) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil {
		_, _ = r.liner.WriteHistory(f)
		_ = f.Close()
	}
}

func replCmd() *Command {
	return &Command{
		Usage: "repl <path>",
		Short: "Open a file and start an interactive session",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) < 1 {
				return errMissingPath
			}

			s, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			r := &repl{store: s}
			return r.run(o)
		},
	}
}
