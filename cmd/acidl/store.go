package main

import (
	"os"

	acidlist "github.com/jameysharp/acid-list"
)

// openStore opens path read/write and hands it to acidlist.Open. The
// advisory lock means this blocks if another process already holds the
// file open.
func openStore(path string) (*acidlist.Store[record], error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	s, err := acidlist.Open[record](f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return s, nil
}
