package acidlist

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unsafe"
)

// Create builds a new acidlist file at path and returns an open handle.
//
// heads must be >= 1 and both heads and nodes must fit the tagged link
// index encoding (< 2^31). All nodes are threaded into list 0 in index
// order; every other head starts empty.
//
// Possible errors: [ErrAlreadyExists] if path already exists, or an OS
// error from file creation, truncation, locking, or mapping.
func Create[T any](path string, heads, nodes uint32) (*Store[T], error) {
	if heads < 1 {
		panic("acidlist: heads must be >= 1")
	}
	if heads > maxIndexCount || nodes > maxIndexCount {
		panic("acidlist: heads/nodes exceed the tagged link index range")
	}

	var zero T
	nodeSize := unsafe.Sizeof(node[T]{})
	nodeAlign := unsafe.Alignof(node[T]{})

	lay, err := computeLayout(heads, nodes, nodeSize, nodeAlign)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create %q: %w", path, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create %q: %w", path, err)
	}

	store, err := createOnOpenedFile[T](f, lay, heads, nodes, unsafe.Sizeof(zero))
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, err
	}

	return store, nil
}

// createOnOpenedFile truncates, locks, maps, and initializes a freshly
// created (empty, exclusively-opened) file. On success f is owned by the
// returned Store; on error the caller is responsible for closing f.
func createOnOpenedFile[T any](f *os.File, lay layout, heads, nodes uint32, dataSize uintptr) (*Store[T], error) {
	if err := f.Truncate(int64(lay.fileSize)); err != nil {
		return nil, fmt.Errorf("truncate: %w", err)
	}

	fd := int(f.Fd())

	// Acquiring the lock before mapping matches Open's ordering: a
	// concurrent Open that reaches its lock after this point blocks until
	// the initialization below is done and the handle is closed. An Open
	// that locks between the file's creation above and this call does not
	// block; it sees a short or zeroed file and fails validation.
	if err := lockExclusive(fd); err != nil {
		return nil, err
	}

	data, err := mmapFile(fd, int(lay.fileSize))
	if err != nil {
		_ = unlock(fd)
		return nil, err
	}

	store := bind[T](f, data, lay, heads, nodes)

	*store.hdr = Header{
		Magic:    magicACID,
		DataSize: uint32(dataSize),
		Heads:    heads,
		Nodes:    nodes,
		Created:  uint64(time.Now().UnixNano()),
	}

	initializeLinkage(store, heads, nodes)

	return store, nil
}

// initializeLinkage sets every head to an empty self-loop, then — if
// nodes > 0 — threads all nodes into list 0 in index order.
func initializeLinkage[T any](s *Store[T], heads, nodes uint32) {
	for h := uint32(0); h < heads; h++ {
		selfLink := encodeLink(Head(h))
		s.heads[h] = link{previous: selfLink, next: selfLink}
	}

	if nodes == 0 {
		return
	}

	for i := uint32(0); i < nodes; i++ {
		var prev, next LinkIndex
		if i == 0 {
			prev = Head(0)
		} else {
			prev = Node(i - 1)
		}
		if i == nodes-1 {
			next = Head(0)
		} else {
			next = Node(i + 1)
		}
		s.nodes[i].link = link{previous: encodeLink(prev), next: encodeLink(next)}
	}

	s.heads[0] = link{previous: encodeLink(Node(nodes - 1)), next: encodeLink(Node(0))}
}
