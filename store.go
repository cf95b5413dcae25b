package acidlist

import (
	"os"
	"unsafe"
)

// Store is an open handle to an acidlist file, generic over the payload
// type T carried by every node.
//
// A Store is exclusively owned by the goroutine using it — see the
// package doc for the concurrency model. Always call [Store.Close] when
// done: Close is the only path that unmaps the file, and the only one
// that reports an unmap error. No finalizer is registered on a Store.
type Store[T any] struct {
	f    *os.File
	fd   int
	data []byte

	hdr   *Header
	heads []link
	nodes []node[T]

	closed bool
}

// Header returns a copy of the store's immutable shape: payload size,
// head count, and node count.
func (s *Store[T]) Header() Header {
	s.checkOpen()
	return *s.hdr
}

// slot addresses the link pair for any LinkIndex, head or node. Index
// validity (bounds) must already have been checked by the caller — this
// is the single place that turns a tagged address into a *link pointer
// into the mapping.
func (s *Store[T]) slot(l LinkIndex) *link {
	if l.IsHead() {
		return &s.heads[l.Index()]
	}
	return &s.nodes[l.Index()].link
}

// Get returns a pointer directly into the mapped payload of node i — a
// zero-copy borrowed view, valid until the next call that invalidates the
// mapping (Close). Mutating through the returned pointer is equivalent to
// [Store.Set].
//
// Get aborts the process if i is out of range: this is a programming
// error, not a recoverable one.
func (s *Store[T]) Get(i uint32) *T {
	s.checkOpen()
	s.checkNodeIndex(i)
	return &s.nodes[i].payload
}

// Set overwrites node i's payload. It does not touch linkage.
//
// Set aborts the process if i is out of range.
func (s *Store[T]) Set(i uint32, v T) {
	s.checkOpen()
	s.checkNodeIndex(i)
	s.nodes[i].payload = v
}

// Neighbors reads the Link stored at the addressed slot (head or node)
// and decodes both fields. It is a pure read.
//
// Neighbors aborts the process if l addresses an out-of-range head or
// node.
func (s *Store[T]) Neighbors(l LinkIndex) (previous, next LinkIndex) {
	s.checkOpen()
	s.checkLinkIndex(l)

	raw := s.slot(l)
	return decodeLink(raw.previous), decodeLink(raw.next)
}

// Close synchronously unmaps the file, releases the advisory lock, and
// closes the descriptor. Close is idempotent; subsequent calls are
// no-ops.
//
// Dropping a Store without calling Close does not unmap the file: no
// finalizer is registered, so the mapping stays in place until the
// process exits. An error here (unmap, unlock or close failing) is
// returned rather than treated as fatal.
func (s *Store[T]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	if s.data != nil {
		if err := munmapFile(s.data); err != nil && firstErr == nil {
			firstErr = err
		}
		s.data = nil
		s.heads = nil
		s.nodes = nil
		s.hdr = nil
	}

	if err := unlock(s.fd); err != nil && firstErr == nil {
		firstErr = err
	}

	if err := s.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}

// checkOpen aborts the process if the handle has already been closed.
// Using the store after Close is a programming error, not a recoverable
// one.
func (s *Store[T]) checkOpen() {
	if s.closed {
		panic("acidlist: use of closed Store")
	}
}

func (s *Store[T]) checkNodeIndex(i uint32) {
	if i >= s.hdr.Nodes {
		panic("acidlist: node index out of range")
	}
}

func (s *Store[T]) checkHeadIndex(h uint32) {
	if h >= s.hdr.Heads {
		panic("acidlist: head index out of range")
	}
}

func (s *Store[T]) checkLinkIndex(l LinkIndex) {
	if l.IsHead() {
		s.checkHeadIndex(l.Index())
	} else {
		s.checkNodeIndex(l.Index())
	}
}

// bind overlays hdr/heads/nodes views onto the mapped bytes in data. Both
// Create and Open funnel through this after mmap succeeds.
func bind[T any](f *os.File, data []byte, lay layout, heads, nodes uint32) *Store[T] {
	hdr := (*Header)(unsafe.Pointer(&data[0]))

	var headsSlice []link
	if heads > 0 {
		headsSlice = unsafe.Slice((*link)(unsafe.Pointer(&data[lay.headsOffset])), heads)
	}

	var nodesSlice []node[T]
	if nodes > 0 {
		nodesSlice = unsafe.Slice((*node[T])(unsafe.Pointer(&data[lay.nodesOffset])), nodes)
	}

	return &Store[T]{
		f:     f,
		fd:    int(f.Fd()),
		data:  data,
		hdr:   hdr,
		heads: headsSlice,
		nodes: nodesSlice,
	}
}
