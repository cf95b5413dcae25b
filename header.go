package acidlist

import (
	"fmt"
	"unsafe"
)

// magicACID is the fixed header magic, ASCII "ACID" read as a native
// uint32. It is never byte-swapped on read or write: storing it as a
// plain uint32 field in a struct overlaid on the mapping means a file
// written on a foreign-endian host fails this comparison automatically,
// which is exactly the incidental endianness-mismatch detection spec'd
// for WrongArchitecture.
const magicACID uint32 = 0x41434944

// Header describes the fixed, immutable shape of an acidlist file:
// magic, payload size, head count, and node count, plus one
// forward-compatible informational field.
//
// Header is read directly out of the memory mapping (see store.go); its
// field order and sizes are the on-disk layout, native byte order, not a
// portable wire format.
type Header struct {
	Magic    uint32
	DataSize uint32
	Heads    uint32
	Nodes    uint32

	// Created is informational only: the Unix-nanosecond time Create
	// wrote the file. Never validated on Open. It shows that a field can
	// be appended after the required prefix without disturbing
	// magic/data_size/heads/nodes, leaving room for callers to grow the
	// header further as long as that prefix stays put.
	Created uint64
}

// link is the on-disk {previous, next} pair stored for every head and
// node slot, each field holding an encoded LinkIndex.
type link struct {
	previous uint32
	next     uint32
}

// node is the on-disk shape of one payload-bearing slot: a link plus the
// caller's payload. Its size and alignment depend on T, computed via
// unsafe.Sizeof/unsafe.Alignof at the call site — there is no manual
// padding arithmetic to keep in sync with the Go compiler's layout rules.
type node[T any] struct {
	link    link
	payload T
}

// alignUp rounds x up to the next multiple of a, where a is a power of
// two (true of every alignment unsafe.Alignof can report).
func alignUp(x, a uint64) uint64 {
	return (x + a - 1) &^ (a - 1)
}

// layout holds the byte offsets and total size derived from a header
// shape plus a node type's size and alignment.
type layout struct {
	headsOffset uint64
	nodesOffset uint64
	fileSize    uint64
}

// computeLayout derives the on-disk byte layout for heads and nodes
// arrays from counts and a node type's size/alignment: the heads array
// starts right after the header (link-aligned), the nodes array starts
// right after the heads array (node-aligned), and the file ends after
// the last node.
//
// All arithmetic is performed in 64-bit to avoid overflow at the upper
// end of heads/nodes, then range-checked against maxFileSizeBytes.
func computeLayout(heads, nodes uint32, nodeSize, nodeAlign uintptr) (layout, error) {
	const linkAlign = uint64(unsafe.Alignof(link{}))
	const linkSize = uint64(unsafe.Sizeof(link{}))
	const headerSize = uint64(unsafe.Sizeof(Header{}))

	headsOffset := alignUp(headerSize, linkAlign)
	headsEnd := headsOffset + uint64(heads)*linkSize

	nodesOffset := alignUp(headsEnd, uint64(nodeAlign))
	fileSize := nodesOffset + uint64(nodes)*uint64(nodeSize)

	if fileSize > maxFileSizeBytes {
		return layout{}, fmt.Errorf("computed file size %d exceeds limit %d: %w", fileSize, maxFileSizeBytes, ErrWrongArchitecture)
	}

	return layout{headsOffset: headsOffset, nodesOffset: nodesOffset, fileSize: fileSize}, nil
}
