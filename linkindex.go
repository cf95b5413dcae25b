package acidlist

import "fmt"

// headBit marks a raw link word as addressing the heads array rather than
// the nodes array. The remaining 31 bits carry the numeric index, which is
// why heads and nodes are each capped at 2^31-1 (see maxIndexCount).
const headBit = uint32(1) << 31

// LinkIndex is a tagged address referring to any linkable slot in a
// [Store]'s file: either a payload-bearing node or a list head (sentinel).
//
// The zero value is Node(0); use [Node] and [Head] to construct values
// unambiguously.
type LinkIndex struct {
	raw    uint32
	isHead bool
}

// Node returns a LinkIndex addressing node i.
func Node(i uint32) LinkIndex {
	return LinkIndex{raw: i}
}

// Head returns a LinkIndex addressing head h.
func Head(h uint32) LinkIndex {
	return LinkIndex{raw: h, isHead: true}
}

// IsHead reports whether the index addresses a head rather than a node.
func (l LinkIndex) IsHead() bool { return l.isHead }

// Index returns the numeric index, stripped of the head/node tag.
func (l LinkIndex) Index() uint32 { return l.raw }

// String renders the index as "Node(i)" or "Head(h)", useful in error
// messages and the CLI.
func (l LinkIndex) String() string {
	if l.isHead {
		return fmt.Sprintf("Head(%d)", l.raw)
	}
	return fmt.Sprintf("Node(%d)", l.raw)
}

// encode packs a LinkIndex into its on-disk representation: bit 31 set
// means Head, clear means Node, with the low 31 bits carrying the index.
//
// Callers must ensure l.raw < headBit before calling; higher layers
// enforce this at Create/Open time by rejecting heads/nodes counts above
// maxIndexCount.
func encodeLink(l LinkIndex) uint32 {
	if l.isHead {
		return l.raw | headBit
	}
	return l.raw
}

// decodeLink unpacks a raw on-disk link word into a tagged LinkIndex.
func decodeLink(raw uint32) LinkIndex {
	if raw&headBit != 0 {
		return LinkIndex{raw: raw &^ headBit, isHead: true}
	}
	return LinkIndex{raw: raw}
}
