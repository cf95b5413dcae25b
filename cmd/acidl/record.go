package main

import acidlist "github.com/jameysharp/acid-list"

// record is the payload type acidl operates on: a short fixed-size label,
// enough to make `show`/`repl` output legible without pulling in a real
// application's schema.
type record struct {
	Label [64]byte
}

func labelOf(s string) [64]byte {
	var out [64]byte
	copy(out[:], s)
	return out
}

func stringOf(label [64]byte) string {
	n := 0
	for n < len(label) && label[n] != 0 {
		n++
	}
	return string(label[:n])
}

// parseLinkIndex accepts "h<N>" for a head or "n<N>" for a node, e.g.
// "h0" or "n12".
func parseLinkIndex(s string) (acidlist.LinkIndex, error) {
	if len(s) < 2 {
		return acidlist.LinkIndex{}, errBadLinkIndex(s)
	}

	n, err := parseUint32(s[1:])
	if err != nil {
		return acidlist.LinkIndex{}, errBadLinkIndex(s)
	}

	switch s[0] {
	case 'h':
		return acidlist.Head(n), nil
	case 'n':
		return acidlist.Node(n), nil
	default:
		return acidlist.LinkIndex{}, errBadLinkIndex(s)
	}
}
