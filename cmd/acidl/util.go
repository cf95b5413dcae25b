package main

import (
	"fmt"
	"strconv"
)

func errBadLinkIndex(s string) error {
	return fmt.Errorf("invalid link index %q: want h<N> or n<N>", s)
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
