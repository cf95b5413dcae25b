package acidlist

// Hardcoded implementation limits.
//
// The link index encoding (see linkindex.go) steals the top bit of a
// uint32 to discriminate Node from Head, which caps both counts at
// 2^31-1. This is a hard format constraint, not a tunable.
const maxIndexCount = 1<<31 - 1

// maxFileSizeBytes is a safety guardrail against configurations nobody
// has tested, not a RAM limit — mmap does not load the whole file into
// memory. computeLayout reports exceeding it as [ErrWrongArchitecture],
// the same sentinel used for "this shape doesn't fit this platform".
const maxFileSizeBytes = uint64(1) << 40 // 1 TiB
