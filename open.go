package acidlist

import (
	"fmt"
	"math"
	"os"
	"unsafe"
)

// Open validates and maps an already-opened read/write file as an
// acidlist [Store].
//
// Open takes ownership of f on success; f is left open (and unmapped) on
// error, and the caller is responsible for closing it.
//
// Ordering matters here: the length check against sizeof(Header) happens
// before any dereference of the mapping, because a mapping shorter than
// the header would fault on access.
//
// Possible errors: [ErrWrongArchitecture] (magic mismatch, or a file
// larger than this platform's addressable range), [ErrNotInitialized]
// (file too short, zero heads, a head or node count above maxIndexCount,
// or a length that doesn't match the header-implied size),
// [ErrWrongDataType] (payload size mismatch), or an
// OS error from stat/lock/mmap.
func Open[T any](f *os.File) (*Store[T], error) {
	fd := int(f.Fd())

	// Blocks until acquired — the only multi-process coordination
	// primitive this package offers.
	if err := lockExclusive(fd); err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = unlock(fd)
		return nil, fmt.Errorf("stat: %w", err)
	}

	size := info.Size()
	if size < 0 || uint64(size) > uint64(math.MaxInt) {
		_ = unlock(fd)
		return nil, fmt.Errorf("file size %d exceeds addressable range: %w", size, ErrWrongArchitecture)
	}

	headerSize := int64(unsafe.Sizeof(Header{}))
	if size < headerSize {
		_ = unlock(fd)
		return nil, fmt.Errorf("file size %d smaller than header size %d: %w", size, headerSize, ErrNotInitialized)
	}

	data, err := mmapFile(fd, int(size))
	if err != nil {
		_ = unlock(fd)
		return nil, err
	}

	hdr := (*Header)(unsafe.Pointer(&data[0]))

	if hdr.Magic != magicACID {
		_ = munmapFile(data)
		_ = unlock(fd)
		return nil, fmt.Errorf("bad magic %#x: %w", hdr.Magic, ErrWrongArchitecture)
	}

	var zero T
	wantDataSize := uint32(unsafe.Sizeof(zero))
	if hdr.DataSize != wantDataSize {
		_ = munmapFile(data)
		_ = unlock(fd)
		return nil, fmt.Errorf("payload size %d != %d: %w", hdr.DataSize, wantDataSize, ErrWrongDataType)
	}

	if hdr.Heads < 1 {
		_ = munmapFile(data)
		_ = unlock(fd)
		return nil, fmt.Errorf("heads count is 0: %w", ErrNotInitialized)
	}

	if hdr.Heads > maxIndexCount || hdr.Nodes > maxIndexCount {
		_ = munmapFile(data)
		_ = unlock(fd)
		return nil, fmt.Errorf("heads %d / nodes %d exceed the link index range: %w", hdr.Heads, hdr.Nodes, ErrNotInitialized)
	}

	lay, err := computeLayout(hdr.Heads, hdr.Nodes, unsafe.Sizeof(node[T]{}), unsafe.Alignof(node[T]{}))
	if err != nil {
		_ = munmapFile(data)
		_ = unlock(fd)
		return nil, err
	}

	if lay.fileSize != uint64(size) {
		_ = munmapFile(data)
		_ = unlock(fd)
		return nil, fmt.Errorf("file size %d != header-implied size %d: %w", size, lay.fileSize, ErrNotInitialized)
	}

	return bind[T](f, data, lay, hdr.Heads, hdr.Nodes), nil
}
