package acidlist

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mmapFile maps the full file backing fd, read/write, shared — visible
// to and from other processes mapping the same file.
func mmapFile(fd int, size int) ([]byte, error) {
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	return data, nil
}

// munmapFile unmaps a region previously returned by mmapFile.
func munmapFile(data []byte) error {
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}

// msyncFile requests a synchronous flush of the entire mapped region to
// stable storage, returning once the kernel reports it complete. This is
// the only durability barrier acidlist offers; mutations are visible to
// the mapping immediately but not guaranteed durable until this runs.
func msyncFile(data []byte) error {
	if err := unix.Msync(data, unix.MS_SYNC); err != nil {
		return fmt.Errorf("msync: %w", err)
	}
	return nil
}
