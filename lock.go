package acidlist

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// lockExclusive takes a blocking exclusive advisory lock on fd, covering
// the whole file. This is the only multi-process coordination primitive
// acidlist offers: a second process's [Open] on the same file blocks
// here until the first process's [Store.Close] releases it.
//
// Unlike a sidecar lock file, this locks the real data file's inode
// directly, so there is no path-vs-inode replacement race to guard
// against — the fd is already open on the file the caller cares about.
func lockExclusive(fd int) error {
	if err := flockRetryEINTR(fd, unix.LOCK_EX); err != nil {
		return fmt.Errorf("lock file: %w", err)
	}
	return nil
}

// unlock releases a lock taken by lockExclusive. Safe to call on an fd
// that was never locked (flock with LOCK_UN on an unlocked fd is a
// no-op).
func unlock(fd int) error {
	if err := flockRetryEINTR(fd, unix.LOCK_UN); err != nil {
		return fmt.Errorf("unlock file: %w", err)
	}
	return nil
}

// flockRetryEINTR wraps unix.Flock, retrying on EINTR. A signal arriving
// while the kernel is blocking the calling thread on the lock interrupts
// the syscall without actually failing it; Go's own stdlib retries these
// forever, so a generous but finite cap is used here instead to avoid
// spinning under a pathological signal storm.
func flockRetryEINTR(fd, how int) error {
	const maxEINTRRetries = 10000

	var err error
	for range maxEINTRRetries {
		err = unix.Flock(fd, how)
		if err == nil || !errors.Is(err, unix.EINTR) {
			return err
		}
	}
	return err
}
