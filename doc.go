// Package acidlist provides an embedded, single-process, persistent
// doubly-linked-list engine backed by a memory-mapped file.
//
// A file holds a fixed-size header, a fixed array of list heads
// (sentinels), and a fixed array of nodes carrying a caller-defined
// payload type of compile-time-known size. Nodes are never allocated or
// freed after creation — only moved between lists. Applications that need
// free-list semantics designate one head as a free list and move nodes
// into and out of it.
//
// acidlist is not a durable database by default: mutations land in the
// memory mapping immediately, but the on-disk image only reflects them
// durably after [Store.Checkpoint]. A crash between the five writes of a
// single [Store.MoveBefore]/[Store.MoveAfter] can leave the file
// violating list invariants; recovery from that is the caller's problem.
//
// # Basic usage
//
//	store, err := acidlist.Create[MyPayload]("/tmp/my.list", 4, 1000)
//	if err != nil {
//	    // handle acidlist.ErrAlreadyExists or an OS error
//	}
//	defer store.Close()
//
//	*store.Get(0) = MyPayload{ /* ... */ }
//	store.MoveBefore(0, acidlist.Head(1))
//	_ = store.Checkpoint()
//
// # Concurrency
//
// A [Store] is exclusively owned by its goroutine. No internal locking
// coordinates concurrent mutation from multiple goroutines against the
// same handle — callers must serialize that themselves, the same way the
// underlying mapping has no internal synchronization. Across processes,
// [Open] takes an exclusive advisory lock on the file for the lifetime of
// the handle; a second process's Open blocks until the first Closes.
package acidlist
