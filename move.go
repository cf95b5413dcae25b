package acidlist

// MoveBefore relinks node from so that it sits immediately before anchor
// in whatever list anchor belongs to. anchor may be a node or a head, and
// may be in the same or a different list than from currently is.
//
// MoveBefore aborts the process if anchor addresses Node(from) (moving a
// node adjacent to itself) or if from/anchor are out of range — these are
// programming errors, not recoverable ones.
//
// If from is already immediately before anchor, MoveBefore is a no-op and
// performs no writes — this is required, not just an optimization, so
// repeated idempotent calls never dirty pages.
func (s *Store[T]) MoveBefore(from uint32, anchor LinkIndex) {
	s.checkOpen()
	s.checkNodeIndex(from)
	s.checkLinkIndex(anchor)
	s.checkNotSelf(from, anchor)

	fromRaw := s.slot(Node(from))
	tn := encodeLink(anchor)
	if fromRaw.next == tn {
		return
	}

	tp := s.slot(anchor).previous
	s.relink(from, tp, tn)
}

// MoveAfter relinks node from so that it sits immediately after anchor,
// symmetric to [Store.MoveBefore]. See its doc for preconditions and the
// no-op short-circuit.
func (s *Store[T]) MoveAfter(from uint32, anchor LinkIndex) {
	s.checkOpen()
	s.checkNodeIndex(from)
	s.checkLinkIndex(anchor)
	s.checkNotSelf(from, anchor)

	fromRaw := s.slot(Node(from))
	tp := encodeLink(anchor)
	if fromRaw.previous == tp {
		return
	}

	tn := s.slot(anchor).next
	s.relink(from, tp, tn)
}

// checkNotSelf aborts the process if anchor addresses the very node
// being moved — the one precondition MoveBefore/MoveAfter share beyond
// bounds checking.
func (s *Store[T]) checkNotSelf(from uint32, anchor LinkIndex) {
	if !anchor.IsHead() && anchor.Index() == from {
		panic("acidlist: cannot move a node adjacent to itself")
	}
}

// relink performs the five-write splice that unlinks node from from its
// current neighbors and threads it in between tp and tn (already-encoded
// target previous/next link words). Let P, N be from's current
// neighbors:
//
//  1. slot(N).previous <- P   (unlink forward side)
//  2. slot(P).next     <- N   (unlink backward side)
//  3. slot(from)        = {tp, tn}
//  4. slot(tn).previous <- from
//  5. slot(tp).next     <- from
//
// After step 5, the linkage invariants hold again; no ordering is
// observable mid-operation since a Store is single-threaded and
// exclusively owned by its caller — nothing else touches this handle
// concurrently.
func (s *Store[T]) relink(from uint32, tp, tn uint32) {
	fromEncoded := encodeLink(Node(from))
	fromRaw := s.slot(Node(from))
	p, n := fromRaw.previous, fromRaw.next

	s.slot(decodeLink(n)).previous = p
	s.slot(decodeLink(p)).next = n

	*fromRaw = link{previous: tp, next: tn}

	s.slot(decodeLink(tn)).previous = fromEncoded
	s.slot(decodeLink(tp)).next = fromEncoded
}
