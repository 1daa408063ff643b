package runtime

// sleepEnqueue inserts t at the head of the sleep list in O(1). List
// order carries no semantics (spec.md §4.2).
func (s *scheduler) sleepEnqueue(r taskref) {
	t := s.taskAt(r)
	t.prev = nilRef
	t.next = s.sleepHead
	if s.sleepHead.valid() {
		s.taskAt(s.sleepHead).prev = r
	}
	s.sleepHead = r
}

// sleepRemove unlinks t from the sleep list in O(1) via its prev/next
// links.
func (s *scheduler) sleepRemove(r taskref) {
	t := s.taskAt(r)
	if t.prev.valid() {
		s.taskAt(t.prev).next = t.next
	} else {
		s.sleepHead = t.next
	}
	if t.next.valid() {
		s.taskAt(t.next).prev = t.prev
	}
	t.next, t.prev = nilRef, nilRef
}

// wakeSleepers walks the entire sleep list once, decrementing wakeTick on
// every sleeper and moving any that reach zero to the ready queue.
// Walking the whole list each tick is acceptable given MaxTasks <= 16
// (spec.md §4.2). Wake order within a single tick is list-traversal
// order (spec.md §8 scenario S5).
//
// Grounded on original_source/os/scheduler.c's timer0_irq_handler, which
// does the identical decrement-to-zero-then-ready walk over the whole
// task pool; this version walks only the sleep list rather than the
// whole pool, since the intrusive list already gives O(sleepers) instead
// of O(MaxTasks).
func (s *scheduler) wakeSleepers() {
	cur := s.sleepHead
	for cur.valid() {
		t := s.taskAt(cur)
		next := t.next // capture before sleepRemove clears it

		if t.wakeTick > 0 {
			t.wakeTick--
			if t.wakeTick == 0 {
				s.sleepRemove(cur)
				t.state = Ready
				s.readyEnqueue(cur)
			}
		}
		cur = next
	}
}
