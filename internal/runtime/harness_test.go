package runtime

// recordingSwitcher is the cooperative trampoline spec.md §8 asks the
// test harness to install in place of a real context-switch primitive:
// it never runs task bodies and never blocks a goroutine, it only
// records which TCB became current and in what order, so tests can
// drive the tick engine directly and assert on pure scheduler state.
type recordingSwitcher struct {
	prepared   []TaskID
	dispatched []TaskID
	switches   [][2]TaskID
}

func (r *recordingSwitcher) prepare(t *TCB) {
	r.prepared = append(r.prepared, t.id)
}

func (r *recordingSwitcher) dispatch(to *TCB) {
	r.dispatched = append(r.dispatched, to.id)
}

func (r *recordingSwitcher) switchTo(from, to *TCB) {
	r.switches = append(r.switches, [2]TaskID{from.id, to.id})
}

// newTestScheduler resets the package singleton with a fresh
// recordingSwitcher installed, the way a real boot sequence's Init would
// install defaultSwitcher().
func newTestScheduler() *recordingSwitcher {
	rs := &recordingSwitcher{}
	Init(withSwitcher(rs))
	return rs
}

// currentID returns the TaskID of the task presently marked current, or
// -1 if none.
func currentID() TaskID {
	if !sched.current.valid() {
		return -1
	}
	return sched.taskAt(sched.current).id
}

// noop is a placeholder task entry; the recording switcher never invokes
// it, so its body is irrelevant to every test in this package.
func noop() {}

// readyMembers returns, for diagnostic assertions, every taskref
// currently linked into priority p's FIFO head-to-tail.
func readyMembers(p int) []taskref {
	var out []taskref
	for cur := sched.readyHead[p]; cur.valid(); cur = sched.taskAt(cur).next {
		out = append(out, cur)
	}
	return out
}

// sleepMembers returns every taskref currently linked into the sleep
// list head-to-tail.
func sleepMembers() []taskref {
	var out []taskref
	for cur := sched.sleepHead; cur.valid(); cur = sched.taskAt(cur).next {
		out = append(out, cur)
	}
	return out
}
