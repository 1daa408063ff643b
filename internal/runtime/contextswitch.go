package runtime

import "sync"

// contextSwitcher is the low-level register save/restore primitive of
// spec.md §4.6, abstracted behind an interface so the portable backend
// used by tests and the hosted demo, and the real ARM backend used when
// cross-compiling for the target, share the same tick engine.
//
// Grounded on runtime2.go's own documented strategy for this exact
// problem: gccgo cannot rely on gc's raw stack-copying context switch
// either, so g carries `context g_ucontext_t // saved context for
// setcontext` — an opaque saved execution context, swapped in and out by
// a platform primitive (getcontext/setcontext) rather than inline
// register moves. This interface is that same idea generalized to two
// concrete "opaque execution context" strategies: goroutines parked on
// channels (portable) and raw ARM registers (bare metal).
type contextSwitcher interface {
	// prepare is called once, at Create time, so a backend that needs to
	// set up resources per task (the cooperative backend's parked
	// goroutine) can do so before the task is ever dispatched.
	prepare(t *TCB)

	// dispatch resumes to with no outgoing context to save — Start's
	// case (spec.md §4.7: "There is no previous context to save; the
	// caller's stack is abandoned.").
	dispatch(to *TCB)

	// switchTo saves from's context and resumes to's, per spec.md §4.6.
	switchTo(from, to *TCB)
}

// defaultSwitcher is provided per build target: contextswitch_sim.go for
// hosted/test builds, contextswitch_arm.go (build tag arm) for the real
// target.

// cooperativeSwitcher is the portable backend. It cannot interrupt a
// running Go function mid-execution — no portable primitive does that —
// so it models spec.md's "cooperatively-written task functions" (§1)
// literally: each task runs on its own goroutine, parked on a
// buffered-size-1 channel between dispatches, and control only ever
// passes at a task's own cooperation points (a Sleep call, or an
// explicit Yield). Exactly one task goroutine is ever unblocked at a
// time, so this never introduces real parallelism into scheduler state
// (spec.md §5's "no lock required" argument still holds; see
// SPEC_FULL.md §5).
type cooperativeSwitcher struct {
	mu     sync.Mutex
	resume [MaxTasks]chan struct{}
	armed  [MaxTasks]bool
}

func newCooperativeSwitcher() *cooperativeSwitcher {
	return &cooperativeSwitcher{}
}

func (c *cooperativeSwitcher) channelFor(id TaskID) chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.resume[id] == nil {
		c.resume[id] = make(chan struct{}, 1)
	}
	return c.resume[id]
}

func (c *cooperativeSwitcher) prepare(t *TCB) {
	ch := c.channelFor(t.id)
	entry := t.entry
	id := t.id

	c.mu.Lock()
	alreadyArmed := c.armed[id]
	c.armed[id] = true
	c.mu.Unlock()
	if alreadyArmed {
		return
	}

	go func() {
		<-ch
		if entry != nil {
			entry()
		}
		// Task entry functions are contractually infinite loops;
		// returning is undefined (spec.md §4.3). The goroutine simply
		// exits; the scheduler never dispatches this taskref again
		// because nothing re-enqueues it.
	}()
}

func (c *cooperativeSwitcher) dispatch(to *TCB) {
	c.channelFor(to.id) <- struct{}{}
}

func (c *cooperativeSwitcher) switchTo(from, to *TCB) {
	c.channelFor(to.id) <- struct{}{}
	<-c.channelFor(from.id)
}

// Yield is the cooperation point a task body running under the portable
// backend calls once per unit of work so the scheduler gets a chance to
// act on ticks accumulated since the task last yielded. It is not part of
// spec.md §6's public API: real ARM hardware preempts asynchronously via
// the timer IRQ regardless of what instruction a task is on, so a real
// build never needs it. It exists only because a hosted Go goroutine
// cannot be asynchronously paused mid-function by anything portable;
// platform/sim's timer drives a pending-tick counter, and Yield drains it
// from the calling task's own goroutine, which is the only goroutine
// allowed to call into switchTo on that task's behalf.
func Yield() {
	for drainPendingTick() {
		Tick()
	}
}
