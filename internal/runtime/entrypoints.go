package runtime

// Start dispatches the first task and never returns (spec.md §4.7,
// §6). If no task is ready — nothing was ever Created — it halts instead
// of dispatching nothing, per spec.md §8 scenario S6.
func Start() {
	next := sched.pickNext()
	if !next.valid() {
		sched.log("start: no ready task, halting")
		haltForever()
		return
	}
	t := sched.taskAt(next)
	t.state = Running
	sched.current = next
	sched.switcher.dispatch(t)
	haltForever()
}

// haltForever parks the caller indefinitely. The real ARM backend never
// reaches it from Start (armDispatch branches away for good), but the
// cooperative backend's dispatch returns immediately after arming the
// task's goroutine, so Start's own goroutine needs somewhere to sit.
func haltForever() {
	select {}
}

// Tick runs the six steps of spec.md §4.5, in order: advance the tick
// counter, wake any sleepers whose wakeTick has reached zero, demote the
// current task back to Ready if it's still Running (the round-robin
// step — this always runs before pickNext, so a same-priority rotation
// naturally lets the demoted task be picked again if nothing else is
// ready at its priority or better), pick the next task, and — only if
// picking actually chose someone else — switch to it.
//
// Demoting before picking, rather than after, is what gives priority
// strictness its teeth: a Ready task at a numerically higher (lower
// priority) level can only ever be returned by pickNext when nothing at
// the current task's own priority or better is sitting in Ready, because
// the current task is itself re-enqueued at its own priority before the
// scan runs.
//
// When nothing else is ready, Tick returns without calling the switcher
// at all — the calling goroutine (whichever task's own Sleep/Yield called
// in) simply falls back out and keeps running, the same as the
// original's synchronous "swi 0" would if no context switch occurred.
func Tick() {
	sched.tick++
	sched.wakeSleepers()

	if sched.current.valid() {
		pt := sched.taskAt(sched.current)
		if pt.state == Running {
			pt.state = Ready
			sched.readyEnqueue(sched.current)
		}
	}

	next := sched.pickNext()
	if !next.valid() {
		return
	}
	if next == sched.current {
		sched.taskAt(next).state = Running
		return
	}

	prev := sched.current
	nt := sched.taskAt(next)
	nt.state = Running
	sched.current = next

	if prev.valid() {
		sched.switcher.switchTo(sched.taskAt(prev), nt)
	} else {
		sched.switcher.dispatch(nt)
	}
}

// IRQHandler is the entry point the timer's interrupt vector reaches
// (spec.md §6). It only acknowledges the hardware and hands off to
// SVCHandler — per spec.md's two-stage dispatch, the actual reschedule
// never runs in IRQ context, the same split
// original_source/os/scheduler.c draws between its IRQ vector stub and
// the SWI-mode handler that calls pick_next_task.
func IRQHandler() {
	if sched.intc == nil || !sched.intc.TimerIRQPending() {
		return
	}
	if sched.timer != nil {
		sched.timer.AcknowledgeIRQ()
	}
	SVCHandler()
}

// SVCHandler is the supervisor-call entry point: the second stage of
// spec.md's two-stage dispatch, and the only place Tick is invoked on
// behalf of a hardware event (tests and Sleep call Tick/SVCHandler
// directly, bypassing IRQHandler entirely, which is the point of
// keeping tick logic decoupled from the interrupt plumbing).
func SVCHandler() {
	Tick()
}

// Sleep suspends the calling task for the given number of ticks
// (spec.md §4.4). It panics if called with no task current — there is no
// stack to save a suspended context into and no sane "resume" semantics
// (spec.md §7).
//
// ticks == 0 does not special-case into an infinite sleep: the task is
// put directly onto Ready instead of onto the sleep list, so it is
// eligible to be picked again the moment the reschedule below runs, same
// as any other Ready task at its priority — it never actually blocks
// unless something else is also Ready.
//
// sched.current is left pointing at the calling task until the reschedule
// below runs Tick; Tick reads it as "the outgoing task" and, finding it
// not Running, leaves it off the ready queue and switches away through
// the normal switchTo path. Clearing it here instead would make Tick
// treat this as a from-nothing dispatch (the Start path), which only
// arms the incoming task's channel without ever parking the caller — the
// calling goroutine would fall straight through Sleep and keep running
// concurrently with whatever got dispatched.
//
// Sleep raises the reschedule trampoline immediately after enqueuing,
// rather than waiting for the next timer tick, because
// original_source/os/scheduler.c's sleep() does exactly that: it sets
// wake_tick and then unconditionally executes "swi 0" as its last
// statement. See SPEC_FULL.md §9.
func Sleep(ticks uint32) {
	cur := sched.current
	if !cur.valid() {
		panic(notTaskContext)
	}
	t := sched.taskAt(cur)

	if ticks == 0 {
		t.state = Ready
		sched.readyEnqueue(cur)
	} else {
		t.wakeTick = ticks
		t.state = Sleeping
		sched.sleepEnqueue(cur)
	}

	SVCHandler()
}
