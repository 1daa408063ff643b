package runtime

// Create registers a new task with the scheduler. entry is the task's
// entry function (contractually an infinite loop; returning from it is
// undefined). stack is caller-owned memory; the stackReserveWords reserve
// below the initial stack pointer is left only when stack is at least
// 2*stackReserveWords words long (shorter buffers start one word below
// the top, see below); priority is masked to
// [0, MaxPriorities) exactly as original_source/os/scheduler.c's
// task_create masks it ("priority & 31").
//
// Fails with ErrPoolExhausted once MaxTasks tasks have been created,
// per spec.md §7's requirement that pool exhaustion be a distinguishable
// failure rather than original_source's silent no-op.
func Create(entry func(), stack []uintptr, priority int) (TaskID, error) {
	if sched.taskCount >= MaxTasks {
		return -1, ErrPoolExhausted
	}

	idx := taskref(sched.taskCount)
	sched.taskCount++

	t := sched.taskAt(idx)
	*t = TCB{
		stackBase: stack,
		entry:     entry,
		priority:  priority & (MaxPriorities - 1),
		state:     Ready,
		wakeTick:  0,
		next:      nilRef,
		prev:      nilRef,
		id:        TaskID(idx),
	}

	// Stack pointer starts near the top of the buffer, leaving
	// stackReserveWords of headroom below the top so the first context
	// save has room to push without straddling the boundary (spec.md
	// §4.3). Mirrors original_source/os/scheduler.c's
	// "if (size >= 32) sp = stack + size - 16; else sp = stack + size -
	// 1" short-buffer fallback.
	switch {
	case len(stack) >= 2*stackReserveWords:
		t.savedSP = len(stack) - stackReserveWords
	case len(stack) > 0:
		t.savedSP = len(stack) - 1
	default:
		t.savedSP = 0
	}

	t.savedPC = entryPC(entry)

	sched.readyEnqueue(idx)
	sched.switcher.prepare(t)

	return t.id, nil
}
