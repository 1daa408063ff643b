package runtime

// scheduler is the process-wide scheduler singleton described in
// spec.md §3. It generalizes runtime2.go's commented-out schedt (gccgo
// names and documents a global scheduler struct, then elides it for this
// particular runtime build — "Commented out for gccgo for now" — this
// repo is the populated version spec.md actually requires) combined with
// p's per-CPU ready-queue fields, collapsed to a single CPU per the
// Non-goals of spec.md §1 (no SMP).
type scheduler struct {
	// readyHead/readyTail index the task pool; one FIFO per priority.
	readyHead [MaxPriorities]taskref
	readyTail [MaxPriorities]taskref

	// readyBitmap has bit p set iff readyHead[p] is non-nil (spec.md §3
	// invariant 2).
	readyBitmap uint32

	// sleepHead is the head of the doubly-linked sleep list. Order
	// carries no semantics (spec.md §4.2).
	sleepHead taskref

	// pool is the fixed TCB storage. Slots [0, taskCount) are live.
	pool [MaxTasks]TCB

	// taskCount is the number of allocated TCBs; monotonically
	// increases (no task deletion).
	taskCount int

	// current is the task presently executing; nilRef only before
	// Start.
	current taskref

	// tick is the monotonic tick counter (diagnostic).
	tick uint64

	// switcher performs the low-level register save/restore contract of
	// spec.md §4.6.
	switcher contextSwitcher

	// timer, intc and irqEnabler are the platform collaborators of
	// spec.md §6. All three are optional: a scheduler configured with
	// none of them still satisfies the core contract (everything but
	// IRQHandler/SVCHandler's hardware plumbing works on pure ticks
	// driven by Tick() directly, which is what the test harness does).
	timer      PeriodicTimer
	intc       InterruptController
	irqEnabler IRQEnabler
	console    ConsoleWriter
}

// sched is the single scheduler instance for the entire program, per
// spec.md §9 ("Implementations should model it as a module-private
// singleton initialized by scheduler_init").
var sched scheduler

// Option configures the scheduler at Init time. The functional-options
// shape keeps Init's signature stable as platform collaborators are
// added or swapped, without spec.md's core ever importing a concrete
// platform package.
type Option func(*scheduler)

// WithTimer attaches the periodic hardware timer.
func WithTimer(t PeriodicTimer) Option {
	return func(s *scheduler) { s.timer = t }
}

// WithInterruptController attaches the interrupt controller.
func WithInterruptController(c InterruptController) Option {
	return func(s *scheduler) { s.intc = c }
}

// WithIRQEnabler attaches the global-IRQ-enable primitive.
func WithIRQEnabler(e IRQEnabler) Option {
	return func(s *scheduler) { s.irqEnabler = e }
}

// WithConsole attaches the optional diagnostic byte sink.
func WithConsole(w ConsoleWriter) Option {
	return func(s *scheduler) { s.console = w }
}

// withSwitcher overrides the context-switch backend. Unexported: only the
// test harness in this package uses it. Without it, Init installs
// defaultSwitcher(), which the build-tagged contextswitch_sim.go and
// contextswitch_arm.go define (cooperativeSwitcher vs armSwitcher);
// application code never chooses a backend by hand.
func withSwitcher(cs contextSwitcher) Option {
	return func(s *scheduler) { s.switcher = cs }
}

// Init zeroes scheduler state and applies opts. Must precede everything
// else (spec.md §6). Two Init calls with no intervening Create yield
// identical state (spec.md §8 invariant 7): Init always starts from a
// fresh zero value and reapplies exactly the options it's given, so the
// same call produces the same result regardless of what came before.
func Init(opts ...Option) {
	sched = scheduler{current: nilRef, sleepHead: nilRef}
	for p := range sched.readyHead {
		sched.readyHead[p] = nilRef
		sched.readyTail[p] = nilRef
	}
	sched.switcher = defaultSwitcher()
	for _, opt := range opts {
		opt(&sched)
	}
	// Mirrors original_source/os/scheduler.c's scheduler_init(): unmask the
	// timer's own source bit in the interrupt controller, then unmask IRQs
	// globally. Done in that order so the global unmask never races a
	// still-masked source; done only when both collaborators are present,
	// since a boot stub with no real interrupt controller has nothing to
	// enable IRQs for.
	if sched.intc != nil && sched.irqEnabler != nil {
		sched.intc.EnableIRQ(timerIRQLine)
		sched.irqEnabler.EnableIRQs()
	}
}

// timerIRQLine is the interrupt line the timer is wired to. VersatilePB's
// Timer0 sits on VIC line 4 (original_source/os/scheduler.c's
// TIMER0_IRQ_BIT).
const timerIRQLine = 4

func (s *scheduler) taskAt(r taskref) *TCB {
	return &s.pool[r]
}

func (s *scheduler) log(msg string) {
	if s.console != nil {
		s.console.WriteString(msg)
	}
}
