// Package sim provides in-memory stand-ins for the scheduler's platform
// collaborators (internal/runtime.PeriodicTimer, InterruptController,
// IRQEnabler, ConsoleWriter), used by the hosted demo binary and
// available to tests that want a real goroutine-driven timer instead of
// calling Tick by hand. None of it touches real memory-mapped registers;
// platform/versatilepb is the real-hardware equivalent.
package sim

import (
	"sync"
	"time"
)

// Timer is a goroutine-driven stand-in for platform/versatilepb's SP804
// driver. Configure starts a background ticker that calls the supplied
// notify function (internal/runtime.NotifyTimerTick, wired in by the
// caller) once per period; AcknowledgeIRQ only calls the hook set by
// WithAck, if any, since there is no real pending-interrupt latch to
// clear.
type Timer struct {
	mu     sync.Mutex
	stop   chan struct{}
	notify func()
	ack    func()
}

// NewTimer returns a Timer that calls notify once per configured period.
// notify must be safe to call from a goroutine other than any task's own
// (see internal/runtime's pendingtick.go for why it only ever increments
// a counter rather than touching scheduler state directly).
func NewTimer(notify func()) *Timer {
	return &Timer{notify: notify}
}

// WithAck wires t's AcknowledgeIRQ to call ack, for tests that drive
// internal/runtime.IRQHandler directly (bypassing the goroutine-driven
// notify loop entirely) and want AcknowledgeIRQ to clear a paired
// InterruptController's pending bit, the same sequencing IRQHandler
// relies on against platform/versatilepb's real registers.
func (t *Timer) WithAck(ack func()) *Timer {
	t.ack = ack
	return t
}

// Configure starts (or restarts) the periodic tick at periodMS.
func (t *Timer) Configure(periodMS uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		close(t.stop)
	}
	stop := make(chan struct{})
	t.stop = stop

	period := time.Duration(periodMS) * time.Millisecond
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.notify()
			}
		}
	}()
}

// AcknowledgeIRQ calls the ack hook set by WithAck, if any; otherwise it
// is a no-op, since platform/sim has no peripheral-level pending latch of
// its own to clear.
func (t *Timer) AcknowledgeIRQ() {
	if t.ack != nil {
		t.ack()
	}
}
