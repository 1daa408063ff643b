package runtime

import "sync/atomic"

// pendingTicks counts timer ticks that have fired but not yet been
// applied to scheduler state. On real ARM hardware this has no
// equivalent: the timer IRQ runs on the interrupted task's own banked
// context, so IRQHandler can call Tick synchronously right there. A
// hosted Go goroutine can't be interrupted that way, so platform/sim's
// timer increments this counter instead of calling into the scheduler
// directly, and the currently running task's own goroutine drains it via
// Yield (see contextswitch.go).
var pendingTicks int32

// NotifyTimerTick records that one tick period has elapsed. Called by a
// PeriodicTimer's background driver on hosted builds
// (platform/sim); the real ARM IRQHandler path does not use this — it
// calls Tick directly, since it's already running on the right stack.
func NotifyTimerTick() {
	atomic.AddInt32(&pendingTicks, 1)
}

// drainPendingTick consumes one pending tick, if any, reporting whether
// it did.
func drainPendingTick() bool {
	for {
		n := atomic.LoadInt32(&pendingTicks)
		if n <= 0 {
			return false
		}
		if atomic.CompareAndSwapInt32(&pendingTicks, n, n-1) {
			return true
		}
	}
}
