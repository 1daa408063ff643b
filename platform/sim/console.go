package sim

import (
	"bytes"
	"sync"
)

// Console is an in-memory ConsoleWriter that buffers everything written
// to it, so tests and the demo binary can assert on scheduler diagnostic
// output without a real UART.
type Console struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// WriteString appends s to the buffer.
func (c *Console) WriteString(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.WriteString(s)
}

// String returns everything written so far.
func (c *Console) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// IRQEnabler is a no-op stand-in for the boot-provided global-IRQ-enable
// primitive: there is no CPSR to mask bits in on a hosted build, and the
// cooperative backend never runs inside a real interrupt context anyway.
type IRQEnabler struct{}

// EnableIRQs does nothing; present so Init's
// WithIRQEnabler/WithInterruptController pairing can be exercised on a
// hosted build the same way it would be on real hardware.
func (IRQEnabler) EnableIRQs() {}
