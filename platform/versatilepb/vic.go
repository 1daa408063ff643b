package versatilepb

import "unsafe"

// VIC is the PL190 Vectored Interrupt Controller at 0x10140000
// (original_source/os/scheduler.c's VIC_BASE), used here only for its
// enable-set register, masked IRQ status and vector address register
// (end-of-interrupt) — the scheduler never
// needs the PL190's actual vectoring/priority hardware since it routes
// every IRQ through the same handler.
const vicBase = 0x10140000

const (
	vicIRQStatusOffset  = 0x000 // VICIRQSTATUS: masked status of enabled sources
	vicRawIntrOffset    = 0x008 // VICRAWINTR: status regardless of mask
	vicIntEnableOffset  = 0x010 // VICINTENABLE: write 1 to enable a source
	vicIntEnClrOffset   = 0x014 // VICINTENCLEAR: write 1 to disable a source
	vicVectAddrOffset   = 0xF00 // VICVECTADDR: current vector / EOI on write
)

func vicReg(offset uintptr) *uint32 {
	return (*uint32)(unsafe.Pointer(uintptr(vicBase) + offset))
}

// InterruptController drives the PL190 enable-set register and exposes
// the timer's pending status to IRQHandler.
type InterruptController struct {
	// TimerLine is the VIC interrupt line Timer0 is wired to (line 4 on
	// VersatilePB, per original_source/os/scheduler.c's TIMER0_IRQ_BIT).
	TimerLine uint
}

// EnableIRQ sets the per-source enable bit for line, matching
// original_source/os/scheduler.c's vic_init ("VIC_INTENABLE |= (1 <<
// TIMER0_IRQ_BIT)").
func (InterruptController) EnableIRQ(line uint) {
	*vicReg(vicIntEnableOffset) = 1 << line
}

// TimerIRQPending reports whether the configured timer line is currently
// asserted in the VIC's masked status register.
func (c InterruptController) TimerIRQPending() bool {
	status := *vicReg(vicIRQStatusOffset)
	return status&(1<<c.TimerLine) != 0
}

// Acknowledge signals end-of-interrupt to the VIC by writing its vector
// address register, matching original_source/main.c's irq_handler
// ("VICVADDR = 0;"). The scheduler's IRQHandler does not call this
// directly — the timer's own AcknowledgeIRQ clears the peripheral-level
// latch the VIC is reporting, and VersatilePB's PL190 does not require a
// separate controller-level EOI write for a simple single-source
// configuration like this one. Kept as an explicit, named operation
// because a real vectored-interrupt boot stub wired to a vector table
// (SPEC_FULL.md §4.10, not implemented here) would call it.
func (InterruptController) Acknowledge() {
	*vicReg(vicVectAddrOffset) = 0
}
