// Package versatilepb implements the scheduler's platform collaborators
// against the real memory-mapped peripherals of the VersatilePB/ARM926EJ-S
// reference platform: the SP804 dual timer, the PL190 Vectored Interrupt
// Controller, and a PL011-style UART, grounded on the register layout
// original_source/main.c and original_source/os/scheduler.c program
// directly.
//
// Every register in this package is accessed through unsafe.Pointer at a
// fixed physical address; none of it is meaningful off real ARM hardware
// (or QEMU's versatilepb machine model), which is why platform/sim exists
// as the host-side stand-in used by tests and the demo binary.
package versatilepb

import "unsafe"

// Timer0 register block, SP804 at 0x101E2000 (original_source/main.c's
// TIMER0_BASE). Only the fields the scheduler's tick source needs are
// named; the block also carries a second timer unit this driver does not
// use.
const timer0Base = 0x101E2000

const (
	timerLoadOffset    = 0x00
	timerValueOffset   = 0x04
	timerControlOffset = 0x08
	timerIntClrOffset  = 0x0C
	timerRISOffset     = 0x10
	timerMISOffset     = 0x14
	timerBGLoadOffset  = 0x18
)

// Timer control bits, matching original_source/main.c's TIMER0_CONTROL
// write (0xE2 = enable | periodic | IRQ-enable | 32-bit, one-shot clear).
const (
	timerCtrlOneShot  = 1 << 0
	timerCtrl32Bit    = 1 << 1
	timerCtrlPeriodic = 1 << 6
	timerCtrlIRQEn    = 1 << 5
	timerCtrlEnable   = 1 << 7
)

// systemClockHz is VersatilePB's fixed 1 MHz timer reference clock
// (original_source/os/scheduler.c's SYSTEM_CLOCK comment notwithstanding —
// the SP804 block on the QEMU versatilepb model free-runs at 1 MHz
// regardless of CPU clock, so a millisecond period is simply
// systemClockHz/1000 ticks of reload value).
const systemClockHz = 1_000_000

func timerReg(offset uintptr) *uint32 {
	return (*uint32)(unsafe.Pointer(uintptr(timer0Base) + offset))
}

// Timer drives the scheduler's periodic tick off SP804 Timer0.
type Timer struct{}

// Configure performs the stop/load/clear/start sequence
// original_source/main.c's boot code runs inline in main(): stop the
// timer, load the millisecond reload value, clear any stale pending
// interrupt, then start it in 32-bit periodic mode with its IRQ enabled.
func (Timer) Configure(periodMS uint32) {
	*timerReg(timerControlOffset) = 0
	reload := (systemClockHz / 1000) * periodMS
	*timerReg(timerLoadOffset) = reload
	*timerReg(timerBGLoadOffset) = reload
	*timerReg(timerIntClrOffset) = 1
	*timerReg(timerControlOffset) = timerCtrlEnable | timerCtrlPeriodic | timerCtrlIRQEn | timerCtrl32Bit
}

// AcknowledgeIRQ clears Timer0's pending interrupt latch. Must run before
// IRQHandler returns or the same edge re-fires immediately.
func (Timer) AcknowledgeIRQ() {
	*timerReg(timerIntClrOffset) = 1
}
