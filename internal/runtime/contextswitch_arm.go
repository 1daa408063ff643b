//go:build arm

package runtime

// armSwitcher is the real hardware context-switch backend for
// ARM926EJ-S/ARMv5TE, grounded directly on
// original_source/os/scheduler.c's task_switch. It performs no
// allocation and does not run task bodies as goroutines: savedPC is a
// literal code address and dispatch/switchTo transfer control there by
// branching, exactly as spec.md §4.6/§4.7 describe.
type armSwitcher struct{}

func defaultSwitcher() contextSwitcher { return armSwitcher{} }

// prepare is a no-op on real hardware: Create already primed savedSP and
// savedPC, which is all a naked register restore needs.
func (armSwitcher) prepare(t *TCB) {}

func (armSwitcher) dispatch(to *TCB) {
	armDispatch(to)
}

func (armSwitcher) switchTo(from, to *TCB) {
	armContextSwitch(from, to)
}

// armContextSwitch is implemented in contextswitch_arm.s. It saves
// r4-r9, r11, sp and lr into from (r10 is skipped, see the offset table
// in contextswitch_arm.s), synthesizes from's resume pc, then restores
// to's r4-r9/r11/sp/lr/pc and branches there. Never returns to its
// Go caller directly — control resumes via a later armContextSwitch call
// that restores this task's saved pc.
//
//go:noescape
func armContextSwitch(from, to *TCB)

// armDispatch sets sp from to.savedSP and branches to to.savedPC, with no
// outgoing context to save (spec.md §4.7).
//
//go:noescape
func armDispatch(to *TCB)
