package versatilepb

// Vector table layout this package's collaborators assume the platform's
// boot/reset assembly and linker script provide. Neither the linker
// script nor the reset assembly is part of this repository (spec.md §1
// places the boot path out of scope); this comment exists so a
// downstream boot module knows exactly what it must route:
//
//	Offset  Exception         Routes to
//	0x00    Reset             boot entry (not provided here)
//	0x04    Undefined         not provided here
//	0x08    SVC (software)    internal/runtime.SVCHandler
//	0x0C    Prefetch abort    not provided here
//	0x10    Data abort        not provided here
//	0x14    (reserved)        —
//	0x18    IRQ               internal/runtime.IRQHandler
//	0x1C    FIQ               not provided here
//
// Both internal/runtime.SVCHandler and internal/runtime.IRQHandler are
// ordinary exported Go functions, callable from a boot stub written in
// assembly the usual way a Go runtime's own low-level entry points are
// called from its own assembly glue — there is nothing scheduler-specific
// about the calling convention.
