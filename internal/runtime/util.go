package runtime

import "reflect"

// entryPC returns a value standing in for the resume address spec.md §4.6
// says a freshly-created task's saved PC equals: "the saved PC equals its
// entry function address". Go offers no portable way to obtain a raw
// machine code address the way original_source/os/task.c does
// ("task->pc = (uint32_t)func"); reflect.Value.Pointer on a func value is
// the closest stand-in. The ARM backend's armDispatch branches to it;
// the portable backend ignores it and runs the entry func on a goroutine
// instead.
func entryPC(fn func()) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}
