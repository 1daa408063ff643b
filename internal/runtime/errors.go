package runtime

import "errors"

// ErrPoolExhausted is returned by Create once MaxTasks TCBs have been
// allocated. original_source/os/scheduler.c's task_create silently
// no-ops in this case; spec.md §7 calls that a design bug and requires a
// distinguishable failure instead.
var ErrPoolExhausted = errors.New("runtime: task pool exhausted")

// notTaskContext is the panic value raised when Sleep is called without a
// current running task (spec.md §7: "undefined; implementations may
// assert").
const notTaskContext = "runtime: Sleep called outside task context"
