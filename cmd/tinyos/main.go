// Command tinyos is the runnable demo binary: it wires the scheduler core
// in internal/runtime to the hosted platform/sim collaborators and runs
// two periodic tasks plus an idle task, the same shape as
// original_source/main.c's task1/task2/idle trio, reporting through a
// buffered console instead of real UART wiring.
package main

import (
	"fmt"
	"time"

	"github.com/colteye/tinyOS/internal/runtime"
	"github.com/colteye/tinyOS/platform/sim"
)

const stackWords = 256

func main() {
	console := &sim.Console{}
	timer := sim.NewTimer(runtime.NotifyTimerTick)

	runtime.Init(
		runtime.WithTimer(timer),
		runtime.WithConsole(console),
	)
	timer.Configure(runtime.TickPeriodMS)

	counts := map[string]*int{"task1": new(int), "task2": new(int)}

	task1 := func() {
		for {
			*counts["task1"]++
			console.WriteString("task1 running\n")
			runtime.Yield()
		}
	}
	task2 := func() {
		for {
			*counts["task2"]++
			console.WriteString("task2\n")
			runtime.Sleep(5)
			runtime.Yield()
		}
	}
	idle := func() {
		for {
			runtime.Yield()
		}
	}

	if _, err := runtime.Create(task1, make([]uintptr, stackWords), 0); err != nil {
		panic(err)
	}
	if _, err := runtime.Create(task2, make([]uintptr, stackWords), 0); err != nil {
		panic(err)
	}
	if _, err := runtime.Create(idle, make([]uintptr, stackWords), runtime.MaxPriorities-1); err != nil {
		panic(err)
	}

	console.WriteString("Starting scheduler...\n")

	go runtime.Start()

	time.Sleep(50 * time.Millisecond)
	fmt.Print(console.String())
	fmt.Printf("task1 iterations: %d, task2 iterations: %d\n", *counts["task1"], *counts["task2"])
}
