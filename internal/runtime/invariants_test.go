package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertListDisjoint checks spec.md §8 invariant 1: every TCB appears on
// at most one of {ready FIFOs ∪ sleep list}, never on two ready
// priorities.
func assertListDisjoint(t *testing.T) {
	t.Helper()
	seen := map[taskref]string{}
	for p := 0; p < MaxPriorities; p++ {
		for _, r := range readyMembers(p) {
			if where, ok := seen[r]; ok {
				t.Fatalf("task %d on both %s and ready[%d]", r, where, p)
			}
			seen[r] = "ready"
		}
	}
	for _, r := range sleepMembers() {
		if where, ok := seen[r]; ok {
			t.Fatalf("task %d on both %s and sleep list", r, where)
		}
		seen[r] = "sleep"
	}
}

// assertBitmapConsistent checks invariant 2: bit p of readyBitmap equals
// (readyHead[p] != nil).
func assertBitmapConsistent(t *testing.T) {
	t.Helper()
	for p := 0; p < MaxPriorities; p++ {
		want := sched.readyHead[p].valid()
		got := sched.readyBitmap&(1<<uint(p)) != 0
		assert.Equalf(t, want, got, "priority %d bitmap bit", p)
	}
}

// assertStateListAgreement checks invariant 3 over every allocated TCB.
func assertStateListAgreement(t *testing.T) {
	t.Helper()
	readySet := map[taskref]bool{}
	for p := 0; p < MaxPriorities; p++ {
		for _, r := range readyMembers(p) {
			readySet[r] = true
		}
	}
	sleepSet := map[taskref]bool{}
	for _, r := range sleepMembers() {
		sleepSet[r] = true
	}
	for i := 0; i < sched.taskCount; i++ {
		r := taskref(i)
		tcb := sched.taskAt(r)
		switch tcb.state {
		case Ready:
			assert.Truef(t, readySet[r], "task %d is Ready but not on a ready FIFO", i)
		case Sleeping:
			assert.Truef(t, sleepSet[r], "task %d is Sleeping but not on the sleep list", i)
		case Running:
			assert.Equalf(t, r, sched.current, "task %d is Running but is not current", i)
		}
	}
}

func assertCoreInvariants(t *testing.T) {
	t.Helper()
	assertListDisjoint(t)
	assertBitmapConsistent(t)
	assertStateListAgreement(t)
}

func TestInvariants_HoldAfterCreateAndDispatch(t *testing.T) {
	newTestScheduler()
	assertCoreInvariants(t)

	_, err := Create(noop, make([]uintptr, 32), 0)
	require.NoError(t, err)
	_, err = Create(noop, make([]uintptr, 32), 3)
	require.NoError(t, err)
	assertCoreInvariants(t)

	Start()
	assertCoreInvariants(t)

	Tick()
	assertCoreInvariants(t)
	Tick()
	assertCoreInvariants(t)
}

func TestInvariant_InitIsIdempotent(t *testing.T) {
	rs1 := &recordingSwitcher{}
	Init(withSwitcher(rs1))
	first := sched

	rs2 := &recordingSwitcher{}
	Init(withSwitcher(rs2))
	second := sched

	assert.Equal(t, first.readyHead, second.readyHead)
	assert.Equal(t, first.readyTail, second.readyTail)
	assert.Equal(t, first.readyBitmap, second.readyBitmap)
	assert.Equal(t, first.sleepHead, second.sleepHead)
	assert.Equal(t, first.taskCount, second.taskCount)
	assert.Equal(t, first.current, second.current)
	assert.Equal(t, first.tick, second.tick)
}
