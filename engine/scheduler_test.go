package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/neon-maze/core"
)

func TestSchedulerRunsDueWorkInDeadlineOrder(t *testing.T) {
	ws := NewWorkScheduler()
	base := time.Now()

	var order []int
	ws.Schedule(core.EntityNone, base.Add(30*time.Millisecond), func() { order = append(order, 3) })
	ws.Schedule(core.EntityNone, base.Add(10*time.Millisecond), func() { order = append(order, 1) })
	ws.Schedule(core.EntityNone, base.Add(20*time.Millisecond), func() { order = append(order, 2) })
	ws.Schedule(core.EntityNone, base.Add(time.Hour), func() { order = append(order, 99) })

	ws.Tick(base.Add(50 * time.Millisecond))

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
	if ws.Pending() != 1 {
		t.Errorf("pending = %d, want 1", ws.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	ws := NewWorkScheduler()
	base := time.Now()

	ran := false
	id := ws.Schedule(core.EntityNone, base, func() { ran = true })

	if !ws.Cancel(id) {
		t.Error("Cancel of pending work returned false")
	}
	if ws.Cancel(id) {
		t.Error("second Cancel returned true")
	}

	ws.Tick(base.Add(time.Second))
	if ran {
		t.Error("cancelled work ran")
	}
}

func TestSchedulerCancelOwner(t *testing.T) {
	ws := NewWorkScheduler()
	base := time.Now()
	owner := core.Entity(42)
	other := core.Entity(7)

	var ownerRan, otherRan bool
	ws.Schedule(owner, base, func() { ownerRan = true })
	ws.Schedule(owner, base, func() { ownerRan = true })
	ws.Schedule(other, base, func() { otherRan = true })

	if n := ws.CancelOwner(owner); n != 2 {
		t.Errorf("CancelOwner = %d, want 2", n)
	}
	if ws.HasOwner(owner) {
		t.Error("owner still has pending work")
	}

	ws.Tick(base.Add(time.Second))
	if ownerRan {
		t.Error("owner's cancelled work ran")
	}
	if !otherRan {
		t.Error("unrelated work did not run")
	}
}

func TestSchedulerWorkMayReschedule(t *testing.T) {
	ws := NewWorkScheduler()
	base := time.Now()

	var chained bool
	ws.Schedule(core.EntityNone, base, func() {
		ws.Schedule(core.EntityNone, base.Add(10*time.Millisecond), func() { chained = true })
	})

	ws.Tick(base.Add(5 * time.Millisecond))
	if chained {
		t.Error("chained work ran before its deadline")
	}
	ws.Tick(base.Add(20 * time.Millisecond))
	if !chained {
		t.Error("chained work never ran")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	ws := NewWorkScheduler()
	base := time.Now()

	ran := false
	ws.Schedule(core.EntityNone, base, func() { ran = true })
	ws.Schedule(core.Entity(1), base, func() { ran = true })

	ws.CancelAll()
	ws.Tick(base.Add(time.Second))
	if ran || ws.Pending() != 0 {
		t.Error("CancelAll left work behind")
	}
}
