package reservation

import (
	"testing"
	"time"
)

func TestManualClockRunsDueCallbacksInOrder(t *testing.T) {
	c := NewManualClock()
	var order []int
	c.AfterFunc(3*time.Second, func() { order = append(order, 3) })
	c.AfterFunc(1*time.Second, func() { order = append(order, 1) })
	c.AfterFunc(9*time.Second, func() { order = append(order, 9) })

	c.Advance(5 * time.Second)
	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Fatalf("Expected [1 3], got %v", order)
	}
	if c.Pending() != 1 {
		t.Errorf("Expected 1 pending, got %d", c.Pending())
	}
}

func TestManualTimerStop(t *testing.T) {
	c := NewManualClock()
	fired := false
	tm := c.AfterFunc(time.Second, func() { fired = true })

	if !tm.Stop() {
		t.Error("Expected first Stop to report true")
	}
	if tm.Stop() {
		t.Error("Expected second Stop to report false")
	}
	c.Advance(time.Minute)
	if fired {
		t.Error("Stopped timer fired")
	}

	tm2 := c.AfterFunc(time.Second, func() {})
	c.Advance(time.Second)
	if tm2.Stop() {
		t.Error("Stop after fire should report false")
	}
}
