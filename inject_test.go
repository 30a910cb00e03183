package chartview

import (
	"reflect"
	"testing"
)

func newTestChart(t *testing.T) (*Chart, *recorder) {
	t.Helper()
	c, err := NewChart(DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return c, record(c.Engine())
}

func TestInjectClick(t *testing.T) {
	c, r := newTestChart(t)

	c.InjectClick(50, 50)
	if len(c.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(c.injectQueue))
	}

	// Frame 1: press
	c.Update()
	if len(c.injectQueue) != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", len(c.injectQueue))
	}
	assertEvents(t, "frame 1", r.take(), "hover-enter", "press")

	// Frame 2: release fires click
	c.Update()
	if len(c.injectQueue) != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", len(c.injectQueue))
	}
	assertEvents(t, "frame 2", r.take(), "click", "release")
}

func TestInjectDrag(t *testing.T) {
	c, r := newTestChart(t)
	var deltas []float64
	c.Engine().OnDrag(func(ctx PointerContext) { deltas = append(deltas, ctx.DeltaX) })

	c.InjectDrag(10, 50, 50, 50, 5)
	if len(c.injectQueue) != 5 {
		t.Fatalf("expected 5 queued events, got %d", len(c.injectQueue))
	}
	for i := 0; i < 5; i++ {
		c.Update()
	}
	assertEvents(t, "drag", r.take(),
		"hover-enter", "press",
		"drag-start", "drag",
		"drag", "drag",
		"drag-end")
	if !reflect.DeepEqual(deltas, []float64{10, 10, 10}) {
		t.Errorf("drag deltas = %v, want [10 10 10]", deltas)
	}
	if c.Engine().State() != StateHovering {
		t.Errorf("state = %v, want hovering", c.Engine().State())
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	c, r := newTestChart(t)
	c.InjectDrag(10, 10, 20, 20, 0)
	if len(c.injectQueue) != 2 {
		t.Fatalf("expected press+release, got %d events", len(c.injectQueue))
	}
	c.Update()
	c.Update()
	// Releasing elsewhere without an intermediate move is a click.
	assertEvents(t, "short drag", r.take(), "hover-enter", "press", "click", "release")
}

func TestInjectMoveAndLeave(t *testing.T) {
	c, r := newTestChart(t)
	c.InjectMove(30, 30)
	c.InjectLeaveWindow()
	c.Update()
	c.Update()
	assertEvents(t, "move+leave", r.take(), "hover-enter", "hover-exit")
}
