package ebitenhost

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/chartview"
)

func noEdges(ebiten.MouseButton) (bool, bool) { return false, false }

func pressed(b ebiten.MouseButton) func(ebiten.MouseButton) (bool, bool) {
	return func(x ebiten.MouseButton) (bool, bool) { return x == b, false }
}

func released(b ebiten.MouseButton) func(ebiten.MouseButton) (bool, bool) {
	return func(x ebiten.MouseButton) (bool, bool) { return false, x == b }
}

func collect(h *Host) *[]chartview.RawEvent {
	var got []chartview.RawEvent
	h.SubscribePointer(func(ev chartview.RawEvent) { got = append(got, ev) })
	return &got
}

func TestStepTranslatesInput(t *testing.T) {
	h := New()
	h.Layout(200, 100)
	got := collect(h)

	h.step(50, 40, true, chartview.ModCtrl, noEdges)
	h.step(50, 40, true, 0, noEdges)
	h.step(50, 40, true, 0, pressed(ebiten.MouseButtonRight))
	h.step(60, 40, true, 0, released(ebiten.MouseButtonRight))

	want := []chartview.RawEvent{
		{Type: chartview.RawMove, ClientX: 50, ClientY: 40, Modifiers: chartview.ModCtrl},
		{Type: chartview.RawDown, ClientX: 50, ClientY: 40, Button: chartview.MouseButtonRight},
		{Type: chartview.RawMove, ClientX: 60, ClientY: 40},
		{Type: chartview.RawUp, ClientX: 60, ClientY: 40, Button: chartview.MouseButtonRight},
	}
	if len(*got) != len(want) {
		t.Fatalf("events = %+v, want %+v", *got, want)
	}
	for i := range want {
		if (*got)[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, (*got)[i], want[i])
		}
	}
}

func TestStepLeavesWindow(t *testing.T) {
	h := New()
	h.Layout(200, 100)
	got := collect(h)

	h.step(10, 10, true, 0, pressed(ebiten.MouseButtonLeft))
	h.step(250, 10, true, 0, noEdges)
	h.step(260, 10, true, 0, released(ebiten.MouseButtonLeft))
	h.step(260, 10, true, 0, noEdges)

	types := make([]chartview.RawEventType, len(*got))
	for i, ev := range *got {
		types[i] = ev.Type
	}
	want := []chartview.RawEventType{
		chartview.RawMove, chartview.RawDown, chartview.RawLeaveWindow, chartview.RawUp,
	}
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("type %d = %v, want %v", i, types[i], want[i])
		}
	}
	if (*got)[2].RelatedTarget {
		t.Error("leaving the window has no related target")
	}
}

func TestStepFocusLoss(t *testing.T) {
	h := New()
	got := collect(h)
	h.step(5, 5, true, 0, noEdges)
	h.step(5, 5, false, 0, noEdges)
	h.step(5, 5, true, 0, noEdges)

	if len(*got) != 3 || (*got)[1].Type != chartview.RawLeaveWindow || (*got)[2].Type != chartview.RawMove {
		t.Errorf("events = %+v", *got)
	}
}

func TestLayoutNotifiesSubscribers(t *testing.T) {
	h := New()
	calls := 0
	cancel := h.SubscribeLayout(func() { calls++ })

	h.Layout(640, 480)
	h.Layout(640, 480)
	h.SetOrigin(10, 20)
	h.SetOrigin(10, 20)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if h.Offset() != (chartview.Offset{Left: 10, Top: 20}) {
		t.Errorf("offset = %v", h.Offset())
	}

	cancel()
	h.Layout(800, 600)
	if calls != 2 {
		t.Error("cancelled subscription still notified")
	}
}

func TestHostDrivesEngine(t *testing.T) {
	h := New()
	h.Layout(300, 300)
	h.SetOrigin(100, 100)

	c, err := chartview.NewChart(chartview.DefaultOptions(), h)
	if err != nil {
		t.Fatal(err)
	}
	c.Attach(h)
	var click chartview.PointerContext
	c.Engine().OnClick(func(ctx chartview.PointerContext) { click = ctx })

	h.step(150, 150, true, 0, pressed(ebiten.MouseButtonLeft))
	h.step(150, 150, true, 0, released(ebiten.MouseButtonLeft))

	if click.PixelX != 50 || click.PixelY != 50 {
		t.Errorf("click pixel = (%v, %v), want (50, 50)", click.PixelX, click.PixelY)
	}
	c.Dispose()
	if len(h.pointerSubs) != 0 || len(h.layoutSubs) != 0 {
		t.Error("Dispose left subscriptions on the host")
	}
}

func TestGeoM(t *testing.T) {
	data, _ := chartview.NewBoundingBox(0, 0, 100, 50)
	pixel, _ := chartview.NewRectangle(10, 20, 200, 100)
	m, err := chartview.NewMapper(data, pixel, false)
	if err != nil {
		t.Fatal(err)
	}
	g, err := GeoM(m)
	if err != nil {
		t.Fatal(err)
	}
	x, y := g.Apply(50, 25)
	px, py, _ := m.DataToPixelPoint(50, 25)
	if math.Abs(x-px) > 1e-9 || math.Abs(y-py) > 1e-9 {
		t.Errorf("GeoM.Apply = (%v, %v), want (%v, %v)", x, y, px, py)
	}

	flat, _ := chartview.NewBoundingBox(0, 0, 0, 50)
	m, _ = chartview.NewMapper(flat, pixel, false)
	if _, err := GeoM(m); err == nil {
		t.Error("expected an error for a zero-width data region")
	}
}

func TestCancelDuringEmit(t *testing.T) {
	h := New()
	var order []string
	var cancelFirst func()
	cancelFirst = h.SubscribePointer(func(chartview.RawEvent) {
		order = append(order, "first")
		cancelFirst()
	})
	h.SubscribePointer(func(chartview.RawEvent) { order = append(order, "second") })
	h.SubscribePointer(func(chartview.RawEvent) { order = append(order, "third") })

	h.step(5, 5, true, 0, noEdges)
	h.step(6, 5, true, 0, noEdges)

	want := []string{"first", "second", "third", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}

	calls := 0
	var cancelLayout func()
	cancelLayout = h.SubscribeLayout(func() {
		calls++
		cancelLayout()
	})
	h.SubscribeLayout(func() { calls += 10 })
	h.Layout(320, 240)
	h.Layout(640, 480)
	if calls != 21 {
		t.Errorf("calls = %d, want 21", calls)
	}
}
