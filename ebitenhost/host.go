// Package ebitenhost connects a chartview.Chart to Ebitengine: it polls
// ebiten's mouse state into raw pointer events, implements
// chartview.Surface on an *ebiten.Image and converts the mapper's matrix
// into an ebiten.GeoM.
package ebitenhost

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/chartview"
)

// Host is a chartview.Host and chartview.EventSource backed by ebiten's
// input polling. Call Poll once per frame from the game's Update.
type Host struct {
	origin        chartview.Offset
	width, height int

	pointerSubs []pointerSub
	layoutSubs  []layoutSub
	nextID      uint32

	polled   bool
	inWindow bool
	lastX    int
	lastY    int
}

type pointerSub struct {
	id uint32
	fn func(chartview.RawEvent)
}

type layoutSub struct {
	id uint32
	fn func()
}

// New creates a host whose chart is drawn at the screen origin.
func New() *Host {
	return &Host{}
}

// Offset returns the screen position of the chart's surface.
func (h *Host) Offset() chartview.Offset {
	return h.origin
}

// SetOrigin moves the chart's surface on screen.
func (h *Host) SetOrigin(left, top float64) {
	if h.origin.Left == left && h.origin.Top == top {
		return
	}
	h.origin = chartview.Offset{Left: left, Top: top}
	h.notifyLayout()
}

// Layout records the window size. Call it from the game's Layout method;
// it returns the size unchanged.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.notifyLayout()
	}
	return outsideWidth, outsideHeight
}

// SubscribePointer registers fn for raw pointer events.
func (h *Host) SubscribePointer(fn func(chartview.RawEvent)) (cancel func()) {
	h.nextID++
	id := h.nextID
	h.pointerSubs = append(h.pointerSubs, pointerSub{id: id, fn: fn})
	return func() {
		for i := range h.pointerSubs {
			if h.pointerSubs[i].id == id {
				h.pointerSubs = slices.Concat(h.pointerSubs[:i], h.pointerSubs[i+1:])
				return
			}
		}
	}
}

// SubscribeLayout registers fn for resize and origin changes.
func (h *Host) SubscribeLayout(fn func()) (cancel func()) {
	h.nextID++
	id := h.nextID
	h.layoutSubs = append(h.layoutSubs, layoutSub{id: id, fn: fn})
	return func() {
		for i := range h.layoutSubs {
			if h.layoutSubs[i].id == id {
				h.layoutSubs = slices.Concat(h.layoutSubs[:i], h.layoutSubs[i+1:])
				return
			}
		}
	}
}

// emit and notifyLayout range over the slice header they start with;
// cancel replaces the slice instead of shifting it in place.
func (h *Host) emit(ev chartview.RawEvent) {
	for _, s := range h.pointerSubs {
		s.fn(ev)
	}
}

func (h *Host) notifyLayout() {
	for _, s := range h.layoutSubs {
		s.fn()
	}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() chartview.KeyModifiers {
	var mods chartview.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= chartview.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= chartview.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= chartview.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= chartview.ModMeta
	}
	return mods
}

var buttons = [...]struct {
	eb ebiten.MouseButton
	cv chartview.MouseButton
}{
	{ebiten.MouseButtonLeft, chartview.MouseButtonLeft},
	{ebiten.MouseButtonRight, chartview.MouseButtonRight},
	{ebiten.MouseButtonMiddle, chartview.MouseButtonMiddle},
}

// Poll reads ebiten's mouse state and emits the raw events that happened
// since the previous frame.
func (h *Host) Poll() {
	mx, my := ebiten.CursorPosition()
	mods := readModifiers()
	h.step(mx, my, ebiten.IsFocused(), mods, func(b ebiten.MouseButton) (bool, bool) {
		return inpututil.IsMouseButtonJustPressed(b), inpututil.IsMouseButtonJustReleased(b)
	})
}

// step turns one frame of polled state into raw events. Split from Poll so
// the translation can be exercised without a running game.
func (h *Host) step(mx, my int, focused bool, mods chartview.KeyModifiers,
	edges func(ebiten.MouseButton) (pressed, released bool)) {
	inside := focused && mx >= 0 && my >= 0 &&
		(h.width == 0 || mx < h.width) && (h.height == 0 || my < h.height)

	if !inside {
		if h.inWindow {
			h.inWindow = false
			h.emit(chartview.RawEvent{
				Type:    chartview.RawLeaveWindow,
				ClientX: float64(mx), ClientY: float64(my),
				Modifiers: mods,
			})
		}
		// Releases outside the window still end a press or drag.
		for _, b := range buttons {
			if _, released := edges(b.eb); released {
				h.emit(chartview.RawEvent{
					Type:    chartview.RawUp,
					ClientX: float64(mx), ClientY: float64(my),
					Button: b.cv, Modifiers: mods,
				})
			}
		}
		return
	}

	fx, fy := float64(mx), float64(my)
	if !h.polled || !h.inWindow || mx != h.lastX || my != h.lastY {
		h.emit(chartview.RawEvent{Type: chartview.RawMove, ClientX: fx, ClientY: fy, Modifiers: mods})
	}
	h.polled = true
	h.inWindow = true
	h.lastX, h.lastY = mx, my

	for _, b := range buttons {
		pressed, released := edges(b.eb)
		if pressed {
			h.emit(chartview.RawEvent{Type: chartview.RawDown, ClientX: fx, ClientY: fy, Button: b.cv, Modifiers: mods})
		}
		if released {
			h.emit(chartview.RawEvent{Type: chartview.RawUp, ClientX: fx, ClientY: fy, Button: b.cv, Modifiers: mods})
		}
	}
}

// GeoM converts the mapper's data->pixel matrix into an ebiten.GeoM, so
// images can be drawn directly in data units.
func GeoM(m *chartview.Mapper) (ebiten.GeoM, error) {
	t, err := m.Matrix()
	var g ebiten.GeoM
	if err != nil {
		return g, err
	}
	g.SetElement(0, 0, t[0])
	g.SetElement(1, 0, t[1])
	g.SetElement(0, 1, t[2])
	g.SetElement(1, 1, t[3])
	g.SetElement(0, 2, t[4])
	g.SetElement(1, 2, t[5])
	return g, nil
}
