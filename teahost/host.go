// Package teahost feeds Bubble Tea messages into a chartview engine, so a
// chart can be driven by the mouse inside a terminal. One terminal cell is
// one pixel.
package teahost

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phanxgames/chartview"
)

// Host implements chartview.Host and chartview.EventSource on top of a
// Bubble Tea program. Forward every message to HandleMsg.
type Host struct {
	origin        chartview.Offset
	width, height int

	pointer []pointerSub
	layout  []layoutSub
	nextID  int
}

type pointerSub struct {
	id int
	fn func(chartview.RawEvent)
}

type layoutSub struct {
	id int
	fn func()
}

// New creates a host whose chart starts at the given cell.
func New(left, top int) *Host {
	return &Host{origin: chartview.Offset{Left: float64(left), Top: float64(top)}}
}

// Offset returns the cell position of the chart's top-left corner.
func (h *Host) Offset() chartview.Offset {
	return h.origin
}

// Size returns the terminal size from the last tea.WindowSizeMsg.
func (h *Host) Size() (width, height int) {
	return h.width, h.height
}

// SetOrigin moves the chart inside the terminal, e.g. when a header above
// it changes height.
func (h *Host) SetOrigin(left, top int) {
	o := chartview.Offset{Left: float64(left), Top: float64(top)}
	if o == h.origin {
		return
	}
	h.origin = o
	h.notifyLayout()
}

// SubscribePointer registers fn for raw pointer events.
func (h *Host) SubscribePointer(fn func(chartview.RawEvent)) (cancel func()) {
	h.nextID++
	id := h.nextID
	h.pointer = append(h.pointer, pointerSub{id: id, fn: fn})
	return func() {
		if i := slices.IndexFunc(h.pointer, func(s pointerSub) bool { return s.id == id }); i >= 0 {
			h.pointer = slices.Concat(h.pointer[:i], h.pointer[i+1:])
		}
	}
}

// SubscribeLayout registers fn for terminal resizes and origin changes.
func (h *Host) SubscribeLayout(fn func()) (cancel func()) {
	h.nextID++
	id := h.nextID
	h.layout = append(h.layout, layoutSub{id: id, fn: fn})
	return func() {
		if i := slices.IndexFunc(h.layout, func(s layoutSub) bool { return s.id == id }); i >= 0 {
			h.layout = slices.Concat(h.layout[:i], h.layout[i+1:])
		}
	}
}

// HandleMsg translates msg into raw events. It reports whether msg was a
// pointer, focus or size message. Wheel events are not translated; they
// are left to the caller.
func (h *Host) HandleMsg(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		ev, ok := Translate(msg)
		if !ok {
			return false
		}
		h.emit(ev)
		return true
	case tea.BlurMsg:
		h.emit(chartview.RawEvent{Type: chartview.RawLeaveWindow})
		return true
	case tea.WindowSizeMsg:
		if msg.Width != h.width || msg.Height != h.height {
			h.width, h.height = msg.Width, msg.Height
			h.notifyLayout()
		}
		return true
	}
	return false
}

// Translate converts a Bubble Tea mouse message to a raw event. Wheel
// messages are rejected.
func Translate(msg tea.MouseMsg) (chartview.RawEvent, bool) {
	if tea.MouseEvent(msg).IsWheel() {
		return chartview.RawEvent{}, false
	}
	ev := chartview.RawEvent{
		ClientX:   float64(msg.X),
		ClientY:   float64(msg.Y),
		Button:    button(msg.Button),
		Modifiers: modifiers(msg),
	}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Type = chartview.RawDown
	case tea.MouseActionRelease:
		ev.Type = chartview.RawUp
	case tea.MouseActionMotion:
		ev.Type = chartview.RawMove
	default:
		return chartview.RawEvent{}, false
	}
	return ev, true
}

// button maps Bubble Tea buttons. X10 terminals report releases without a
// button; those count as the left button.
func button(b tea.MouseButton) chartview.MouseButton {
	switch b {
	case tea.MouseButtonRight:
		return chartview.MouseButtonRight
	case tea.MouseButtonMiddle:
		return chartview.MouseButtonMiddle
	default:
		return chartview.MouseButtonLeft
	}
}

func modifiers(msg tea.MouseMsg) chartview.KeyModifiers {
	var mods chartview.KeyModifiers
	if msg.Shift {
		mods |= chartview.ModShift
	}
	if msg.Ctrl {
		mods |= chartview.ModCtrl
	}
	if msg.Alt {
		mods |= chartview.ModAlt
	}
	return mods
}

func (h *Host) emit(ev chartview.RawEvent) {
	for _, s := range h.pointer {
		s.fn(ev)
	}
}

func (h *Host) notifyLayout() {
	for _, s := range h.layout {
		s.fn()
	}
}
