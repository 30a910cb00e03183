package chartview

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default stroke color.
var ColorBlack = Color{0, 0, 0, 1}

// RGBA converts c to a premultiplied color.RGBA for backends.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point or offset.
type Vec2 struct {
	X, Y float64
}

// Offset is the screen position of the hosting surface's top-left corner.
type Offset struct {
	Left, Top float64
}

// EventType identifies a semantic pointer event.
type EventType uint8

const (
	EventHoverEnter EventType = iota // pointer entered the viewport
	EventHoverExit                   // pointer left the viewport or the window
	EventMove                        // pointer moved while hovering, not dragging
	EventPress                       // button pressed inside the viewport
	EventRelease                     // button released inside the viewport without a drag
	EventClick                       // press then release without movement
	EventDragStart                   // first movement while pressed
	EventDrag                        // every movement while dragging
	EventDragEnd                     // button released after dragging

	numEventTypes
)

var eventNames = [numEventTypes]string{
	EventHoverEnter: "hover-enter",
	EventHoverExit:  "hover-exit",
	EventMove:       "move",
	EventPress:      "press",
	EventRelease:    "release",
	EventClick:      "click",
	EventDragStart:  "drag-start",
	EventDrag:       "drag",
	EventDragEnd:    "drag-end",
}

// String returns the registration name of the event, e.g. "drag-start".
func (t EventType) String() string {
	if t < numEventTypes {
		return eventNames[t]
	}
	return "unknown"
}

// ParseEventType maps a registration name to its EventType.
func ParseEventType(name string) (EventType, error) {
	for i, n := range eventNames {
		if n == name {
			return EventType(i), nil
		}
	}
	return 0, invalidArg("ParseEventType", "name", "unknown event "+name)
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// State is the interaction state derived from the engine's flags.
type State uint8

const (
	StateIdle State = iota
	StateHovering
	StatePressed
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateHovering:
		return "hovering"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}
