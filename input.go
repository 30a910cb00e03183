package chartview

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
)

// --- Built-in HitShape types ---

// HitShape restricts the hover region inside the viewport. Coordinates are
// pixels relative to the viewport origin.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area, e.g. the plot area of a pie or polar chart.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Raw events ---

// RawEventType is the kind of a low-level pointer event.
type RawEventType uint8

const (
	RawMove        RawEventType = iota // pointer moved
	RawDown                            // button pressed
	RawUp                              // button released
	RawLeaveWindow                     // pointer left an element or the window
)

// RawEvent is a low-level pointer event in screen coordinates, as delivered
// by the hosting surface.
type RawEvent struct {
	Type             RawEventType
	ClientX, ClientY float64
	// RelatedTarget is true when a leave event moves onto another element.
	// Leaving the window altogether has no related target.
	RelatedTarget bool
	Button        MouseButton
	Modifiers     KeyModifiers
}

// PointerContext is the payload passed to every semantic event handler.
type PointerContext struct {
	Type  EventType
	Event RawEvent

	PixelX, PixelY float64 // relative to the hosting surface
	DataX, DataY   float64 // NaN when the mapper cannot convert

	IsOver, IsDown, IsDragging bool

	// Offset is the last-known screen offset of the hosting surface.
	Offset Offset

	// StartX/StartY are the pixel coords of the press; DeltaX/DeltaY the
	// movement since the previous event. Valid for press, drag and click events.
	StartX, StartY float64
	DeltaX, DeltaY float64

	Button    MouseButton
	Modifiers KeyModifiers
}

// --- Host collaborators ---

// Host reports the screen offset of the hosting surface.
type Host interface {
	Offset() Offset
}

// EventSource delivers raw pointer events and layout (resize/scroll)
// notifications. Each Subscribe returns a cancel func that removes the
// subscription.
type EventSource interface {
	SubscribePointer(fn func(RawEvent)) (cancel func())
	SubscribeLayout(fn func()) (cancel func())
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	handlers [numEventTypes][]pointerHandler
	nextID   uint32
}

func (r *handlerRegistry) add(evt EventType, fn func(PointerContext)) uint32 {
	r.nextID++
	r.handlers[evt] = append(r.handlers[evt], pointerHandler{id: r.nextID, fn: fn})
	return r.nextID
}

func (r *handlerRegistry) remove(evt EventType, id uint32) {
	s := r.handlers[evt]
	for i := range s {
		if s[i].id == id {
			// Build a new slice: dispatch may be ranging over the old one.
			kept := make([]pointerHandler, 0, len(s)-1)
			kept = append(kept, s[:i]...)
			r.handlers[evt] = append(kept, s[i+1:]...)
			return
		}
	}
}

func (r *handlerRegistry) clear() {
	for i := range r.handlers {
		r.handlers[i] = nil
	}
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.event, h.id)
}

// --- Engine ---

// EngineOptions configures an Engine. The zero value is usable.
type EngineOptions struct {
	// DragDeadZone is the distance in pixels the pointer must travel from the
	// press position before a drag starts. Zero starts a drag on any change.
	DragDeadZone float64
	// LayoutQuiet is how long layout notifications must be quiet before the
	// offset is read again.
	LayoutQuiet time.Duration
	// LayoutMaxWait forces an offset refresh during a long burst. Negative
	// disables forced refreshes.
	LayoutMaxWait time.Duration
	// Now is the clock used by the layout debouncer.
	Now    func() time.Time
	Logger *log.Logger
}

const (
	defaultLayoutQuiet   = 100 * time.Millisecond
	defaultLayoutMaxWait = 500 * time.Millisecond
)

// Engine turns raw pointer events into semantic events. All state changes
// happen synchronously inside HandleEvent.
type Engine struct {
	mapper *Mapper
	host   Host

	handlers handlerRegistry
	hitShape HitShape

	isOver         bool
	isDown         bool
	isDragging     bool
	dispatchedOver bool
	downX, downY   float64
	lastX, lastY   float64
	button         MouseButton

	offset       Offset
	dragDeadZone float64
	layout       *Debouncer
	cancels      []func()
	disposed     bool

	logger *log.Logger
}

// NewEngine creates an engine classifying events against mapper's viewport.
// A nil host means the surface sits at the screen origin.
func NewEngine(mapper *Mapper, host Host, opts EngineOptions) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = defaultLogger
	}
	quiet := opts.LayoutQuiet
	if quiet <= 0 {
		quiet = defaultLayoutQuiet
	}
	maxWait := opts.LayoutMaxWait
	if maxWait == 0 {
		maxWait = defaultLayoutMaxWait
	}
	e := &Engine{
		mapper:       mapper,
		host:         host,
		dragDeadZone: math.Max(0, opts.DragDeadZone),
		layout:       NewDebouncer(quiet, maxWait, opts.Now, logger),
		logger:       logger,
	}
	e.refreshOffset()
	return e
}

// Attach subscribes the engine to src. The subscriptions are cancelled by
// Dispose.
func (e *Engine) Attach(src EventSource) {
	if e.disposed || src == nil {
		return
	}
	e.cancels = append(e.cancels,
		src.SubscribePointer(e.HandleEvent),
		src.SubscribeLayout(e.NotifyLayoutChanged),
	)
}

// Dispose cancels all subscriptions and handlers. The engine ignores every
// later event.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	for _, cancel := range e.cancels {
		if cancel != nil {
			cancel()
		}
	}
	e.cancels = nil
	e.layout.Stop()
	e.handlers.clear()
}

// SetHitShape restricts the hover region. nil restores the full viewport.
func (e *Engine) SetHitShape(shape HitShape) {
	e.hitShape = shape
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (e *Engine) SetDragDeadZone(pixels float64) {
	e.dragDeadZone = math.Max(0, pixels)
}

// NotifyLayoutChanged records a resize or scroll of the hosting surface.
// The offset is re-read by Update once the burst settles.
func (e *Engine) NotifyLayoutChanged() {
	e.layout.Mark()
}

// Update flushes a settled layout change. Call it once per frame.
func (e *Engine) Update() {
	e.layout.Debounce(e.refreshOffset)
}

func (e *Engine) refreshOffset() {
	if e.host == nil {
		return
	}
	e.offset = e.host.Offset()
	e.logger.Debug("offset refreshed", "left", e.offset.Left, "top", e.offset.Top)
}

// Offset returns the last-known screen offset of the hosting surface.
func (e *Engine) Offset() Offset { return e.offset }

// IsOver reports whether the pointer is inside the viewport.
func (e *Engine) IsOver() bool { return e.isOver }

// IsDown reports whether a button was pressed inside the viewport and not
// yet released.
func (e *Engine) IsDown() bool { return e.isDown }

// IsDragging reports whether a drag is in progress.
func (e *Engine) IsDragging() bool { return e.isDragging }

// State returns the current interaction state.
func (e *Engine) State() State {
	switch {
	case e.isDragging:
		return StateDragging
	case e.isDown:
		return StatePressed
	case e.dispatchedOver:
		return StateHovering
	default:
		return StateIdle
	}
}

// --- Registration ---

// On registers a callback for evt. Callbacks for the same event run in
// registration order.
func (e *Engine) On(evt EventType, fn func(PointerContext)) CallbackHandle {
	if evt >= numEventTypes || fn == nil {
		return CallbackHandle{}
	}
	id := e.handlers.add(evt, fn)
	return CallbackHandle{id: id, reg: &e.handlers, event: evt}
}

// OnNamed registers a callback by event name, e.g. "drag-start".
func (e *Engine) OnNamed(name string, fn func(PointerContext)) (CallbackHandle, error) {
	evt, err := ParseEventType(name)
	if err != nil {
		return CallbackHandle{}, err
	}
	return e.On(evt, fn), nil
}

// OnHoverEnter registers a callback fired when the pointer enters the viewport.
func (e *Engine) OnHoverEnter(fn func(PointerContext)) CallbackHandle {
	return e.On(EventHoverEnter, fn)
}

// OnHoverExit registers a callback fired when the pointer leaves the viewport.
func (e *Engine) OnHoverExit(fn func(PointerContext)) CallbackHandle {
	return e.On(EventHoverExit, fn)
}

// OnMove registers a callback fired on hover movement.
func (e *Engine) OnMove(fn func(PointerContext)) CallbackHandle {
	return e.On(EventMove, fn)
}

// OnPress registers a callback fired when a button is pressed inside the viewport.
func (e *Engine) OnPress(fn func(PointerContext)) CallbackHandle {
	return e.On(EventPress, fn)
}

// OnRelease registers a callback fired after a click.
func (e *Engine) OnRelease(fn func(PointerContext)) CallbackHandle {
	return e.On(EventRelease, fn)
}

// OnClick registers a callback for click events.
func (e *Engine) OnClick(fn func(PointerContext)) CallbackHandle {
	return e.On(EventClick, fn)
}

// OnDragStart registers a callback for drag start events.
func (e *Engine) OnDragStart(fn func(PointerContext)) CallbackHandle {
	return e.On(EventDragStart, fn)
}

// OnDrag registers a callback for drag events.
func (e *Engine) OnDrag(fn func(PointerContext)) CallbackHandle {
	return e.On(EventDrag, fn)
}

// OnDragEnd registers a callback for drag end events.
func (e *Engine) OnDragEnd(fn func(PointerContext)) CallbackHandle {
	return e.On(EventDragEnd, fn)
}

// --- Input processing ---

// pixelCoords returns the pointer position relative to the hosting surface.
func (e *Engine) pixelCoords(ev RawEvent) (float64, float64) {
	return ev.ClientX - e.offset.Left, ev.ClientY - e.offset.Top
}

// inside reports whether (px, py) is over the viewport, edges included.
func (e *Engine) inside(px, py float64) bool {
	vp := e.mapper.viewport()
	if !vp.ContainsPoint(px, py) {
		return false
	}
	if e.hitShape != nil {
		return e.hitShape.Contains(px-vp.X(), py-vp.Y())
	}
	return true
}

// HandleEvent runs the pointer state machine for one raw event.
func (e *Engine) HandleEvent(ev RawEvent) {
	if e.disposed {
		return
	}
	switch ev.Type {
	case RawMove:
		e.handleMove(ev)
	case RawDown:
		e.handleDown(ev)
	case RawUp:
		e.handleUp(ev)
	case RawLeaveWindow:
		e.handleLeave(ev)
	}
}

func (e *Engine) handleMove(ev RawEvent) {
	px, py := e.pixelCoords(ev)
	prevX, prevY := e.lastX, e.lastY
	e.lastX, e.lastY = px, py
	e.isOver = e.inside(px, py)

	switch {
	case !e.isDragging && e.isDown && e.isOver && e.exceedsDeadZone(px, py):
		e.isDragging = true
		e.dispatch(EventDragStart, ev, px, py, px-e.downX, py-e.downY)
		e.dispatch(EventDrag, ev, px, py, px-prevX, py-prevY)
	case e.isDragging:
		e.dispatch(EventDrag, ev, px, py, px-prevX, py-prevY)
	case e.isOver && !e.dispatchedOver:
		e.dispatchedOver = true
		e.dispatch(EventHoverEnter, ev, px, py, 0, 0)
	case !e.isOver && e.dispatchedOver:
		e.dispatchedOver = false
		e.dispatch(EventHoverExit, ev, px, py, 0, 0)
	case e.isOver && !e.isDown:
		e.dispatch(EventMove, ev, px, py, px-prevX, py-prevY)
	}
}

// exceedsDeadZone reports whether (px, py) is far enough from the press
// position to start a drag. With no dead zone any change counts.
func (e *Engine) exceedsDeadZone(px, py float64) bool {
	if px == e.downX && py == e.downY {
		return false
	}
	dx := px - e.downX
	dy := py - e.downY
	return math.Sqrt(dx*dx+dy*dy) > e.dragDeadZone
}

func (e *Engine) handleDown(ev RawEvent) {
	if e.isDown {
		// A second button while one is held keeps the current interaction.
		return
	}
	px, py := e.pixelCoords(ev)
	e.lastX, e.lastY = px, py
	e.isOver = e.inside(px, py)
	if !e.isOver {
		return
	}
	if !e.dispatchedOver {
		e.dispatchedOver = true
		e.dispatch(EventHoverEnter, ev, px, py, 0, 0)
	}
	e.isDown = true
	e.button = ev.Button
	e.downX, e.downY = px, py
	e.dispatch(EventPress, ev, px, py, 0, 0)
}

func (e *Engine) handleUp(ev RawEvent) {
	if !e.isDown {
		return
	}
	px, py := e.pixelCoords(ev)
	prevX, prevY := e.lastX, e.lastY
	e.lastX, e.lastY = px, py
	e.isOver = e.inside(px, py)

	if e.isDragging {
		e.dispatch(EventDragEnd, ev, px, py, px-prevX, py-prevY)
	} else if e.isOver {
		e.dispatch(EventClick, ev, px, py, 0, 0)
		e.dispatch(EventRelease, ev, px, py, 0, 0)
	}
	e.isDragging = false
	e.isDown = false

	switch {
	case !e.isOver && e.dispatchedOver:
		e.dispatchedOver = false
		e.dispatch(EventHoverExit, ev, px, py, 0, 0)
	case e.isOver && !e.dispatchedOver:
		// Left and re-entered the viewport while pressed.
		e.dispatchedOver = true
		e.dispatch(EventHoverEnter, ev, px, py, 0, 0)
	}
}

// handleLeave covers hosts that report leaving the window without a
// regular leave over the chart element.
func (e *Engine) handleLeave(ev RawEvent) {
	if ev.RelatedTarget {
		return
	}
	if e.isOver && e.dispatchedOver {
		e.isOver = false
		e.dispatchedOver = false
		e.dispatch(EventHoverExit, ev, e.lastX, e.lastY, 0, 0)
	}
}

// --- Event dispatch ---

func (e *Engine) dispatch(evt EventType, ev RawEvent, px, py, dx, dy float64) {
	handlers := e.handlers.handlers[evt]
	e.logger.Debug("pointer event", "type", evt, "x", px, "y", py, "state", e.State(), "handlers", len(handlers))
	if len(handlers) == 0 {
		return
	}

	dataX, dataY, err := e.mapper.PixelToDataPoint(px, py)
	if err != nil {
		e.logger.Debug("pointer position not mappable", "err", err)
		dataX, dataY = math.NaN(), math.NaN()
	}
	button := ev.Button
	if e.isDown {
		button = e.button
	}
	ctx := PointerContext{
		Type: evt, Event: ev,
		PixelX: px, PixelY: py,
		DataX: dataX, DataY: dataY,
		IsOver: e.isOver, IsDown: e.isDown, IsDragging: e.isDragging,
		Offset: e.offset,
		StartX: e.downX, StartY: e.downY,
		DeltaX: dx, DeltaY: dy,
		Button: button, Modifiers: ev.Modifiers,
	}
	for _, h := range handlers {
		h.fn(ctx)
	}
}
