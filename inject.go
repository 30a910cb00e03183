package chartview

// InjectMove queues a pointer move to the given screen coordinates. Queued
// events are consumed one per Update call.
func (c *Chart) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, RawEvent{Type: RawMove, ClientX: x, ClientY: y})
}

// InjectPress queues a left-button press at the given screen coordinates.
func (c *Chart) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, RawEvent{
		Type: RawDown, ClientX: x, ClientY: y, Button: MouseButtonLeft,
	})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (c *Chart) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, RawEvent{
		Type: RawUp, ClientX: x, ClientY: y, Button: MouseButtonLeft,
	})
}

// InjectLeaveWindow queues a leave event with no related target.
func (c *Chart) InjectLeaveWindow() {
	c.injectQueue = append(c.injectQueue, RawEvent{Type: RawLeaveWindow})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (c *Chart) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (c *Chart) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		c.InjectMove(x, y)
	}
	c.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the engine. Returns true if an event was consumed.
func (c *Chart) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	c.engine.HandleEvent(evt)
	return true
}
