package chartview

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Chart owns one Mapper and one Engine. Each chart is independent; nothing
// is shared between instances.
type Chart struct {
	mapper *Mapper
	engine *Engine
	logger *log.Logger

	injectQueue []RawEvent
	script      *Script
}

// NewChart creates a chart from opts. host may be nil when the chart is
// drawn at the screen origin.
func NewChart(opts Options, host Host) (*Chart, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := newLogger(opts.Logger, opts.Debug)

	d := opts.Dimensions
	pixel, err := NewRectangle(d.X, d.Y, d.Width, d.Height)
	if err != nil {
		return nil, err
	}
	a := opts.Axes
	data, err := NewBoundingBox(a.XAxis.Min, a.YAxis.Min, a.XAxis.Max, a.YAxis.Max)
	if err != nil {
		return nil, err
	}
	mapper, err := NewMapper(data, pixel, opts.MaintainAspectRatio)
	if err != nil {
		return nil, fmt.Errorf("chartview: new chart: %w", err)
	}
	mapper.SetLogger(logger)

	engine := NewEngine(mapper, host, EngineOptions{
		DragDeadZone:  opts.DragDeadZone,
		LayoutQuiet:   opts.LayoutQuiet,
		LayoutMaxWait: opts.LayoutMaxWait,
		Now:           opts.Now,
		Logger:        logger,
	})
	return &Chart{mapper: mapper, engine: engine, logger: logger}, nil
}

// Mapper returns the chart's coordinate mapper.
func (c *Chart) Mapper() *Mapper { return c.mapper }

// Engine returns the chart's pointer engine.
func (c *Chart) Engine() *Engine { return c.engine }

// Attach subscribes the chart's engine to a backend's event source.
func (c *Chart) Attach(src EventSource) {
	c.engine.Attach(src)
}

// Resize fits the viewport to the surface size, keeping its origin at (0, 0).
func (c *Chart) Resize(s Surface) error {
	w, h := s.Size()
	vp := c.mapper.viewport()
	if vp.X() == 0 && vp.Y() == 0 && vp.Width() == w && vp.Height() == h {
		return nil
	}
	if err := c.mapper.SetPixelRegion(0, 0, w, h); err != nil {
		return err
	}
	c.engine.NotifyLayoutChanged()
	return nil
}

// Update advances the chart by one frame: the script (if any) runs a step,
// one injected event is processed and a settled layout change refreshes the
// offset.
func (c *Chart) Update() {
	if c.script != nil {
		c.script.step(c)
	}
	c.processInjectedInput()
	c.engine.Update()
}

// Dispose releases the engine's subscriptions and handlers.
func (c *Chart) Dispose() {
	c.engine.Dispose()
	c.injectQueue = nil
	c.script = nil
}
