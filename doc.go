// Package chartview is the geometric and interaction core of a chart widget.
//
// It maps between a data space (a [BoundingBox] in arbitrary units, y
// increasing upward) and a pixel space (a [Rectangle] viewport, y increasing
// downward), and turns low-level pointer events into hover, press, click and
// drag events carrying both pixel and data coordinates.
//
// # Quick start
//
//	chart, err := chartview.NewChart(chartview.Options{
//		Dimensions: chartview.Dimensions{Width: 640, Height: 480},
//		Axes: chartview.Axes{
//			XAxis: chartview.AxisRange{Min: 0, Max: 10},
//			YAxis: chartview.AxisRange{Min: -1, Max: 1},
//		},
//		MaintainAspectRatio: false,
//	}, nil)
//	if err != nil {
//		return err
//	}
//	chart.Engine().OnClick(func(ctx chartview.PointerContext) {
//		fmt.Println("clicked", ctx.DataX, ctx.DataY)
//	})
//
// Backends feed raw events through [Engine.HandleEvent], or through an
// [EventSource] passed to [Chart.Attach], and call [Chart.Update] once per
// frame. The ebitenhost and teahost packages provide Ebitengine and
// terminal backends.
//
// # Coordinate mapping
//
// [Mapper] converts points, widths, heights and regions in both directions.
// With MaintainAspectRatio set, the data region is expanded whenever either
// region changes so that one data unit covers the same number of pixels on
// both axes.
//
// # Pointer events
//
// The [Engine] state machine moves between Idle, Hovering, Pressed and
// Dragging. Handlers are registered per [EventType] (or by name, e.g.
// "drag-start") and run in registration order. The surface offset is read
// when the engine is created and again after layout changes settle, never
// per pointer event.
//
// # Errors
//
// Invalid arguments fail with [ErrInvalidArgument]; zero-extent regions used
// as divisors fail with [ErrDegenerateRegion]. Failed calls leave all state
// untouched.
package chartview
