package chartview

// Style describes how a primitive is stroked and filled. A zero Fill alpha
// leaves the shape unfilled; a zero LineWidth leaves it unstroked.
type Style struct {
	Stroke    Color
	Fill      Color
	LineWidth float64
}

// Surface is the rendering capability a chart draws onto. All coordinates
// are pixels with the origin at the top-left. The mapping and interaction
// code only depends on this interface, never on a concrete backend.
type Surface interface {
	// Size returns the drawable size in pixels.
	Size() (width, height float64)
	Clear()
	Line(x1, y1, x2, y2 float64, style Style)
	Rect(x, y, w, h float64, style Style)
	Circle(cx, cy, r float64, style Style)
	Polyline(points []Vec2, style Style)
}
