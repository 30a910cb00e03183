package chartview

// Rectangle is an axis-aligned area in pixel units. The coordinate system
// has its origin at the top-left, with Y increasing downward. Width and
// height are never negative.
type Rectangle struct {
	x, y, width, height float64
}

// NewRectangle creates a rectangle from its origin and size.
func NewRectangle(x, y, w, h float64) (*Rectangle, error) {
	r := &Rectangle{}
	if err := r.SetDimensions(x, y, w, h); err != nil {
		return nil, err
	}
	return r, nil
}

// DefaultRectangle returns the (0, 0, 100, 100) rectangle.
func DefaultRectangle() *Rectangle {
	return &Rectangle{0, 0, 100, 100}
}

// SetDimensions sets origin and size. Nothing is written unless every value
// is valid.
func (r *Rectangle) SetDimensions(x, y, w, h float64) error {
	const op = "Rectangle.SetDimensions"
	if err := checkFinite(op, "x", x); err != nil {
		return err
	}
	if err := checkFinite(op, "y", y); err != nil {
		return err
	}
	if err := checkSize(op, "w", w); err != nil {
		return err
	}
	if err := checkSize(op, "h", h); err != nil {
		return err
	}
	r.x, r.y, r.width, r.height = x, y, w, h
	return nil
}

// X returns the x coord of the left edge.
func (r *Rectangle) X() float64 { return r.x }

// Y returns the y coord of the top edge.
func (r *Rectangle) Y() float64 { return r.y }

// Width returns the width.
func (r *Rectangle) Width() float64 { return r.width }

// Height returns the height.
func (r *Rectangle) Height() float64 { return r.height }

// Right returns the x coord of the right edge.
func (r *Rectangle) Right() float64 { return r.x + r.width }

// Bottom returns the y coord of the bottom edge.
func (r *Rectangle) Bottom() float64 { return r.y + r.height }

// CenterX returns the x coord of the center.
func (r *Rectangle) CenterX() float64 { return r.x + r.width/2 }

// CenterY returns the y coord of the center.
func (r *Rectangle) CenterY() float64 { return r.y + r.height/2 }

// SetX moves the rectangle horizontally.
func (r *Rectangle) SetX(x float64) error {
	if err := checkFinite("Rectangle.SetX", "x", x); err != nil {
		return err
	}
	r.x = x
	return nil
}

// SetY moves the rectangle vertically.
func (r *Rectangle) SetY(y float64) error {
	if err := checkFinite("Rectangle.SetY", "y", y); err != nil {
		return err
	}
	r.y = y
	return nil
}

// SetWidth resizes the rectangle from its left edge.
func (r *Rectangle) SetWidth(w float64) error {
	if err := checkSize("Rectangle.SetWidth", "w", w); err != nil {
		return err
	}
	r.width = w
	return nil
}

// SetHeight resizes the rectangle from its top edge.
func (r *Rectangle) SetHeight(h float64) error {
	if err := checkSize("Rectangle.SetHeight", "h", h); err != nil {
		return err
	}
	r.height = h
	return nil
}

// Clone returns an independent copy.
func (r *Rectangle) Clone() *Rectangle {
	c := *r
	return &c
}

// Equals reports whether origin and size match exactly.
func (r *Rectangle) Equals(other *Rectangle) (bool, error) {
	if other == nil {
		return false, invalidArg("Rectangle.Equals", "rect", "rect must be a Rectangle")
	}
	return *r == *other, nil
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r *Rectangle) Intersects(other *Rectangle) (bool, error) {
	if other == nil {
		return false, invalidArg("Rectangle.Intersects", "rect", "rect must be a Rectangle")
	}
	return r.x <= other.Right() &&
		r.Right() >= other.x &&
		r.y <= other.Bottom() &&
		r.Bottom() >= other.y, nil
}

// Contains reports whether other lies within or on the boundary of r.
func (r *Rectangle) Contains(other *Rectangle) (bool, error) {
	if other == nil {
		return false, invalidArg("Rectangle.Contains", "rect", "rect must be a Rectangle")
	}
	return other.x >= r.x && other.Right() <= r.Right() &&
		other.y >= r.y && other.Bottom() <= r.Bottom(), nil
}

// ContainsPoint reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r *Rectangle) ContainsPoint(x, y float64) bool {
	return x >= r.x && x <= r.x+r.width &&
		y >= r.y && y <= r.y+r.height
}
