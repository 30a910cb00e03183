package chartview

import "math"

// BoundingBox is an axis-aligned area in data units, defined by its
// bottom-left corner (xMin, yMin) and top-right corner (xMax, yMax).
// Width, height and center are recomputed on every mutation, so a box is
// never observed in an inconsistent state. Setters validate before writing.
type BoundingBox struct {
	xMin, xMax, xCenter, width  float64
	yMin, yMax, yCenter, height float64
}

// NewBoundingBox creates a bounding box from its edges.
func NewBoundingBox(xMin, yMin, xMax, yMax float64) (*BoundingBox, error) {
	b := &BoundingBox{}
	if err := b.SetCoords(xMin, yMin, xMax, yMax); err != nil {
		return nil, err
	}
	return b, nil
}

// DefaultBoundingBox returns the (0, 0, 100, 100) box.
func DefaultBoundingBox() *BoundingBox {
	b := &BoundingBox{}
	b.setCoords(0, 0, 100, 100)
	return b
}

// SetCoords sets all four edges. Nothing is written unless every value is finite.
func (b *BoundingBox) SetCoords(xMin, yMin, xMax, yMax float64) error {
	const op = "BoundingBox.SetCoords"
	for _, a := range [...]struct {
		name string
		v    float64
	}{{"xMin", xMin}, {"yMin", yMin}, {"xMax", xMax}, {"yMax", yMax}} {
		if err := checkFinite(op, a.name, a.v); err != nil {
			return err
		}
	}
	b.setCoords(xMin, yMin, xMax, yMax)
	return nil
}

func (b *BoundingBox) setCoords(xMin, yMin, xMax, yMax float64) {
	b.xMin, b.xMax = xMin, xMax
	b.yMin, b.yMax = yMin, yMax
	b.syncX()
	b.syncY()
}

// syncX recomputes width and center from the x edges.
func (b *BoundingBox) syncX() {
	b.width = math.Abs(b.xMax - b.xMin)
	b.xCenter = (b.xMin + b.xMax) / 2
}

// syncY recomputes height and center from the y edges.
func (b *BoundingBox) syncY() {
	b.height = math.Abs(b.yMax - b.yMin)
	b.yCenter = (b.yMin + b.yMax) / 2
}

// XMin returns the x coord of the left edge.
func (b *BoundingBox) XMin() float64 { return b.xMin }

// XMax returns the x coord of the right edge.
func (b *BoundingBox) XMax() float64 { return b.xMax }

// XCenter returns the x coord of the center.
func (b *BoundingBox) XCenter() float64 { return b.xCenter }

// Width returns |xMax - xMin|.
func (b *BoundingBox) Width() float64 { return b.width }

// YMin returns the y coord of the bottom edge.
func (b *BoundingBox) YMin() float64 { return b.yMin }

// YMax returns the y coord of the top edge.
func (b *BoundingBox) YMax() float64 { return b.yMax }

// YCenter returns the y coord of the center.
func (b *BoundingBox) YCenter() float64 { return b.yCenter }

// Height returns |yMax - yMin|.
func (b *BoundingBox) Height() float64 { return b.height }

// SetXMin moves the left edge, keeping the right edge.
func (b *BoundingBox) SetXMin(x float64) error {
	if err := checkFinite("BoundingBox.SetXMin", "x", x); err != nil {
		return err
	}
	b.xMin = x
	b.syncX()
	return nil
}

// SetXMax moves the right edge, keeping the left edge.
func (b *BoundingBox) SetXMax(x float64) error {
	if err := checkFinite("BoundingBox.SetXMax", "x", x); err != nil {
		return err
	}
	b.xMax = x
	b.syncX()
	return nil
}

// SetXCenter moves the box horizontally, keeping its width.
func (b *BoundingBox) SetXCenter(x float64) error {
	if err := checkFinite("BoundingBox.SetXCenter", "x", x); err != nil {
		return err
	}
	b.xCenter = x
	b.xMin = x - b.width/2
	b.xMax = x + b.width/2
	return nil
}

// SetWidth resizes the box from its left edge.
func (b *BoundingBox) SetWidth(w float64) error {
	if err := checkSize("BoundingBox.SetWidth", "w", w); err != nil {
		return err
	}
	b.width = w
	b.xMax = b.xMin + w
	b.xCenter = b.xMin + w/2
	return nil
}

// SetYMin moves the bottom edge, keeping the top edge.
func (b *BoundingBox) SetYMin(y float64) error {
	if err := checkFinite("BoundingBox.SetYMin", "y", y); err != nil {
		return err
	}
	b.yMin = y
	b.syncY()
	return nil
}

// SetYMax moves the top edge, keeping the bottom edge.
func (b *BoundingBox) SetYMax(y float64) error {
	if err := checkFinite("BoundingBox.SetYMax", "y", y); err != nil {
		return err
	}
	b.yMax = y
	b.syncY()
	return nil
}

// SetYCenter moves the box vertically, keeping its height.
func (b *BoundingBox) SetYCenter(y float64) error {
	if err := checkFinite("BoundingBox.SetYCenter", "y", y); err != nil {
		return err
	}
	b.yCenter = y
	b.yMin = y - b.height/2
	b.yMax = y + b.height/2
	return nil
}

// SetHeight resizes the box from its bottom edge.
func (b *BoundingBox) SetHeight(h float64) error {
	if err := checkSize("BoundingBox.SetHeight", "h", h); err != nil {
		return err
	}
	b.height = h
	b.yMax = b.yMin + h
	b.yCenter = b.yMin + h/2
	return nil
}

// Clone returns an independent copy.
func (b *BoundingBox) Clone() *BoundingBox {
	c := *b
	return &c
}

// Equals reports whether all four edges match exactly.
func (b *BoundingBox) Equals(other *BoundingBox) (bool, error) {
	if other == nil {
		return false, invalidArg("BoundingBox.Equals", "bBox", "bBox must be a BoundingBox")
	}
	return b.xMin == other.xMin && b.yMin == other.yMin &&
		b.xMax == other.xMax && b.yMax == other.yMax, nil
}

// Intersects reports whether other overlaps b. Boxes sharing only an edge
// intersect.
func (b *BoundingBox) Intersects(other *BoundingBox) (bool, error) {
	if other == nil {
		return false, invalidArg("BoundingBox.Intersects", "bBox", "bBox must be a BoundingBox")
	}
	if other.xMin > b.xMax || other.xMax < b.xMin ||
		other.yMin > b.yMax || other.yMax < b.yMin {
		return false, nil
	}
	return true, nil
}

// Contains reports whether other lies within or on the boundary of b.
func (b *BoundingBox) Contains(other *BoundingBox) (bool, error) {
	if other == nil {
		return false, invalidArg("BoundingBox.Contains", "bBox", "bBox must be a BoundingBox")
	}
	if other.xMin < b.xMin || other.xMax > b.xMax ||
		other.yMin < b.yMin || other.yMax > b.yMax {
		return false, nil
	}
	return true, nil
}

// ContainsPoint reports whether (x, y) lies inside b. Points on an edge are
// inside.
func (b *BoundingBox) ContainsPoint(x, y float64) bool {
	return x >= b.xMin && x <= b.xMax && y >= b.yMin && y <= b.yMax
}
