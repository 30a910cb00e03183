package chartview

import (
	"math"

	"github.com/charmbracelet/log"
)

// Mapper maps data coords to pixel coords and vice versa.
//
// The pixel coords are defined by a Rectangle relative to the top-left corner
// of the surface, y increasing downward. The data coords are defined by a
// BoundingBox with y increasing upward, so the top of the viewport shows the
// data yMax.
//
// When MaintainAspectRatio is set the data region is expanded (never
// shrunk) whenever either region changes so that its width:height ratio
// matches the viewport's. Otherwise the data space stretches to fill the
// viewport.
type Mapper struct {
	data  *BoundingBox
	pixel *Rectangle

	maintainAspectRatio bool

	matrix    [6]float64
	invMatrix [6]float64
	matrixErr error
	dirty     bool

	logger *log.Logger
}

// NewMapper creates a mapper owning copies of data and pixel. A nil region
// falls back to the (0, 0, 100, 100) default.
func NewMapper(data *BoundingBox, pixel *Rectangle, maintainAspectRatio bool) (*Mapper, error) {
	if data == nil {
		data = DefaultBoundingBox()
	}
	if pixel == nil {
		pixel = DefaultRectangle()
	}
	m := &Mapper{
		data:   data.Clone(),
		pixel:  pixel.Clone(),
		dirty:  true,
		logger: defaultLogger,
	}
	if err := m.SetMaintainAspectRatio(maintainAspectRatio); err != nil {
		return nil, err
	}
	return m, nil
}

// SetLogger replaces the logger used for debug tracing.
func (m *Mapper) SetLogger(l *log.Logger) {
	if l != nil {
		m.logger = l
	}
}

// MaintainAspectRatio reports whether the data region follows the
// viewport's aspect ratio.
func (m *Mapper) MaintainAspectRatio() bool {
	return m.maintainAspectRatio
}

// SetMaintainAspectRatio toggles aspect-ratio preservation. Switching it on
// reconciles the current regions immediately.
func (m *Mapper) SetMaintainAspectRatio(on bool) error {
	if on {
		data := m.data.Clone()
		if err := reconcileAspect(data, m.pixel, "Mapper.SetMaintainAspectRatio"); err != nil {
			return err
		}
		m.data = data
		m.dirty = true
	}
	m.maintainAspectRatio = on
	return nil
}

// DataRegion returns a copy of the data region.
func (m *Mapper) DataRegion() *BoundingBox {
	return m.data.Clone()
}

// PixelRegion returns a copy of the pixel region.
func (m *Mapper) PixelRegion() *Rectangle {
	return m.pixel.Clone()
}

// Viewport is an alias for PixelRegion.
func (m *Mapper) Viewport() *Rectangle {
	return m.pixel.Clone()
}

// viewport returns the live pixel region for read-only use inside the package.
func (m *Mapper) viewport() *Rectangle {
	return m.pixel
}

// SetDataRegion replaces the data region.
func (m *Mapper) SetDataRegion(xMin, yMin, xMax, yMax float64) error {
	data, err := NewBoundingBox(xMin, yMin, xMax, yMax)
	if err != nil {
		return err
	}
	return m.commit(data, m.pixel, "Mapper.SetDataRegion")
}

// SetPixelRegion replaces the pixel region.
func (m *Mapper) SetPixelRegion(x, y, w, h float64) error {
	pixel, err := NewRectangle(x, y, w, h)
	if err != nil {
		return err
	}
	return m.commit(m.data.Clone(), pixel, "Mapper.SetPixelRegion")
}

// commit reconciles the candidate regions and only then stores them.
func (m *Mapper) commit(data *BoundingBox, pixel *Rectangle, op string) error {
	if m.maintainAspectRatio {
		if err := reconcileAspect(data, pixel, op); err != nil {
			return err
		}
	}
	m.data = data
	m.pixel = pixel
	m.dirty = true
	m.logger.Debug("regions changed", "op", op,
		"data", [4]float64{data.XMin(), data.YMin(), data.XMax(), data.YMax()},
		"pixel", [4]float64{pixel.X(), pixel.Y(), pixel.Width(), pixel.Height()})
	return nil
}

// reconcileAspect expands data so that its aspect ratio matches pixel's.
// The box grows symmetrically around its center along the axis that is
// too short; the other axis is kept.
func reconcileAspect(data *BoundingBox, pixel *Rectangle, op string) error {
	if pixel.Width() == 0 {
		return degenerate(op, "w", "pixel width must be > 0 while the aspect ratio is maintained")
	}
	if pixel.Height() == 0 {
		return degenerate(op, "h", "pixel height must be > 0 while the aspect ratio is maintained")
	}

	sy := data.Height() / pixel.Height()
	sx := data.Width() / pixel.Width()

	var x, y, w, h float64
	switch {
	case sy > sx:
		y = data.YMin()
		h = data.Height()
		w = (pixel.Width() / pixel.Height()) * h
		x = data.XMin() - (w-data.Width())/2
	case sx > sy:
		x = data.XMin()
		w = data.Width()
		h = (pixel.Height() / pixel.Width()) * w
		y = data.YMin() - (h-data.Height())/2
	default:
		return nil
	}

	data.setCoords(x, y, x+w, y+h)
	return nil
}

// --- Distances ---

// DataToPixelWidth converts a width from data units to pixel units.
func (m *Mapper) DataToPixelWidth(w float64) (float64, error) {
	return scaleDistance("Mapper.DataToPixelWidth", "w", w, m.data.Width(), m.pixel.Width())
}

// DataToPixelHeight converts a height from data units to pixel units.
func (m *Mapper) DataToPixelHeight(h float64) (float64, error) {
	return scaleDistance("Mapper.DataToPixelHeight", "h", h, m.data.Height(), m.pixel.Height())
}

// PixelToDataWidth converts a width from pixel units to data units.
func (m *Mapper) PixelToDataWidth(w float64) (float64, error) {
	return scaleDistance("Mapper.PixelToDataWidth", "w", w, m.pixel.Width(), m.data.Width())
}

// PixelToDataHeight converts a height from pixel units to data units.
func (m *Mapper) PixelToDataHeight(h float64) (float64, error) {
	return scaleDistance("Mapper.PixelToDataHeight", "h", h, m.pixel.Height(), m.data.Height())
}

// scaleDistance returns v * to / from. Zero always maps to zero; a non-zero
// distance over a zero-extent source is ErrDegenerateRegion.
func scaleDistance(op, param string, v, from, to float64) (float64, error) {
	if err := checkFinite(op, param, v); err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, nil
	}
	if from == 0 {
		return 0, degenerate(op, param, "source region has zero extent")
	}
	return (v / from) * to, nil
}

// --- Coordinates ---

// DataToPixelX converts an x coord from data units to pixel units.
func (m *Mapper) DataToPixelX(x float64) (float64, error) {
	d, err := m.DataToPixelWidth(x - m.data.XMin())
	if err != nil {
		return 0, err
	}
	return m.pixel.X() + d, nil
}

// DataToPixelY converts a y coord from data units to pixel units.
func (m *Mapper) DataToPixelY(y float64) (float64, error) {
	d, err := m.DataToPixelHeight(y - m.data.YMin())
	if err != nil {
		return 0, err
	}
	return m.pixel.Bottom() - d, nil
}

// PixelToDataX converts an x coord from pixel units to data units.
func (m *Mapper) PixelToDataX(px float64) (float64, error) {
	d, err := m.PixelToDataWidth(px - m.pixel.X())
	if err != nil {
		return 0, err
	}
	return m.data.XMin() + d, nil
}

// PixelToDataY converts a y coord from pixel units to data units.
func (m *Mapper) PixelToDataY(py float64) (float64, error) {
	d, err := m.PixelToDataHeight(m.pixel.Bottom() - py)
	if err != nil {
		return 0, err
	}
	return m.data.YMin() + d, nil
}

// DataToPixelPoint converts a point from data units to pixel units.
func (m *Mapper) DataToPixelPoint(x, y float64) (px, py float64, err error) {
	if px, err = m.DataToPixelX(x); err != nil {
		return 0, 0, err
	}
	if py, err = m.DataToPixelY(y); err != nil {
		return 0, 0, err
	}
	return px, py, nil
}

// PixelToDataPoint converts a point from pixel units to data units.
func (m *Mapper) PixelToDataPoint(px, py float64) (x, y float64, err error) {
	if x, err = m.PixelToDataX(px); err != nil {
		return 0, 0, err
	}
	if y, err = m.PixelToDataY(py); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// --- Regions ---

// DataToPixelRect converts a bounding box (data units) to a rectangle
// (pixel units). The rectangle's top edge is the box's yMax.
func (m *Mapper) DataToPixelRect(b *BoundingBox) (*Rectangle, error) {
	if b == nil {
		return nil, invalidArg("Mapper.DataToPixelRect", "bBox", "bBox must be a BoundingBox")
	}
	x, err := m.DataToPixelX(b.XMin())
	if err != nil {
		return nil, err
	}
	y, err := m.DataToPixelY(b.YMax())
	if err != nil {
		return nil, err
	}
	w, err := m.DataToPixelWidth(b.Width())
	if err != nil {
		return nil, err
	}
	h, err := m.DataToPixelHeight(b.Height())
	if err != nil {
		return nil, err
	}
	return NewRectangle(x, y, w, h)
}

// PixelToDataRect converts a rectangle (pixel units) to a bounding box
// (data units).
func (m *Mapper) PixelToDataRect(r *Rectangle) (*BoundingBox, error) {
	if r == nil {
		return nil, invalidArg("Mapper.PixelToDataRect", "rect", "rect must be a Rectangle")
	}
	xMin, err := m.PixelToDataX(r.X())
	if err != nil {
		return nil, err
	}
	yMax, err := m.PixelToDataY(r.Y())
	if err != nil {
		return nil, err
	}
	w, err := m.PixelToDataWidth(r.Width())
	if err != nil {
		return nil, err
	}
	h, err := m.PixelToDataHeight(r.Height())
	if err != nil {
		return nil, err
	}
	return NewBoundingBox(xMin, yMax-h, xMin+w, yMax)
}

// --- Matrices ---

// computeMatrix recomputes the cached data->pixel matrix if dirty.
//
// matrix = Translate(px, py+ph) * Scale(pw/dw, -ph/dh) * Translate(-xMin, -yMin)
func (m *Mapper) computeMatrix() {
	if !m.dirty {
		return
	}
	m.dirty = false
	m.matrixErr = nil

	if m.data.Width() == 0 || m.data.Height() == 0 {
		m.matrix, m.invMatrix = identityTransform, identityTransform
		m.matrixErr = degenerate("Mapper.Matrix", "data", "data region has zero extent")
		return
	}
	sx := m.pixel.Width() / m.data.Width()
	sy := m.pixel.Height() / m.data.Height()

	mat := translateAffine(-m.data.XMin(), -m.data.YMin())
	mat = multiplyAffine(scaleAffine(sx, -sy), mat)
	mat = multiplyAffine(translateAffine(m.pixel.X(), m.pixel.Bottom()), mat)

	m.matrix = mat
	if sx == 0 || sy == 0 {
		m.invMatrix = identityTransform
		m.matrixErr = degenerate("Mapper.Matrix", "pixel", "pixel region has zero extent")
		return
	}

	// Built from the regions; inverting mat loses precision when the data
	// span is large.
	inv := translateAffine(-m.pixel.X(), -m.pixel.Bottom())
	inv = multiplyAffine(scaleAffine(1/sx, -1/sy), inv)
	m.invMatrix = multiplyAffine(translateAffine(m.data.XMin(), m.data.YMin()), inv)
}

// Matrix returns the affine data->pixel transform in [a, b, c, d, tx, ty]
// layout, for backends that draw in data units directly.
func (m *Mapper) Matrix() ([6]float64, error) {
	m.computeMatrix()
	return m.matrix, m.matrixErr
}

// InverseMatrix returns the affine pixel->data transform.
func (m *Mapper) InverseMatrix() ([6]float64, error) {
	m.computeMatrix()
	return m.invMatrix, m.matrixErr
}

// --- Navigation ---

// Pan shifts the data region by a pixel delta, as when dragging the chart
// content: moving the pointer right by dpx moves the data left.
func (m *Mapper) Pan(dpx, dpy float64) error {
	dx, err := m.PixelToDataWidth(dpx)
	if err != nil {
		return err
	}
	dy, err := m.PixelToDataHeight(dpy)
	if err != nil {
		return err
	}
	b := m.data
	return m.SetDataRegion(b.XMin()-dx, b.YMin()+dy, b.XMax()-dx, b.YMax()+dy)
}

// Zoom limits relative to the current extent.
const (
	minZoomFactor = 1e-3
	maxZoomFactor = 1e3
)

// ZoomAt scales the data region around the data point under pixel (px, py).
// A factor above 1 zooms in. The point under the pointer stays fixed.
func (m *Mapper) ZoomAt(px, py, factor float64) error {
	const op = "Mapper.ZoomAt"
	if err := checkFinite(op, "factor", factor); err != nil {
		return err
	}
	if factor < minZoomFactor || factor > maxZoomFactor {
		return invalidArg(op, "factor", "factor out of range")
	}
	if m.pixel.Width() == 0 || m.pixel.Height() == 0 {
		return degenerate(op, "pixel", "pixel region has zero extent")
	}
	if err := checkFinite(op, "px", px); err != nil {
		return err
	}
	if err := checkFinite(op, "py", py); err != nil {
		return err
	}

	// Proportional position of the pointer inside the viewport.
	fx := (px - m.pixel.X()) / m.pixel.Width()
	fy := (m.pixel.Bottom() - py) / m.pixel.Height()
	fx = math.Max(0, math.Min(1, fx))
	fy = math.Max(0, math.Min(1, fy))

	b := m.data
	ax := b.XMin() + fx*b.Width()
	ay := b.YMin() + fy*b.Height()
	w := b.Width() / factor
	h := b.Height() / factor

	xMin := ax - w*fx
	yMin := ay - h*fy
	return m.SetDataRegion(xMin, yMin, xMin+w, yMin+h)
}
