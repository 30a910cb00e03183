package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/chartview"
)

// Surface implements chartview.Surface on an *ebiten.Image.
type Surface struct {
	target *ebiten.Image
}

// NewSurface wraps target. The target can be swapped each frame with SetTarget.
func NewSurface(target *ebiten.Image) *Surface {
	return &Surface{target: target}
}

// SetTarget replaces the image drawn onto.
func (s *Surface) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Size returns the target's size in pixels.
func (s *Surface) Size() (float64, float64) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear clears the target.
func (s *Surface) Clear() {
	if s.target != nil {
		s.target.Clear()
	}
}

// Line strokes a segment.
func (s *Surface) Line(x1, y1, x2, y2 float64, style chartview.Style) {
	if s.target == nil || style.LineWidth <= 0 {
		return
	}
	vector.StrokeLine(s.target, float32(x1), float32(y1), float32(x2), float32(y2),
		float32(style.LineWidth), style.Stroke.RGBA(), true)
}

// Rect fills and/or strokes a rectangle.
func (s *Surface) Rect(x, y, w, h float64, style chartview.Style) {
	if s.target == nil {
		return
	}
	if style.Fill.A > 0 {
		vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h),
			style.Fill.RGBA(), true)
	}
	if style.LineWidth > 0 {
		vector.StrokeRect(s.target, float32(x), float32(y), float32(w), float32(h),
			float32(style.LineWidth), style.Stroke.RGBA(), true)
	}
}

// Circle fills and/or strokes a circle.
func (s *Surface) Circle(cx, cy, r float64, style chartview.Style) {
	if s.target == nil {
		return
	}
	if style.Fill.A > 0 {
		vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r),
			style.Fill.RGBA(), true)
	}
	if style.LineWidth > 0 {
		vector.StrokeCircle(s.target, float32(cx), float32(cy), float32(r),
			float32(style.LineWidth), style.Stroke.RGBA(), true)
	}
}

// Polyline strokes consecutive segments through points.
func (s *Surface) Polyline(points []chartview.Vec2, style chartview.Style) {
	for i := 1; i < len(points); i++ {
		s.Line(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, style)
	}
}
