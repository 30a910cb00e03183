package chartview

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0.5, -1, 3, 10, 20}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineOrder(t *testing.T) {
	// Scale then translate: the child is applied first.
	m := multiplyAffine(translateAffine(10, 20), scaleAffine(2, 3))
	x, y := transformPoint(m, 1, 1)
	assertNear(t, "x", x, 12)
	assertNear(t, "y", y, 23)

	m = multiplyAffine(scaleAffine(2, 3), translateAffine(10, 20))
	x, y = transformPoint(m, 1, 1)
	assertNear(t, "x", x, 22)
	assertNear(t, "y", y, 63)
}

func TestTransformPointExported(t *testing.T) {
	x, y := TransformPoint([6]float64{1, 0, 0, -1, 5, 100}, 10, 30)
	assertNear(t, "x", x, 15)
	assertNear(t, "y", y, 70)
}
