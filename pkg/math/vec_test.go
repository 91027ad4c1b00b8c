package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3_Operations(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: expected {5 7 9}, got %v", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, -3, -3}) {
		t.Errorf("Sub: expected {-3 -3 -3}, got %v", got)
	}
	if got := a.Mul(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Mul: expected {2 4 6}, got %v", got)
	}
	if got := a.MulVec(b); got != (Vec3{4, 10, 18}) {
		t.Errorf("MulVec: expected {4 10 18}, got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
	if got := a.Cross(b); got != (Vec3{-3, 6, -3}) {
		t.Errorf("Cross: expected {-3 6 -3}, got %v", got)
	}
	if got := (Vec3{3, 4, 0}).Len(); got != 5 {
		t.Errorf("Len: expected 5, got %v", got)
	}
	if got := (Vec3{3, 4, 0}).LenSq(); got != 25 {
		t.Errorf("LenSq: expected 25, got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := Vec3{10, 0, 0}.Normalize()
	if v != (Vec3{1, 0, 0}) {
		t.Errorf("expected unit x axis, got %v", v)
	}

	// the zero vector must survive normalization unchanged
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("expected zero vector, got %v", got)
	}

	n := Vec3{1, 2, 3}.Normalize()
	if math32.Abs(n.Len()-1) > 1e-6 {
		t.Errorf("expected unit length, got %v", n.Len())
	}
}

func TestVec3_Components(t *testing.T) {
	v := Vec3{-2, 7, 0.5}
	if got := v.MaxComponent(); got != 7 {
		t.Errorf("MaxComponent: expected 7, got %v", got)
	}
	if got := v.MinComponent(); got != -2 {
		t.Errorf("MinComponent: expected -2, got %v", got)
	}
	if got := v.Clamp(0, 1); got != (Vec3{0, 1, 0.5}) {
		t.Errorf("Clamp: expected {0 1 0.5}, got %v", got)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if (Vec3{math32.NaN(), 0, 0}).IsFinite() {
		t.Error("NaN component reported as finite")
	}
	if (Vec3{0, math32.Inf(1), 0}).IsFinite() {
		t.Error("infinite component reported as finite")
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, 6}
	if got := a.Lerp(b, 0.5); got != (Vec3{1, 2, 3}) {
		t.Errorf("expected midpoint, got %v", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("expected start point, got %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("expected end point, got %v", got)
	}
}

func TestVec4_Operations(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	if got := a.Mul(2).Div(2); got != a {
		t.Errorf("Mul/Div roundtrip: got %v", got)
	}
	if got := a.XYZ(); got != (Vec3{1, 2, 3}) {
		t.Errorf("XYZ: expected {1 2 3}, got %v", got)
	}
	if got := (Vec3{1, 2, 3}).Vec4(1); got != (Vec4{1, 2, 3, 1}) {
		t.Errorf("Vec4: expected {1 2 3 1}, got %v", got)
	}
	if got := a.MulVec(Vec4{2, 2, 2, 1}); got != (Vec4{2, 4, 6, 4}) {
		t.Errorf("MulVec: expected {2 4 6 4}, got %v", got)
	}
}
