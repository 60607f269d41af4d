package modbot

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"just inside bottom-right", 109.5, 69.5, true},
		{"right edge", 110, 40, false},
		{"bottom edge", 50, 70, false},
		{"bottom-right corner", 110, 70, false},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectClamp(t *testing.T) {
	bounds := Rect{Width: 1000, Height: 600}

	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"already inside", Rect{100, 100, 80, 80}, Rect{100, 100, 80, 80}},
		{"past left and top", Rect{-30, -5, 80, 80}, Rect{0, 0, 80, 80}},
		{"past right", Rect{990, 100, 80, 80}, Rect{920, 100, 80, 80}},
		{"past bottom", Rect{10, 590, 80, 80}, Rect{10, 520, 80, 80}},
		{"flush to corner", Rect{920, 520, 80, 80}, Rect{920, 520, 80, 80}},
		{"exactly bounds size", Rect{5, 5, 1000, 600}, Rect{0, 0, 1000, 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamp(bounds); got != tt.want {
				t.Errorf("Clamp(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRectClampContainment(t *testing.T) {
	bounds := Rect{Width: 800, Height: 600}
	for x := -1000.0; x <= 1000; x += 137 {
		for y := -1000.0; y <= 1000; y += 113 {
			for _, size := range []Vec2{{1, 1}, {80, 80}, {320, 180}, {800, 600}} {
				r := Rect{X: x, Y: y, Width: size.X, Height: size.Y}.Clamp(bounds)
				if r.Width != size.X || r.Height != size.Y {
					t.Fatalf("Clamp changed size: %+v", r)
				}
				if r.X < 0 || r.Y < 0 || r.Right() > bounds.Width || r.Bottom() > bounds.Height {
					t.Fatalf("Clamp(%v,%v,%v) = %+v, not inside %+v", x, y, size, r, bounds)
				}
			}
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 340, Y: 210, Width: 320, Height: 180}
	if r.Left() != 340 || r.Top() != 210 || r.Right() != 660 || r.Bottom() != 390 {
		t.Errorf("edges = %v %v %v %v", r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	if got := r.MoveTo(Vec2{1, 2}); got != (Rect{1, 2, 320, 180}) {
		t.Errorf("MoveTo = %+v", got)
	}
}

func TestVec2(t *testing.T) {
	a, b := Vec2{3, 4}, Vec2{0, 0}
	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist = %v, want 5", d)
	}
	if got := a.Add(Vec2{1, 1}).Sub(Vec2{2, 2}); got != (Vec2{2, 3}) {
		t.Errorf("Add/Sub = %v", got)
	}
}

func TestColorLerp(t *testing.T) {
	from, to := RGB(80, 80, 80), RGB(110, 110, 110)
	if got := from.Lerp(to, 0); got != from {
		t.Errorf("Lerp(0) = %+v", got)
	}
	if got := from.Lerp(to, 1); got != to {
		t.Errorf("Lerp(1) = %+v", got)
	}
	mid := from.Lerp(to, 0.5)
	if math.Abs(mid.R-95.0/255) > 1e-9 {
		t.Errorf("Lerp(0.5).R = %v", mid.R)
	}
	if got := from.Lerp(to, 7); got != to {
		t.Errorf("Lerp should clamp t, got %+v", got)
	}
}

func TestColorToRGBA(t *testing.T) {
	c := RGB(112, 108, 97).toRGBA()
	if c.R != 112 || c.G != 108 || c.B != 97 || c.A != 255 {
		t.Errorf("toRGBA = %+v", c)
	}
	half := Color{R: 1, A: 0.5}.toRGBA()
	if half.R != 128 || half.A != 128 {
		t.Errorf("premultiplied = %+v", half)
	}
}

func TestKeyModifiersHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModCtrl|ModShift) {
		t.Error("expected Ctrl and Ctrl+Shift")
	}
	if m.Has(ModAlt) {
		t.Error("did not expect Alt")
	}
	if !KeyModifiers(0).Has(0) {
		t.Error("empty mask should always match")
	}
}
