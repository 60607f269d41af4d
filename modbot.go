package modbot

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// Lerp blends c toward other by t in [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	switch {
	case t <= 0:
		return c
	case t >= 1:
		return other
	}
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// toRGBA converts to a premultiplied color.RGBA for ebiten.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(c.R * c.A * 255)),
		G: uint8(math.Round(c.G * c.A * 255)),
		B: uint8(math.Round(c.B * c.A * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

// Vec2 is a 2D vector used for positions, offsets and grab offsets.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The left and top edges are inside; the right and bottom edges are not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 { return Vec2{r.X, r.Y} }

// MoveTo returns r with its top-left corner at p.
func (r Rect) MoveTo(p Vec2) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Left, Top, Right and Bottom return the rectangle's edges.
func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Clamp shifts r so it lies within bounds. Size is unchanged. When r is larger
// than bounds on an axis, it is pinned to the bounds' origin on that axis.
func (r Rect) Clamp(bounds Rect) Rect {
	r.X = math.Max(bounds.X, math.Min(r.X, bounds.X+bounds.Width-r.Width))
	r.Y = math.Max(bounds.Y, math.Min(r.Y, bounds.Y+bounds.Height-r.Height))
	return r
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether every modifier in want is held in m.
func (m KeyModifiers) Has(want KeyModifiers) bool {
	return m&want == want
}
