package modbot

import (
	"fmt"
	"math"
)

// Side names one of the four attachment points around the main body.
type Side int8

const (
	SideNone        Side = iota - 1 // not attached
	SideTopLeft                     // above the body, left corner
	SideTopRight                    // above the body, right corner
	SideBottomLeft                  // below the body, left corner
	SideBottomRight                 // below the body, right corner
)

// Sides lists the attachment points in resolver iteration order. Under equal
// distance the earlier side wins.
var Sides = [4]Side{SideTopLeft, SideTopRight, SideBottomLeft, SideBottomRight}

var sideNames = [4]string{"top_left", "top_right", "bottom_left", "bottom_right"}

// String returns the snake_case name used in config files and logs.
func (s Side) String() string {
	if s < SideTopLeft || s > SideBottomRight {
		return "none"
	}
	return sideNames[s]
}

// ParseSide maps a snake_case side name to its Side.
func ParseSide(name string) (Side, error) {
	for i, n := range sideNames {
		if n == name {
			return Side(i), nil
		}
	}
	return SideNone, fmt.Errorf("modbot: unknown attachment side %q", name)
}

func (s Side) left() bool { return s == SideTopLeft || s == SideBottomLeft }
func (s Side) top() bool  { return s == SideTopLeft || s == SideTopRight }

// OffsetTable holds the fixed per-side nudge applied to every snap target,
// indexed by Side.
type OffsetTable [4]Vec2

// DefaultOffsets pulls addons 90 units in along the body's long edge.
var DefaultOffsets = OffsetTable{
	SideTopLeft:     {90, 0},
	SideTopRight:    {-90, 0},
	SideBottomLeft:  {90, 0},
	SideBottomRight: {-90, 0},
}

// DefaultSnapDistance is the distance below which an addon snaps into place.
const DefaultSnapDistance = 25.0

// AttachTarget returns the top-left position an addon of size (w, h) takes
// when attached to the given side of body. Left sides sit the addon's right
// edge on the body's left edge; top sides sit its bottom edge on the body's
// top edge. The side's offset is added last.
func AttachTarget(body Rect, w, h float64, side Side, offsets OffsetTable) Vec2 {
	var p Vec2
	if side.left() {
		p.X = body.Left() - w
	} else {
		p.X = body.Right()
	}
	if side.top() {
		p.Y = body.Top() - h
	} else {
		p.Y = body.Bottom()
	}
	return p.Add(offsets[side])
}

// Resolver picks the attachment point closest to a candidate rectangle.
type Resolver struct {
	Distance float64
	Offsets  OffsetTable
}

// DefaultResolver returns a Resolver using DefaultSnapDistance and DefaultOffsets.
func DefaultResolver() Resolver {
	return Resolver{Distance: DefaultSnapDistance, Offsets: DefaultOffsets}
}

// Resolve finds the nearest side for cand. It returns that side's target and
// distance, and SideNone as the side when the distance is not strictly below
// r.Distance.
func (r Resolver) Resolve(body, cand Rect) (Side, Vec2, float64) {
	best := SideNone
	bestDist := math.Inf(1)
	var bestTarget Vec2
	pos := cand.Pos()
	for _, side := range Sides {
		t := AttachTarget(body, cand.Width, cand.Height, side, r.Offsets)
		if d := pos.Dist(t); d < bestDist {
			best, bestDist, bestTarget = side, d, t
		}
	}
	if bestDist < r.Distance {
		return best, bestTarget, bestDist
	}
	return SideNone, bestTarget, bestDist
}
