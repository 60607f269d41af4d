package modbot

import "testing"

var testBody = Rect{X: 340, Y: 210, Width: 320, Height: 180}

func TestAttachTarget(t *testing.T) {
	tests := []struct {
		side Side
		want Vec2
	}{
		// left - width + 90, top - height
		{SideTopLeft, Vec2{340 - 80 + 90, 210 - 80}},
		// right - 90, top - height
		{SideTopRight, Vec2{660 - 90, 210 - 80}},
		// left - width + 90, bottom
		{SideBottomLeft, Vec2{340 - 80 + 90, 390}},
		// right - 90, bottom
		{SideBottomRight, Vec2{660 - 90, 390}},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			got := AttachTarget(testBody, 80, 80, tt.side, DefaultOffsets)
			if got != tt.want {
				t.Errorf("AttachTarget(%v) = %v, want %v", tt.side, got, tt.want)
			}
		})
	}
}

func TestAttachTargetUsesOffsetTable(t *testing.T) {
	var zero OffsetTable
	got := AttachTarget(testBody, 80, 80, SideTopLeft, zero)
	if got != (Vec2{260, 130}) {
		t.Errorf("zero offsets: got %v", got)
	}
	custom := OffsetTable{SideBottomRight: {5, -7}}
	got = AttachTarget(testBody, 80, 80, SideBottomRight, custom)
	if got != (Vec2{665, 383}) {
		t.Errorf("custom offsets: got %v", got)
	}
}

func TestResolveExactTargetEverySide(t *testing.T) {
	r := DefaultResolver()
	for _, side := range Sides {
		t.Run(side.String(), func(t *testing.T) {
			p := AttachTarget(testBody, 80, 80, side, r.Offsets)
			got, target, dist := r.Resolve(testBody, Rect{p.X, p.Y, 80, 80})
			if got != side {
				t.Errorf("side = %v, want %v", got, side)
			}
			if dist != 0 || target != p {
				t.Errorf("dist = %v target = %v, want 0 at %v", dist, target, p)
			}
		})
	}
}

func TestResolveThresholdIsStrict(t *testing.T) {
	r := DefaultResolver()
	p := AttachTarget(testBody, 80, 80, SideTopRight, r.Offsets)

	side, _, _ := r.Resolve(testBody, Rect{p.X + 24.9, p.Y, 80, 80})
	if side != SideTopRight {
		t.Errorf("24.9 away: side = %v, want top_right", side)
	}
	side, target, dist := r.Resolve(testBody, Rect{p.X + 15, p.Y + 20, 80, 80})
	if side != SideNone {
		t.Errorf("exactly 25 away: side = %v, want none", side)
	}
	if dist != 25 || target != p {
		t.Errorf("nearest miss should still report dist 25 at %v, got %v at %v", p, dist, target)
	}
}

func TestResolveFarAway(t *testing.T) {
	side, _, _ := DefaultResolver().Resolve(testBody, Rect{10, 50, 80, 80})
	if side != SideNone {
		t.Errorf("side = %v, want none", side)
	}
}

func TestResolveTieGoesToEarlierSide(t *testing.T) {
	// With zero offsets the top_left (20,20) and bottom_left (20,280) targets
	// share an x, so a candidate at y=150 is equidistant from both.
	r := Resolver{Distance: 1000}
	body := Rect{X: 100, Y: 100, Width: 200, Height: 180}
	cand := Rect{X: 20, Y: 150, Width: 80, Height: 80}
	tl := AttachTarget(body, 80, 80, SideTopLeft, r.Offsets)
	bl := AttachTarget(body, 80, 80, SideBottomLeft, r.Offsets)
	if cand.Pos().Dist(tl) != cand.Pos().Dist(bl) {
		t.Fatalf("test setup: distances differ %v vs %v", cand.Pos().Dist(tl), cand.Pos().Dist(bl))
	}
	if side, _, _ := r.Resolve(body, cand); side != SideTopLeft {
		t.Errorf("tie resolved to %v, want top_left", side)
	}
}

func TestParseSide(t *testing.T) {
	for _, side := range Sides {
		got, err := ParseSide(side.String())
		if err != nil || got != side {
			t.Errorf("ParseSide(%q) = %v, %v", side.String(), got, err)
		}
	}
	if _, err := ParseSide("middle"); err == nil {
		t.Error("expected error for unknown side")
	}
	if SideNone.String() != "none" {
		t.Errorf("SideNone.String() = %q", SideNone.String())
	}
}
