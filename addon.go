package modbot

// Addon is a draggable module that snaps onto the main body's attachment
// points. An addon being dragged is never attached.
type Addon struct {
	Draggable
	ID    uint32
	Color Color
	side  Side
}

// NewAddon returns an unattached addon covering r.
func NewAddon(id uint32, r Rect, c Color) *Addon {
	return &Addon{Draggable: Draggable{Rect: r}, ID: id, Color: c, side: SideNone}
}

// Attached reports the side the addon is attached to, if any.
func (a *Addon) Attached() (Side, bool) {
	return a.side, a.side != SideNone
}

// Detach clears any attachment.
func (a *Addon) Detach() {
	a.side = SideNone
}

// Press starts a drag when (x, y) hits the addon. Starting a drag detaches
// the addon even though its position does not change until the next move.
func (a *Addon) Press(x, y float64) bool {
	if !a.Draggable.Press(x, y) {
		return false
	}
	a.side = SideNone
	return true
}

// HandleEvent applies one pointer event. strip is the height of the open
// menu bar (0 when closed); presses at or above it are ignored.
// Returns true if the event started a drag.
func (a *Addon) HandleEvent(ev InputEvent, strip float64) bool {
	switch ev.Type {
	case EventPointerDown:
		if strip > 0 && ev.Y <= strip {
			return false
		}
		if ev.Button != MouseButtonLeft {
			return false
		}
		return a.Press(ev.X, ev.Y)
	case EventPointerUp:
		if ev.Button == MouseButtonLeft {
			a.Release()
		}
	case EventPointerMove:
		a.MoveTo(ev.X, ev.Y)
	}
	return false
}

// Update runs one frame of attachment tracking against body and clamps the
// addon into bounds. Returns true if the addon attached during this call.
//
// Clamping runs after re-anchoring, so an attached addon can be pushed off
// its snap point when the body sits near a screen edge.
func (a *Addon) Update(body, bounds Rect, r Resolver) bool {
	snapped := false
	if a.side == SideNone && !a.dragging {
		if side, target, _ := r.Resolve(body, a.Rect); side != SideNone {
			a.side = side
			a.Rect = a.Rect.MoveTo(target)
			snapped = true
		}
	}
	if a.side != SideNone {
		a.Rect = a.Rect.MoveTo(AttachTarget(body, a.Rect.Width, a.Rect.Height, a.side, r.Offsets))
	}
	a.Rect = a.Rect.Clamp(bounds)
	return snapped
}
