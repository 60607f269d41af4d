package modbot

// Draggable is a rectangle that follows the pointer while held.
// The grab offset captured at press time is preserved for the whole drag.
type Draggable struct {
	Rect     Rect
	dragging bool
	grab     Vec2
}

// NewDraggable returns an idle Draggable covering r.
func NewDraggable(r Rect) *Draggable {
	return &Draggable{Rect: r}
}

// Dragging reports whether a drag is in progress.
func (d *Draggable) Dragging() bool {
	return d.dragging
}

// Press starts a drag if (x, y) lies inside the rectangle.
// Returns true when the drag started.
func (d *Draggable) Press(x, y float64) bool {
	if !d.Rect.Contains(x, y) {
		return false
	}
	d.dragging = true
	d.grab = Vec2{d.Rect.X - x, d.Rect.Y - y}
	return true
}

// Release ends any drag in progress.
func (d *Draggable) Release() {
	d.dragging = false
}

// MoveTo repositions the rectangle under the pointer while dragging.
// Returns true if the rectangle moved.
func (d *Draggable) MoveTo(x, y float64) bool {
	if !d.dragging {
		return false
	}
	d.Rect = d.Rect.MoveTo(Vec2{x, y}.Add(d.grab))
	return true
}
