package modbot

// SceneEventType identifies a change in the robot editor's state.
type SceneEventType uint8

const (
	AddonAdded    SceneEventType = iota // an addon was appended
	AddonRemoved                        // the newest addon was deleted
	AddonAttached                       // an addon snapped onto the body
	AddonDetached                       // a drag pulled an addon off the body
	MenuToggled                         // the menu opened or closed
	BodyMoved                           // a drag moved the main body
)

var sceneEventNames = [...]string{
	AddonAdded:    "addon_added",
	AddonRemoved:  "addon_removed",
	AddonAttached: "addon_attached",
	AddonDetached: "addon_detached",
	MenuToggled:   "menu_toggled",
	BodyMoved:     "body_moved",
}

func (t SceneEventType) String() string {
	if int(t) < len(sceneEventNames) {
		return sceneEventNames[t]
	}
	return "unknown"
}

// SceneEvent carries state-change data for an EntityStore.
type SceneEvent struct {
	Type    SceneEventType
	AddonID uint32 // zero for body and menu events
	Side    Side
	X, Y    float64
	Open    bool // valid for MenuToggled
}

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, state-change events are forwarded to it.
type EntityStore interface {
	EmitEvent(event SceneEvent)
}

// emit forwards ev to the store, if any, and logs it at debug level.
func (s *Scene) emit(ev SceneEvent) {
	s.log.Debug().
		Str("event", ev.Type.String()).
		Uint32("addon", ev.AddonID).
		Str("side", ev.Side.String()).
		Float64("x", ev.X).
		Float64("y", ev.Y).
		Msg("scene event")
	if s.store != nil {
		s.store.EmitEvent(ev)
	}
}
