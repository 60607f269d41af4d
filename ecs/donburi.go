// Package ecs provides ECS adapters for modbot.
package ecs

import (
	"github.com/phanxgames/modbot"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for modbot scene events.
var SceneEventType = events.NewEventType[modbot.SceneEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Scene events are published to SceneEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) modbot.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event modbot.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
