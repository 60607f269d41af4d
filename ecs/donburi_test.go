package ecs

import (
	"testing"

	"github.com/phanxgames/modbot"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiStore(world) == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []modbot.SceneEvent
	SceneEventType.Subscribe(world, func(w donburi.World, e modbot.SceneEvent) {
		received = append(received, e)
	})

	store.EmitEvent(modbot.SceneEvent{Type: modbot.AddonAttached, AddonID: 7, Side: modbot.SideTopRight, X: 570, Y: 130})
	store.EmitEvent(modbot.SceneEvent{Type: modbot.MenuToggled, Side: modbot.SideNone, Open: true})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	SceneEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != modbot.AddonAttached || e.AddonID != 7 || e.Side != modbot.SideTopRight {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != modbot.MenuToggled || !e.Open {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_SceneWiring(t *testing.T) {
	world := donburi.NewWorld()
	scene := modbot.NewScene(modbot.RobotSceneConfig())
	scene.SetEntityStore(NewDonburiStore(world))

	var added, removed int
	SceneEventType.Subscribe(world, func(w donburi.World, e modbot.SceneEvent) {
		switch e.Type {
		case modbot.AddonAdded:
			added++
		case modbot.AddonRemoved:
			removed++
		}
	})

	scene.AddAddon()
	scene.DeleteAddon()
	scene.DeleteAddon()
	events.ProcessAllEvents(world)

	if added != 1 || removed != 2 {
		t.Errorf("expected 1 added and 2 removed, got %d and %d", added, removed)
	}
}
