// Package ecs provides ECS adapters for modbot's scene events.
//
// The primary adapter is [NewDonburiStore], which bridges modbot scene events
// (addon added, removed, attached, detached, menu toggles and body moves)
// into a [Donburi] world as typed events. Subscribe to [SceneEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
