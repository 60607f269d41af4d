// Package modbot is a small drag-and-snap editor built on [Ebitengine].
//
// A [Scene] owns one draggable main body and an ordered collection of
// [Addon] rectangles. An addon dropped near one of the body's four
// attachment points snaps onto it and then follows the body until it is
// dragged off again. A menu bar, toggled with Ctrl+M by default, adds and
// removes addons.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := modbot.NewScene(modbot.RobotSceneConfig())
//	modbot.Run(scene, modbot.RunConfig{
//		Title: "Modular Robot Simulation", Width: 1000, Height: 600,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly. Without an [InputSource],
// Update only consumes injected events:
//
//	type Game struct{ scene *modbot.Scene }
//
//	func (g *Game) Update() error              { return g.scene.Update() }
//	func (g *Game) Draw(s *ebiten.Image)       { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return 1000, 600 }
//
// # Attachment
//
// [AttachTarget] computes where an addon sits for a given [Side]. The
// [Resolver] picks the nearest side and accepts it when the distance is
// strictly below its threshold. Ties go to the earlier side in [Sides].
// Per-side nudges live in an [OffsetTable]. They are tuned for the
// default layout rather than derived from a rule.
//
// # Scripting
//
// [Scene.InjectClick], [Scene.InjectDrag] and friends queue synthetic input
// that is consumed one event per frame. [LoadTestScript] builds a
// [TestRunner] that sequences clicks, drags, menu actions and screenshots
// from JSON.
//
// Scene state changes can be forwarded to an ECS through [EntityStore]. The
// Donburi adapter lives in modbot/ecs.
//
// [Ebitengine]: https://ebitengine.org
package modbot
