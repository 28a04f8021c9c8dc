// Package ecs bridges dock events into a [Donburi] world.
//
// [NewDonburiSink] publishes every dock event (hover, launch, drag, reorder,
// context menu, show, hide) as a typed Donburi event. Subscribe to
// [DockEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	d.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
