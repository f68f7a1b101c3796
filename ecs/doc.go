// Package ecs bridges vectorgrid change events into a [Donburi] world.
//
// [NewDonburiSink] returns a vectorgrid.EventSink that publishes every
// VectorEvent as a typed Donburi event and mirrors each vector as an entity
// carrying a [Vector] component, so ECS systems can query the current set:
//
//	sink := ecs.NewDonburiSink(world)
//	ctrl.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
