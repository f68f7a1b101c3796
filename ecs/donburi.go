package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/vectorgrid"
)

// VectorEventType is the Donburi event type for vectorgrid change events.
// Subscribe to it in ECS systems to receive creations, moves, deletions and
// resultant updates.
var VectorEventType = events.NewEventType[vectorgrid.VectorEvent]()

// Vector mirrors one vector of the controller's store.
type Vector struct {
	ID        uint32
	Start     vectorgrid.Vec2
	End       vectorgrid.Vec2
	Finalized bool
}

// VectorComponent is attached to every mirrored vector entity.
var VectorComponent = donburi.NewComponentType[Vector]()

// vectorQuery matches all mirrored vector entities.
var vectorQuery = donburi.NewQuery(filter.Contains(VectorComponent))

type donburiSink struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to VectorEventType and consumed with events.Subscribe and
// ProcessEvents; vector entities are created, updated and removed
// immediately.
func NewDonburiSink(world donburi.World) vectorgrid.EventSink {
	return &donburiSink{world: world, entities: make(map[uint32]donburi.Entity)}
}

func (s *donburiSink) EmitEvent(event vectorgrid.VectorEvent) {
	switch event.Type {
	case vectorgrid.EventVectorCreated:
		e := s.world.Create(VectorComponent)
		VectorComponent.SetValue(s.world.Entry(e), Vector{ID: event.VectorID, Start: event.Start})
		s.entities[event.VectorID] = e
	case vectorgrid.EventVectorFinalized, vectorgrid.EventVectorMoved:
		if entry := s.entry(event.VectorID); entry != nil {
			VectorComponent.SetValue(entry, Vector{
				ID:        event.VectorID,
				Start:     event.Start,
				End:       event.End,
				Finalized: true,
			})
		}
	case vectorgrid.EventVectorDeleted, vectorgrid.EventVectorDiscarded:
		if e, ok := s.entities[event.VectorID]; ok {
			if s.world.Valid(e) {
				s.world.Remove(e)
			}
			delete(s.entities, event.VectorID)
		}
	}
	VectorEventType.Publish(s.world, event)
}

func (s *donburiSink) entry(id uint32) *donburi.Entry {
	e, ok := s.entities[id]
	if !ok || !s.world.Valid(e) {
		return nil
	}
	return s.world.Entry(e)
}

// Vectors returns the mirrored vectors currently in world, in no particular
// order.
func Vectors(world donburi.World) []Vector {
	var out []Vector
	vectorQuery.Each(world, func(entry *donburi.Entry) {
		out = append(out, VectorComponent.GetValue(entry))
	})
	return out
}
