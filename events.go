package vectorgrid

// VectorEventType identifies a change to the vector set.
type VectorEventType uint8

const (
	EventVectorCreated    VectorEventType = iota // a start node was placed
	EventVectorFinalized                         // the end node was placed
	EventVectorMoved                             // an endpoint of a selected vector was dragged
	EventVectorDeleted                           // a vector and its visuals were removed
	EventVectorDiscarded                         // an unfinished vector was dropped
	EventResultantChanged                        // the resultant was recomputed
)

// String returns the event name.
func (t VectorEventType) String() string {
	switch t {
	case EventVectorCreated:
		return "created"
	case EventVectorFinalized:
		return "finalized"
	case EventVectorMoved:
		return "moved"
	case EventVectorDeleted:
		return "deleted"
	case EventVectorDiscarded:
		return "discarded"
	case EventResultantChanged:
		return "resultant"
	default:
		return "unknown"
	}
}

// VectorEvent carries change data for an EventSink. Start and End are pixel
// centers; End is zero until the vector is finalized. Resultant and
// ResultantVisible are only set for EventResultantChanged.
type VectorEvent struct {
	Type             VectorEventType
	VectorID         uint32
	Start            Vec2
	End              Vec2
	Resultant        Vec2
	ResultantVisible bool
}

// EventSink is the interface for optional integration with an external
// system (an ECS world, a recorder). When set on a Controller, every vector
// change is forwarded to it.
type EventSink interface {
	EmitEvent(event VectorEvent)
}

func vectorEvent(t VectorEventType, v *Vector) VectorEvent {
	ev := VectorEvent{Type: t, VectorID: v.ID}
	if v.Start != nil {
		ev.Start = v.Start.Center()
	}
	if v.End != nil {
		ev.End = v.End.Center()
	}
	return ev
}
