package vectorgrid

// ItemKind distinguishes the primitives held by a MemorySurface.
type ItemKind uint8

const (
	ItemNode      ItemKind = iota + 1 // filled endpoint circle
	ItemLine                          // straight segment, possibly dashed
	ItemArrowhead                     // two-segment chevron
	ItemText                          // text centered on its position
)

// String returns the kind name.
func (k ItemKind) String() string {
	switch k {
	case ItemNode:
		return "node"
	case ItemLine:
		return "line"
	case ItemArrowhead:
		return "arrowhead"
	case ItemText:
		return "text"
	default:
		return "unknown"
	}
}

// Item is one retained primitive.
//
// Points holds the geometry: the center for nodes, both ends for lines, and
// tip, left barb, right barb for arrowheads. Text items keep their anchor in
// Points[0].
type Item struct {
	Handle    Handle
	Kind      ItemKind
	Points    []Vec2
	Color     Color
	LineStyle LineStyle
	Text      string
	TextStyle TextStyle
}

// MemorySurface is a DrawSurface that only records what was drawn. It backs
// the on-screen canvas and is used directly by headless tests.
type MemorySurface struct {
	items  map[Handle]*Item
	order  []Handle // creation order = paint order
	nextID Handle
}

// NewMemorySurface creates an empty surface.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{items: make(map[Handle]*Item)}
}

func (s *MemorySurface) add(it *Item) Handle {
	s.nextID++
	it.Handle = s.nextID
	s.items[it.Handle] = it
	s.order = append(s.order, it.Handle)
	return it.Handle
}

func (s *MemorySurface) lookup(h Handle, kind ItemKind) *Item {
	it, ok := s.items[h]
	if !ok || it.Kind != kind {
		return nil
	}
	return it
}

// CreateNode implements DrawSurface.
func (s *MemorySurface) CreateNode(x, y float64, c Color) Handle {
	return s.add(&Item{Kind: ItemNode, Points: []Vec2{{x, y}}, Color: c})
}

// MoveNode implements DrawSurface.
func (s *MemorySurface) MoveNode(h Handle, x, y float64) {
	if it := s.lookup(h, ItemNode); it != nil {
		it.Points[0] = Vec2{x, y}
	}
}

// NodeBounds implements DrawSurface.
func (s *MemorySurface) NodeBounds(h Handle) (Rect, bool) {
	it := s.lookup(h, ItemNode)
	if it == nil {
		return Rect{}, false
	}
	c := it.Points[0]
	return Rect{X: c.X - NodeRadius, Y: c.Y - NodeRadius, Width: 2 * NodeRadius, Height: 2 * NodeRadius}, true
}

// CreateLine implements DrawSurface.
func (s *MemorySurface) CreateLine(x1, y1, x2, y2 float64, style LineStyle) Handle {
	return s.add(&Item{Kind: ItemLine, Points: []Vec2{{x1, y1}, {x2, y2}}, LineStyle: style})
}

// SetLineCoords implements DrawSurface.
func (s *MemorySurface) SetLineCoords(h Handle, x1, y1, x2, y2 float64) {
	if it := s.lookup(h, ItemLine); it != nil {
		it.Points[0] = Vec2{x1, y1}
		it.Points[1] = Vec2{x2, y2}
	}
}

// CreateArrowhead implements DrawSurface.
func (s *MemorySurface) CreateArrowhead(x1, y1, x2, y2 float64, style LineStyle) Handle {
	pts := Arrowhead(x1, y1, x2, y2, ArrowLength, ArrowSpread)
	return s.add(&Item{Kind: ItemArrowhead, Points: pts[:], LineStyle: style})
}

// CreateText implements DrawSurface.
func (s *MemorySurface) CreateText(x, y float64, text string, style TextStyle) Handle {
	return s.add(&Item{Kind: ItemText, Points: []Vec2{{x, y}}, Text: text, TextStyle: style})
}

// SetTextPosition implements DrawSurface.
func (s *MemorySurface) SetTextPosition(h Handle, x, y float64) {
	if it := s.lookup(h, ItemText); it != nil {
		it.Points[0] = Vec2{x, y}
	}
}

// SetTextContent implements DrawSurface.
func (s *MemorySurface) SetTextContent(h Handle, text string) {
	if it := s.lookup(h, ItemText); it != nil {
		it.Text = text
	}
}

// Destroy implements DrawSurface.
func (s *MemorySurface) Destroy(h Handle) {
	if _, ok := s.items[h]; !ok {
		return
	}
	delete(s.items, h)
	for i, o := range s.order {
		if o == h {
			copy(s.order[i:], s.order[i+1:])
			s.order = s.order[:len(s.order)-1]
			break
		}
	}
}

// Exists reports whether h is a live item.
func (s *MemorySurface) Exists(h Handle) bool {
	_, ok := s.items[h]
	return ok
}

// Item returns the live item for h, or nil.
func (s *MemorySurface) Item(h Handle) *Item {
	return s.items[h]
}

// Len returns the number of live items.
func (s *MemorySurface) Len() int {
	return len(s.items)
}

// Items calls fn for every live item in paint order. The item must not be
// retained or mutated.
func (s *MemorySurface) Items(fn func(*Item)) {
	for _, h := range s.order {
		fn(s.items[h])
	}
}

// CountKind returns the number of live items of the given kind.
func (s *MemorySurface) CountKind(kind ItemKind) int {
	n := 0
	for _, it := range s.items {
		if it.Kind == kind {
			n++
		}
	}
	return n
}
