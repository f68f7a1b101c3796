package vectorgrid

// VectorStore owns the ordered vector list and the current selection.
type VectorStore struct {
	surface  DrawSurface
	vectors  []*Vector
	selected *Vector
}

// NewVectorStore creates an empty store whose removals release visuals on
// surface.
func NewVectorStore(surface DrawSurface) *VectorStore {
	return &VectorStore{surface: surface}
}

// Append adds v at the end of the list.
func (s *VectorStore) Append(v *Vector) {
	s.vectors = append(s.vectors, v)
}

// List returns the vectors in creation order. The returned slice MUST NOT be
// mutated by the caller.
func (s *VectorStore) List() []*Vector {
	return s.vectors
}

// Len returns the number of vectors.
func (s *VectorStore) Len() int {
	return len(s.vectors)
}

// Last returns the most recently appended vector, or nil.
func (s *VectorStore) Last() *Vector {
	if len(s.vectors) == 0 {
		return nil
	}
	return s.vectors[len(s.vectors)-1]
}

// Selected returns the selected vector, or nil.
func (s *VectorStore) Selected() *Vector {
	return s.selected
}

// SetSelected selects v. Passing nil clears the selection.
func (s *VectorStore) SetSelected(v *Vector) {
	s.selected = v
}

// RemoveSelected releases the selected vector's visuals, drops it from the
// list and clears the selection. It returns the removed vector, or nil when
// nothing was selected.
func (s *VectorStore) RemoveSelected() *Vector {
	v := s.selected
	if v == nil {
		return nil
	}
	s.remove(v)
	s.selected = nil
	return v
}

// remove releases v and drops it from the list. Selection is left alone.
func (s *VectorStore) remove(v *Vector) {
	v.release(s.surface)
	for i, o := range s.vectors {
		if o == v {
			copy(s.vectors[i:], s.vectors[i+1:])
			s.vectors[len(s.vectors)-1] = nil
			s.vectors = s.vectors[:len(s.vectors)-1]
			return
		}
	}
}
