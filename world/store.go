package world

// Store is the authoritative block container: a sparse map from cell to
// material. A cell holds at most one block and the latest Add wins.
// The zero value is not usable; call NewStore.
type Store struct {
	blocks map[Coordinate]BlockType
	dirty  bool
}

func NewStore() *Store {
	return &Store{blocks: make(map[Coordinate]BlockType), dirty: true}
}

// Add puts a block of the given material at c, replacing whatever was
// there. Adding Air clears the cell.
func (s *Store) Add(c Coordinate, t BlockType) {
	if t == Air {
		delete(s.blocks, c)
	} else {
		s.blocks[c] = t
	}
	s.dirty = true
}

// Remove clears the cell at c and reports whether a block was there.
// Removing an empty cell changes nothing.
func (s *Store) Remove(c Coordinate) bool {
	if _, ok := s.blocks[c]; !ok {
		return false
	}
	delete(s.blocks, c)
	s.dirty = true
	return true
}

// Get returns the material at c. Empty cells read as Air with ok false.
func (s *Store) Get(c Coordinate) (BlockType, bool) {
	t, ok := s.blocks[c]
	return t, ok
}

// Solid reports whether c holds a block.
func (s *Store) Solid(c Coordinate) bool {
	_, ok := s.blocks[c]
	return ok
}

// Len returns the number of stored blocks.
func (s *Store) Len() int {
	return len(s.blocks)
}

// Range calls fn for every stored block. Iteration order is not
// specified and callers must not depend on it.
func (s *Store) Range(fn func(Coordinate, BlockType)) {
	for c, t := range s.blocks {
		fn(c, t)
	}
}

// Dirty reports whether the contents changed since the last MarkClean.
// The renderer uses this to skip mesh rebuilds on quiet ticks.
func (s *Store) Dirty() bool {
	return s.dirty
}

func (s *Store) MarkClean() {
	s.dirty = false
}
