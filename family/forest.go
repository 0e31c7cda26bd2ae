package family

// Forest is an ordered list of family IDs. Order is priority order.
// A Forest never holds the same ID twice.
type Forest struct {
	ids  []ID
	seen map[ID]struct{}
}

// NewForest creates a forest with the given IDs, skipping duplicates.
func NewForest(ids ...ID) *Forest {
	f := &Forest{}
	for _, id := range ids {
		f.Append(id)
	}
	return f
}

// Append adds id at the end. It reports false if id was already present.
func (f *Forest) Append(id ID) bool {
	if f.seen == nil {
		f.seen = make(map[ID]struct{})
	}
	if _, ok := f.seen[id]; ok {
		return false
	}
	f.seen[id] = struct{}{}
	f.ids = append(f.ids, id)
	return true
}

// Contains reports whether id is in the forest.
func (f *Forest) Contains(id ID) bool {
	if f == nil {
		return false
	}
	_, ok := f.seen[id]
	return ok
}

// IDs returns the IDs in order. The slice must not be modified.
func (f *Forest) IDs() []ID {
	if f == nil {
		return nil
	}
	return f.ids
}

// Len returns the number of IDs.
func (f *Forest) Len() int {
	if f == nil {
		return 0
	}
	return len(f.ids)
}
