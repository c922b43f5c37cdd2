package dlist

import "fmt"

type primRecord interface {
	header() *Header
}

// store holds the primitives of one kind. Deleted slots are zeroed, flagged
// and pushed onto a LIFO free stack, so the most recently freed slot is the
// next one handed out. Slots never move.
type store[T any, P interface {
	*T
	primRecord
}] struct {
	kind  Kind
	items []T
	free  []int
	limit int
}

// slotStore is the kind-independent view of a store.
type slotStore interface {
	slots() int
	live() int
	header(id int) *Header
	remove(id int) bool
	reset()
}

func (s *store[T, P]) add(v T) (int, error) {
	if s.limit > 0 && s.live() >= s.limit {
		return -1, fmt.Errorf("%w: %d %ss", ErrCapacity, s.limit, s.kind)
	}
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.items[id] = v
		return id, nil
	}
	s.items = append(s.items, v)
	return len(s.items) - 1, nil
}

// at returns the live primitive in slot id, or nil.
func (s *store[T, P]) at(id int) P {
	if id < 0 || id >= len(s.items) {
		return nil
	}
	p := P(&s.items[id])
	if p.header().Deleted {
		return nil
	}
	return p
}

func (s *store[T, P]) slots() int {
	return len(s.items)
}

func (s *store[T, P]) live() int {
	return len(s.items) - len(s.free)
}

func (s *store[T, P]) header(id int) *Header {
	if id < 0 || id >= len(s.items) {
		return nil
	}
	return P(&s.items[id]).header()
}

// remove releases the primitive's geometry and frees its slot. It reports
// false for slots that are out of range or already free.
func (s *store[T, P]) remove(id int) bool {
	h := s.header(id)
	if h == nil || h.Deleted {
		return false
	}
	var zero T
	s.items[id] = zero
	h = P(&s.items[id]).header()
	h.Deleted = true
	h.Frame = -1
	h.Selectable = -1
	h.Border = -1
	h.Surface = -1
	s.free = append(s.free, id)
	return true
}

func (s *store[T, P]) reset() {
	s.items = nil
	s.free = nil
}

// all yields every live primitive with its slot id.
func (s *store[T, P]) all(yield func(int, P) bool) {
	for id := range s.items {
		p := P(&s.items[id])
		if p.header().Deleted {
			continue
		}
		if !yield(id, p) {
			return
		}
	}
}
