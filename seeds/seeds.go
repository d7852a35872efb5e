// Package seeds provides Set, the seed-set container shared by every
// diffusion model and search strategy.
//
// Set is an ordered set of node IDs: membership is unique, insertion order
// is preserved, and removal keeps the relative order of the remaining IDs.
// Adding an ID that is already present is a no-op, so callers never need to
// guard against duplicates themselves.
//
// Search strategies treat sets as values: Clone, With and Without return
// fresh sets and never alias the receiver.
package seeds

import (
	"strconv"
	"strings"
)

// Set is an insertion-ordered set of node IDs. The zero value is an empty
// set ready to use.
type Set struct {
	ids []int
	pos map[int]int // id -> index in ids
}

// New returns a set holding ids in first-occurrence order.
func New(ids ...int) *Set {
	s := &Set{
		ids: make([]int, 0, len(ids)),
		pos: make(map[int]int, len(ids)),
	}
	for _, id := range ids {
		s.Add(id)
	}

	return s
}

// Add appends id and reports whether it was absent.
// Complexity: O(1) amortized.
func (s *Set) Add(id int) bool {
	if s.pos == nil {
		s.pos = make(map[int]int)
	}
	if _, ok := s.pos[id]; ok {
		return false
	}
	s.pos[id] = len(s.ids)
	s.ids = append(s.ids, id)

	return true
}

// Remove deletes id and reports whether it was present.
// Complexity: O(n) to close the gap.
func (s *Set) Remove(id int) bool {
	i, ok := s.pos[id]
	if !ok {
		return false
	}
	copy(s.ids[i:], s.ids[i+1:])
	s.ids = s.ids[:len(s.ids)-1]
	delete(s.pos, id)
	for j := i; j < len(s.ids); j++ {
		s.pos[s.ids[j]] = j
	}

	return true
}

// Contains reports membership of id.
func (s *Set) Contains(id int) bool {
	_, ok := s.pos[id]
	return ok
}

// Len returns the number of IDs. A nil set has none.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.ids)
}

// At returns the i-th ID in insertion order. It panics if i is out of range.
func (s *Set) At(i int) int { return s.ids[i] }

// IDs returns a copy of the IDs in insertion order.
func (s *Set) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)

	return out
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := &Set{
		ids: make([]int, len(s.ids)),
		pos: make(map[int]int, len(s.ids)),
	}
	copy(c.ids, s.ids)
	for id, i := range s.pos {
		c.pos[id] = i
	}

	return c
}

// With returns a copy of s with id appended.
func (s *Set) With(id int) *Set {
	c := s.Clone()
	c.Add(id)

	return c
}

// Without returns a copy of s with id removed.
func (s *Set) Without(id int) *Set {
	c := s.Clone()
	c.Remove(id)

	return c
}

// Equal reports whether s and o hold the same IDs in the same order.
// A nil set equals any empty set.
func (s *Set) Equal(o *Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	if s.Len() == 0 {
		return true
	}
	for i, id := range s.ids {
		if o.ids[i] != id {
			return false
		}
	}

	return true
}

// String renders the set as "{a, b, c}".
func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s.ids {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(id))
	}
	b.WriteByte('}')

	return b.String()
}
