package primitives

import (
	"fmt"
	"math/bits"
	"strings"
)

// ItemSet represents a set of rucksack items using bit manipulation.
// Items are the letters 'a'-'z' followed by 'A'-'Z', 52 in total, so the
// set fits in a uint64. The bit position of an item is its priority minus one.
type ItemSet struct {
	bits  uint64
	count int
}

const numItems = 52

// ItemSetOf builds the set of all items in s.
func ItemSetOf(s string) (*ItemSet, error) {
	set := &ItemSet{}
	for i := 0; i < len(s); i++ {
		if err := set.Add(s[i]); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Priority returns the priority of an item: 1-26 for 'a'-'z', 27-52 for 'A'-'Z'.
func Priority(b byte) (int, error) {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 1, nil
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 27, nil
	}
	return 0, fmt.Errorf("item %q does not fit in the rucksack", b)
}

func itemAt(pos uint) byte {
	if pos < 26 {
		return byte('a' + pos)
	}
	return byte('A' + pos - 26)
}

// Add adds an item to the set.
func (s *ItemSet) Add(b byte) error {
	p, err := Priority(b)
	if err != nil {
		return err
	}

	bitPos := uint(p - 1)
	if s.bits&(1<<bitPos) == 0 {
		s.bits |= 1 << bitPos
		s.count++
	}
	return nil
}

// AddAll adds all items from another set to this set.
func (s *ItemSet) AddAll(other *ItemSet) {
	oldBits := s.bits
	s.bits |= other.bits
	if s.bits != oldBits {
		s.count = bits.OnesCount64(s.bits)
	}
}

// Contains checks if an item is in the set.
func (s *ItemSet) Contains(b byte) bool {
	p, err := Priority(b)
	if err != nil {
		return false
	}
	return s.bits&(1<<uint(p-1)) != 0
}

// Count returns the number of items in the set.
func (s *ItemSet) Count() int {
	return s.count
}

// IsEmpty reports whether the set holds no items.
func (s *ItemSet) IsEmpty() bool {
	return s.count == 0
}

// Clear removes all items from the set.
func (s *ItemSet) Clear() {
	s.bits = 0
	s.count = 0
}

// Clone creates a copy of the item set.
func (s *ItemSet) Clone() *ItemSet {
	return &ItemSet{
		bits:  s.bits,
		count: s.count,
	}
}

// Intersect performs an intersection with another set.
func (s *ItemSet) Intersect(other *ItemSet) {
	oldBits := s.bits
	s.bits &= other.bits
	if s.bits != oldBits {
		s.count = bits.OnesCount64(s.bits)
	}
}

// First returns the item with the lowest priority, or false if the set is empty.
func (s *ItemSet) First() (byte, bool) {
	if s.bits == 0 {
		return 0, false
	}
	return itemAt(uint(bits.TrailingZeros64(s.bits))), true
}

func (s *ItemSet) String() string {
	if s.count == 0 {
		return "items [] (0/52)"
	}

	var items []string
	for i := range uint(numItems) {
		if s.bits&(1<<i) != 0 {
			items = append(items, fmt.Sprintf("'%c'", itemAt(i)))
		}
	}
	return fmt.Sprintf("items [%s] (%d/%d)", strings.Join(items, ", "), s.count, numItems)
}
