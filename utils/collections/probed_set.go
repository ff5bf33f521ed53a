package collections

import (
	"fmt"

	"github.com/tuannh982/setlab/utils/math"
)

const (
	MinTableBits = 2
	MaxTableBits = 31
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

type slot[V comparable] struct {
	state slotState
	value V
}

// ProbedSet is an open addressing hash table of fixed capacity 2^bits using
// linear probing. Removed elements leave a tombstone so that probe sequences
// running through their slot stay intact; the table never grows.
type ProbedSet[V comparable] struct {
	mask     uint32
	storage  []slot[V]
	size     int
	hashFunc HashFunc[V]
}

func NewProbedSet[V comparable](bits int, f HashFunc[V]) (*ProbedSet[V], error) {
	if !math.InRange(bits, MinTableBits, MaxTableBits) {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidBits, bits, MinTableBits, MaxTableBits)
	}
	return &ProbedSet[V]{
		mask:     math.LowBitsMask(uint32(bits)),
		storage:  make([]slot[V], math.Pow2(bits)),
		hashFunc: f,
	}, nil
}

// sameElement is == except that NaN equals NaN.
func sameElement[V comparable](a, b V) bool {
	return a == b || (a != a && b != b)
}

func (s *ProbedSet[V]) startingIndex(v V) int {
	return int(s.hashFunc(v) & s.mask)
}

func (s *ProbedSet[V]) next(index int) int {
	return (index + 1) & int(s.mask)
}

// locate returns the slot holding v, or -1. Probing stops at the first empty
// slot, or after visiting every slot once.
func (s *ProbedSet[V]) locate(v V) int {
	start := s.startingIndex(v)
	index := start
	for s.storage[index].state != slotEmpty {
		if s.storage[index].state == slotOccupied && sameElement(s.storage[index].value, v) {
			return index
		}
		index = s.next(index)
		if index == start {
			break
		}
	}
	return -1
}

func (s *ProbedSet[V]) Contains(v V) bool {
	return s.locate(v) >= 0
}

// Add writes v into the first tombstone or empty slot of its probe sequence.
// The slots after a tombstone are still probed for an equal element, so a
// value is never stored twice.
func (s *ProbedSet[V]) Add(v V) (bool, error) {
	start := s.startingIndex(v)
	index := start
	free := -1
	for {
		current := &s.storage[index]
		if current.state == slotEmpty {
			if free < 0 {
				free = index
			}
			break
		}
		if current.state == slotOccupied && sameElement(current.value, v) {
			return false, nil
		}
		if current.state == slotTombstone && free < 0 {
			free = index
		}
		index = s.next(index)
		if index == start {
			break
		}
	}
	if free < 0 {
		return false, ErrCapacityExceeded
	}
	s.storage[free] = slot[V]{state: slotOccupied, value: v}
	s.size++
	return true, nil
}

func (s *ProbedSet[V]) Remove(v V) bool {
	index := s.locate(v)
	if index < 0 {
		return false
	}
	var zero V
	s.storage[index] = slot[V]{state: slotTombstone, value: zero}
	s.size--
	return true
}

func (s *ProbedSet[V]) Size() int {
	return s.size
}

func (s *ProbedSet[V]) Capacity() int {
	return len(s.storage)
}

func (s *ProbedSet[V]) Clear() {
	for i := range s.storage {
		s.storage[i] = slot[V]{}
	}
	s.size = 0
}

func (s *ProbedSet[V]) Entries() []V {
	return entriesOf[V](s.Iterator(), s.size)
}

// Iterator scans occupied slots in storage order.
func (s *ProbedSet[V]) Iterator() Iterator[V] {
	return &probedIterator[V]{set: s}
}

func (s *ProbedSet[V]) String() string {
	return fmt.Sprint(s.Entries())
}

type probedIterator[V comparable] struct {
	set      *ProbedSet[V]
	index    int
	returned int
	guard    removalGuard[V]
}

func (it *probedIterator[V]) seek() int {
	for i := it.index; i < len(it.set.storage); i++ {
		if it.set.storage[i].state == slotOccupied {
			return i
		}
	}
	return -1
}

func (it *probedIterator[V]) HasNext() bool {
	return it.seek() >= 0
}

func (it *probedIterator[V]) Next() (v V, err error) {
	i := it.seek()
	if i < 0 {
		return v, ErrNoSuchElement
	}
	it.index = i + 1
	it.returned = i
	v = it.set.storage[i].value
	it.guard.returned(v)
	return v, nil
}

func (it *probedIterator[V]) Remove() error {
	v, err := it.guard.take()
	if err != nil {
		return err
	}
	if it.set.storage[it.returned].state == slotOccupied && sameElement(it.set.storage[it.returned].value, v) {
		it.set.storage[it.returned] = slot[V]{state: slotTombstone}
		it.set.size--
		return nil
	}
	if !it.set.Remove(v) {
		return ErrIllegalState
	}
	return nil
}
