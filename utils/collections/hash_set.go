package collections

import "fmt"

type hashSet[R comparable, V any] struct {
	entries  map[R]V
	hashFunc HashSetHashFunc[R, V]
}

type HashSetHashFunc[R comparable, V any] func(V) R

// NewHashSet returns an unbounded set backed by a Go map, keyed by f(v).
// Iteration order is unspecified.
func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  make(map[R]V),
		hashFunc: f,
	}
}

func (s *hashSet[R, V]) Contains(v V) bool {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; ok {
		return true
	}
	return false
}

func (s *hashSet[R, V]) Add(v V) (bool, error) {
	if s.Contains(v) {
		return false, nil
	}
	s.entries[s.hashFunc(v)] = v
	return true, nil
}

func (s *hashSet[R, V]) Remove(v V) bool {
	if !s.Contains(v) {
		return false
	}
	delete(s.entries, s.hashFunc(v))
	return true
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) Clear() {
	s.entries = make(map[R]V)
}

func (s *hashSet[R, V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for _, v := range s.entries {
		arr = append(arr, v)
	}
	return arr
}

func (s *hashSet[R, V]) Iterator() Iterator[V] {
	return &hashSetIterator[R, V]{
		set:     s,
		members: s.Entries(),
	}
}

func (s *hashSet[R, V]) String() string {
	return fmt.Sprint(s.Entries())
}

type hashSetIterator[R comparable, V any] struct {
	set     *hashSet[R, V]
	members []V
	index   int
	guard   removalGuard[V]
}

func (it *hashSetIterator[R, V]) HasNext() bool {
	return it.index < len(it.members)
}

func (it *hashSetIterator[R, V]) Next() (v V, err error) {
	if !it.HasNext() {
		return v, ErrNoSuchElement
	}
	v = it.members[it.index]
	it.index++
	it.guard.returned(v)
	return v, nil
}

func (it *hashSetIterator[R, V]) Remove() error {
	v, err := it.guard.take()
	if err != nil {
		return err
	}
	if !it.set.Remove(v) {
		return ErrIllegalState
	}
	return nil
}
