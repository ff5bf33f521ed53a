package collections

import "golang.org/x/exp/constraints"

type Set[V any] interface {
	Contains(v V) bool
	// Add inserts v if absent and reports whether the set changed.
	// Only fixed capacity sets return a non-nil error.
	Add(v V) (bool, error)
	Remove(v V) bool
	Size() int
	Clear()
	Entries() []V
	Iterator() Iterator[V]
}

// SortedSet is a Set iterated in ascending natural order.
type SortedSet[V constraints.Ordered] interface {
	Set[V]
	First() (V, error)
	Last() (V, error)
	Height() int
	CheckInvariant() bool
}

// Iterator walks a set once. Remove deletes the element returned by the
// latest Next call and may be used at most once per Next.
type Iterator[V any] interface {
	HasNext() bool
	Next() (V, error)
	Remove() error
}

func entriesOf[V any](it Iterator[V], size int) []V {
	arr := make([]V, 0, size)
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		arr = append(arr, v)
	}
	return arr
}
