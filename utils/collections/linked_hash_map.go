package collections

type linkedEntry[K comparable, V any] struct {
	key   K
	value V
	prev  *linkedEntry[K, V]
	next  *linkedEntry[K, V]
}

// linkedHashMap reports keys and values in the order keys were first put.
type linkedHashMap[K comparable, V any] struct {
	entries map[K]*linkedEntry[K, V]
	head    *linkedEntry[K, V]
	tail    *linkedEntry[K, V]
}

func NewLinkedHashMap[K comparable, V any]() Map[K, V] {
	return &linkedHashMap[K, V]{
		entries: make(map[K]*linkedEntry[K, V]),
	}
}

func (m *linkedHashMap[K, V]) Contains(k K) bool {
	if _, ok := m.entries[k]; ok {
		return true
	}
	return false
}

func (m *linkedHashMap[K, V]) Put(k K, v V, forced bool) error {
	if e, ok := m.entries[k]; ok {
		if !forced {
			return ErrValueExisted
		}
		e.value = v
		return nil
	}
	e := &linkedEntry[K, V]{key: k, value: v, prev: m.tail}
	if m.tail == nil {
		m.head = e
	} else {
		m.tail.next = e
	}
	m.tail = e
	m.entries[k] = e
	return nil
}

func (m *linkedHashMap[K, V]) Get(k K) (v V, err error) {
	e, ok := m.entries[k]
	if !ok {
		return v, ErrValueNotExisted
	}
	return e.value, nil
}

func (m *linkedHashMap[K, V]) Delete(k K) error {
	e, ok := m.entries[k]
	if !ok {
		return ErrValueNotExisted
	}
	if e.prev == nil {
		m.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		m.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	delete(m.entries, k)
	return nil
}

func (m *linkedHashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *linkedHashMap[K, V]) Keys() []K {
	arr := make([]K, 0, m.Size())
	for e := m.head; e != nil; e = e.next {
		arr = append(arr, e.key)
	}
	return arr
}

func (m *linkedHashMap[K, V]) Values() []V {
	arr := make([]V, 0, m.Size())
	for e := m.head; e != nil; e = e.next {
		arr = append(arr, e.value)
	}
	return arr
}
