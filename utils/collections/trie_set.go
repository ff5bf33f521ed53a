package collections

import (
	"fmt"
	"unicode/utf8"
)

// Children are keyed by the decoded character. A byte that is not part of a
// valid UTF-8 sequence gets its own negative key, below the terminator, so
// distinct invalid strings stay distinct and round trip unchanged.
const (
	terminator rune = -1
	rawByteKey rune = -2
)

func keysOf(element string) []rune {
	keys := make([]rune, 0, len(element)+1)
	for i := 0; i < len(element); {
		r, size := utf8.DecodeRuneInString(element[i:])
		if r == utf8.RuneError && size == 1 {
			r = rawByteKey - rune(element[i])
		}
		keys = append(keys, r)
		i += size
	}
	return keys
}

func appendKey(b []byte, key rune) []byte {
	if key <= rawByteKey {
		return append(b, byte(rawByteKey-key))
	}
	return utf8.AppendRune(b, key)
}

type trieNode struct {
	children Map[rune, *trieNode]
}

func newTrieNode() *trieNode {
	return &trieNode{
		children: NewLinkedHashMap[rune, *trieNode](),
	}
}

func (n *trieNode) child(r rune) *trieNode {
	c, err := n.children.Get(r)
	if err != nil {
		return nil
	}
	return c
}

// TrieSet is a prefix tree over strings. Children are kept in the order their
// characters were first inserted, which is also the iteration order.
type TrieSet struct {
	root *trieNode
	size int
}

func NewTrieSet() *TrieSet {
	return &TrieSet{
		root: newTrieNode(),
	}
}

func (s *TrieSet) find(element string) *trieNode {
	current := s.root
	for _, r := range keysOf(element) {
		if current = current.child(r); current == nil {
			return nil
		}
	}
	return current
}

func (s *TrieSet) Contains(element string) bool {
	n := s.find(element)
	return n != nil && n.children.Contains(terminator)
}

func (s *TrieSet) Add(element string) (bool, error) {
	current := s.root
	modified := false
	path := append(keysOf(element), terminator)
	for _, r := range path {
		next := current.child(r)
		if next == nil {
			modified = true
			next = newTrieNode()
			_ = current.children.Put(r, next, false)
		}
		current = next
	}
	if modified {
		s.size++
	}
	return modified, nil
}

// Remove only drops the terminator of element; branches left without members
// stay in place and are ignored by lookups.
func (s *TrieSet) Remove(element string) bool {
	n := s.find(element)
	if n == nil {
		return false
	}
	if err := n.children.Delete(terminator); err != nil {
		return false
	}
	s.size--
	return true
}

// HasPrefix reports whether some member starts with prefix.
func (s *TrieSet) HasPrefix(prefix string) bool {
	n := s.find(prefix)
	return n != nil && hasMember(n)
}

func hasMember(n *trieNode) bool {
	for _, r := range n.children.Keys() {
		if r == terminator {
			return true
		}
		if hasMember(n.child(r)) {
			return true
		}
	}
	return false
}

func (s *TrieSet) Size() int {
	return s.size
}

func (s *TrieSet) Clear() {
	s.root = newTrieNode()
	s.size = 0
}

func (s *TrieSet) Entries() []string {
	arr := make([]string, 0, s.size)
	collect(s.root, nil, &arr)
	return arr
}

func collect(n *trieNode, prefix []byte, out *[]string) {
	for _, r := range n.children.Keys() {
		if r == terminator {
			*out = append(*out, string(prefix))
			continue
		}
		collect(n.child(r), appendKey(prefix, r), out)
	}
}

// Iterator walks a snapshot of the members taken at creation time; removals
// through the iterator are applied to the live trie.
func (s *TrieSet) Iterator() Iterator[string] {
	return &trieIterator{
		set:     s,
		members: s.Entries(),
	}
}

func (s *TrieSet) String() string {
	return fmt.Sprint(s.Entries())
}

type trieIterator struct {
	set     *TrieSet
	members []string
	index   int
	guard   removalGuard[string]
}

func (it *trieIterator) HasNext() bool {
	return it.index < len(it.members)
}

func (it *trieIterator) Next() (string, error) {
	if !it.HasNext() {
		return "", ErrNoSuchElement
	}
	v := it.members[it.index]
	it.index++
	it.guard.returned(v)
	return v, nil
}

func (it *trieIterator) Remove() error {
	v, err := it.guard.take()
	if err != nil {
		return err
	}
	if !it.set.Remove(v) {
		return ErrIllegalState
	}
	return nil
}
