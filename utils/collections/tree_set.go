package collections

import (
	"cmp"
	"fmt"

	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

type treeNode[V constraints.Ordered] struct {
	value V
	left  *treeNode[V]
	right *treeNode[V]
}

func (n *treeNode[V]) min() V {
	for n.left != nil {
		n = n.left
	}
	return n.value
}

// TreeSet is an unbalanced binary search tree ordered by the natural order
// of its elements. NaN is ordered before every other float and equals itself.
type TreeSet[V constraints.Ordered] struct {
	root *treeNode[V]
	size int
}

func NewTreeSet[V constraints.Ordered]() *TreeSet[V] {
	return &TreeSet[V]{}
}

// closest returns the node holding v, or the last node visited while
// descending towards the place v would hang from.
func (s *TreeSet[V]) closest(v V) *treeNode[V] {
	current := s.root
	for current != nil {
		switch c := cmp.Compare(v, current.value); {
		case c == 0:
			return current
		case c < 0:
			if current.left == nil {
				return current
			}
			current = current.left
		default:
			if current.right == nil {
				return current
			}
			current = current.right
		}
	}
	return nil
}

func (s *TreeSet[V]) Contains(v V) bool {
	n := s.closest(v)
	return n != nil && cmp.Compare(n.value, v) == 0
}

func (s *TreeSet[V]) Add(v V) (bool, error) {
	n := s.closest(v)
	leaf := &treeNode[V]{value: v}
	switch {
	case n == nil:
		s.root = leaf
	case cmp.Compare(v, n.value) == 0:
		return false, nil
	case cmp.Less(v, n.value):
		n.left = leaf
	default:
		n.right = leaf
	}
	s.size++
	return true, nil
}

func (s *TreeSet[V]) Remove(v V) bool {
	if !s.Contains(v) {
		return false
	}
	var parent *treeNode[V]
	current := s.root
	left := true
	for cmp.Compare(current.value, v) != 0 {
		parent = current
		if cmp.Less(v, current.value) {
			current = current.left
			left = true
		} else {
			current = current.right
			left = false
		}
	}
	var replacement *treeNode[V]
	switch {
	case current.left == nil && current.right == nil:
		s.size--
	case current.left == nil:
		replacement = current.right
		s.size--
	case current.right == nil:
		replacement = current.left
		s.size--
	default:
		// the successor lives in the right subtree, below current, so removing
		// it leaves the parent link of current untouched
		successor := current.right.min()
		s.Remove(successor)
		replacement = &treeNode[V]{
			value: successor,
			left:  current.left,
			right: current.right,
		}
	}
	switch {
	case parent == nil:
		s.root = replacement
	case left:
		parent.left = replacement
	default:
		parent.right = replacement
	}
	return true
}

func (s *TreeSet[V]) Size() int {
	return s.size
}

func (s *TreeSet[V]) Clear() {
	s.root = nil
	s.size = 0
}

func (s *TreeSet[V]) First() (v V, err error) {
	if s.root == nil {
		return v, ErrNoSuchElement
	}
	return s.root.min(), nil
}

func (s *TreeSet[V]) Last() (v V, err error) {
	if s.root == nil {
		return v, ErrNoSuchElement
	}
	current := s.root
	for current.right != nil {
		current = current.right
	}
	return current.value, nil
}

// successor returns the smallest element strictly greater than v.
func (s *TreeSet[V]) successor(v V) (ret V, found bool) {
	current := s.root
	for current != nil {
		if cmp.Less(v, current.value) {
			ret, found = current.value, true
			current = current.left
		} else {
			current = current.right
		}
	}
	return ret, found
}

// Height counts the levels of the tree, 0 when empty.
func (s *TreeSet[V]) Height() int {
	if s.root == nil {
		return 0
	}
	height := 0
	level := NewQueue[*treeNode[V]]()
	level.Push(s.root)
	for !level.IsEmpty() {
		height++
		for n := level.Size(); n > 0; n-- {
			node := level.Pop()
			if node.left != nil {
				level.Push(node.left)
			}
			if node.right != nil {
				level.Push(node.right)
			}
		}
	}
	return height
}

type boundedNode[V constraints.Ordered] struct {
	node  *treeNode[V]
	lower *V
	upper *V
}

// CheckInvariant verifies that every node is strictly greater than all of its
// left descendants and strictly less than all of its right descendants.
func (s *TreeSet[V]) CheckInvariant() bool {
	if s.root == nil {
		return s.size == 0
	}
	count := 0
	pending := NewStack[boundedNode[V]]()
	pending.Push(boundedNode[V]{node: s.root})
	for !pending.IsEmpty() {
		b := pending.Pop()
		count++
		if b.lower != nil && cmp.Compare(b.node.value, *b.lower) <= 0 {
			return false
		}
		if b.upper != nil && cmp.Compare(b.node.value, *b.upper) >= 0 {
			return false
		}
		value := b.node.value
		if b.node.right != nil {
			pending.Push(boundedNode[V]{node: b.node.right, lower: &value, upper: b.upper})
		}
		if b.node.left != nil {
			pending.Push(boundedNode[V]{node: b.node.left, lower: b.lower, upper: &value})
		}
	}
	return count == s.size
}

func (s *TreeSet[V]) Entries() []V {
	return entriesOf[V](s.Iterator(), s.size)
}

func (s *TreeSet[V]) Iterator() Iterator[V] {
	return &treeIterator[V]{set: s}
}

// Render draws the shape of the tree, left child first.
func (s *TreeSet[V]) Render() string {
	if s.root == nil {
		return treeprint.NewWithRoot("<empty>").String()
	}
	tree := treeprint.NewWithRoot(fmt.Sprint(s.root.value))
	renderChildren(tree, s.root)
	return tree.String()
}

func renderChildren[V constraints.Ordered](tree treeprint.Tree, n *treeNode[V]) {
	for _, child := range []struct {
		side string
		node *treeNode[V]
	}{{"L", n.left}, {"R", n.right}} {
		if child.node == nil {
			continue
		}
		label := fmt.Sprintf("%s: %v", child.side, child.node.value)
		if child.node.left == nil && child.node.right == nil {
			tree.AddNode(label)
		} else {
			renderChildren(tree.AddBranch(label), child.node)
		}
	}
}

func (s *TreeSet[V]) String() string {
	return fmt.Sprint(s.Entries())
}

// treeIterator remembers values rather than nodes: two-child removal
// replaces nodes, but never reorders the remaining values.
type treeIterator[V constraints.Ordered] struct {
	set     *TreeSet[V]
	started bool
	last    V
	guard   removalGuard[V]
}

func (it *treeIterator[V]) peek() (V, bool) {
	if !it.started {
		if it.set.root == nil {
			var zero V
			return zero, false
		}
		return it.set.root.min(), true
	}
	return it.set.successor(it.last)
}

func (it *treeIterator[V]) HasNext() bool {
	_, ok := it.peek()
	return ok
}

func (it *treeIterator[V]) Next() (v V, err error) {
	v, ok := it.peek()
	if !ok {
		return v, ErrNoSuchElement
	}
	it.started = true
	it.last = v
	it.guard.returned(v)
	return v, nil
}

func (it *treeIterator[V]) Remove() error {
	v, err := it.guard.take()
	if err != nil {
		return err
	}
	if !it.set.Remove(v) {
		return ErrIllegalState
	}
	return nil
}
