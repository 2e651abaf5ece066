// Package ordtree implements a persistent ordered binary tree.
//
// A Tree is a multiset: equal values are routed to the right subtree and
// every copy is kept. Insert never modifies its receiver, so any tree
// value already handed out stays valid and can be read from any number
// of goroutines without locking. There is no rebalancing; the shape of a
// tree is a direct function of the order its values were inserted in.
package ordtree

import "cmp"

type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// A Tree holds values of type T ordered by the comparison function it
// was constructed with. The zero value is not usable; construct trees
// with New, NewFunc, or NewPartial.
type Tree[T any] struct {
	root    *node[T]
	size    int
	compare PartialCompareFunc[T]
}

// New returns an empty tree ordered by cmp.Compare. Insert on the
// returned tree and its descendants never fails.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc returns an empty tree ordered by a total comparison function.
// Insert on the returned tree and its descendants never fails.
func NewFunc[T any](compare CompareFunc[T]) *Tree[T] {
	return NewPartial(totalCompare(compare))
}

// NewPartial returns an empty tree ordered by a partial comparison
// function. Insert fails with ErrIncomparableValues when compare cannot
// relate the new item to a value on its path.
func NewPartial[T any](compare PartialCompareFunc[T]) *Tree[T] {
	return &Tree[T]{compare: compare}
}

// Insert returns a tree holding every value in t plus item. Equal values
// go right, so duplicates are preserved. t itself is unchanged: the new
// tree copies only the nodes on the descent path and shares every other
// subtree with t. On error the receiver is still valid and no new tree
// is returned.
func (t *Tree[T]) Insert(item T) (*Tree[T], error) {
	root, err := t.root.insert(item, t.compare)
	if err != nil {
		return nil, err
	}
	return &Tree[T]{root: root, size: t.size + 1, compare: t.compare}, nil
}

func (n *node[T]) insert(item T, compare PartialCompareFunc[T]) (*node[T], error) {
	if n == nil {
		return &node[T]{value: item}, nil
	}
	c, ok := compare(item, n.value)
	if !ok {
		return nil, ErrIncomparableValues
	}
	if c < 0 {
		left, err := n.left.insert(item, compare)
		if err != nil {
			return nil, err
		}
		return &node[T]{value: n.value, left: left, right: n.right}, nil
	}
	right, err := n.right.insert(item, compare)
	if err != nil {
		return nil, err
	}
	return &node[T]{value: n.value, left: n.left, right: right}, nil
}

// Len returns the number of values in t, counting duplicates.
func (t *Tree[T]) Len() int {
	return t.size
}

// Traverse returns the values of t in ascending order. The slice is
// freshly allocated; calling Traverse again on the same tree value
// yields the same sequence.
func (t *Tree[T]) Traverse() []T {
	out := make([]T, 0, t.size)
	t.Iterate(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Iterate visits the values of t in ascending order, stopping early if
// visit returns false.
func (t *Tree[T]) Iterate(visit func(v T) bool) {
	t.root.inOrder(visit)
}

func (n *node[T]) inOrder(visit func(v T) bool) bool {
	if n == nil {
		return true
	}
	if !n.left.inOrder(visit) {
		return false
	}
	if !visit(n.value) {
		return false
	}
	return n.right.inOrder(visit)
}

// Contains reports whether item is present in t. An item the comparison
// cannot relate to a value on the search path is reported as absent.
func (t *Tree[T]) Contains(item T) bool {
	return t.root.contains(item, t.compare)
}

func (n *node[T]) contains(item T, compare PartialCompareFunc[T]) bool {
	if n == nil {
		return false
	}
	c, ok := compare(item, n.value)
	if !ok {
		return false
	}
	if c == 0 {
		return true
	}
	if c < 0 {
		return n.left.contains(item, compare)
	}
	return n.right.contains(item, compare)
}

// Min returns the smallest value in t. The boolean is false when the
// tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest value in t. The boolean is false when the
// tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}
