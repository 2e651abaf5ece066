package ordtree

import "errors"

// ErrIncomparableValues is returned by Insert when a partial comparison
// cannot relate the inserted item to a value already in the tree.
var ErrIncomparableValues = errors.New("ordtree: incomparable values")

// CompareFunc is a three-way total comparison: negative when a orders
// before b, zero when they are equivalent, positive when a orders after
// b.
type CompareFunc[T any] func(a, b T) int

// PartialCompareFunc is a three-way comparison that may fail to relate
// its arguments. The boolean is false when a and b are incomparable; the
// integer result is meaningless in that case.
type PartialCompareFunc[T any] func(a, b T) (int, bool)

func totalCompare[T any](compare CompareFunc[T]) PartialCompareFunc[T] {
	return func(a, b T) (int, bool) {
		return compare(a, b), true
	}
}
