package funcdemo

import (
	"cmp"
	"slices"
	"sort"
)

// ComparatorFunc is a functional comparator: negative when a sorts before b,
// zero when they are equal, positive otherwise.
//
// Comparators compose like a monoid: Empty treats everything as equal and
// Compose (ThenComparing) breaks ties with the next comparator.
//
// Example:
//
//	byLen := Comparing(func(s string) int { return len(s) })
//	byLen.Reversed().ThenComparing(NaturalOrder[string]()).Sort(names)
type ComparatorFunc[T any] func(a, b T) int

// Comparing orders values by a key extracted from each.
func Comparing[T any, K cmp.Ordered](key func(T) K) ComparatorFunc[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// NaturalOrder orders values by their own natural ordering.
func NaturalOrder[T cmp.Ordered]() ComparatorFunc[T] {
	return cmp.Compare[T]
}

// Compare applies the comparator.
func (c ComparatorFunc[T]) Compare(a, b T) int {
	return c(a, b)
}

// Less reports whether a sorts strictly before b.
func (c ComparatorFunc[T]) Less(a, b T) bool {
	return c(a, b) < 0
}

// Empty returns a comparator that considers all values equal (Monoid identity).
func (c ComparatorFunc[T]) Empty() ComparatorFunc[T] {
	return func(T, T) int { return 0 }
}

// Compose is ThenComparing (Monoid operation).
func (c ComparatorFunc[T]) Compose(next ComparatorFunc[T]) ComparatorFunc[T] {
	return c.ThenComparing(next)
}

// ThenComparing breaks ties of c using next.
func (c ComparatorFunc[T]) ThenComparing(next ComparatorFunc[T]) ComparatorFunc[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// Reversed inverts the ordering. Ties stay ties.
func (c ComparatorFunc[T]) Reversed() ComparatorFunc[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Sort sorts items in place. The sort is stable: equal elements keep their
// relative order.
func (c ComparatorFunc[T]) Sort(items []T) {
	sort.Stable(SortSlice(items, c))
}

// Sorted returns a stably sorted copy of items, leaving items untouched.
func (c ComparatorFunc[T]) Sorted(items []T) []T {
	out := slices.Clone(items)
	c.Sort(out)
	return out
}

// Min returns the first smallest element, or false when items is empty.
func (c ComparatorFunc[T]) Min(items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return slices.MinFunc(items, c), true
}

// Max returns the first largest element, or false when items is empty.
func (c ComparatorFunc[T]) Max(items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return slices.MaxFunc(items, c), true
}
