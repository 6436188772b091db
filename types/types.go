package types

import "cmp"

type (
	Predicate[T any] func(T) bool

	Function[T, R any] func(T) R

	Consumer[T any] func(T)

	Supplier[T any] func() T

	UnaryOperator[T any] func(T) T

	// Comparator returns a negative number, zero or a positive number when e1 is
	// less than, equal to or greater than e2.
	Comparator[T any] func(e1, e2 T) int

	BinaryOperator[T any] func(e1, e2 T) T
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Float
}

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(e T) bool { return !p(e) }
}

// NaturalOrder returns the Comparator of the natural ordering of K.
func NaturalOrder[K cmp.Ordered]() Comparator[K] {
	return cmp.Compare[K]
}

// Comparing builds a Comparator ordering elements by the natural order of key.
func Comparing[T any, K cmp.Ordered](key Function[T, K]) Comparator[T] {
	return func(e1, e2 T) int {
		return cmp.Compare(key(e1), key(e2))
	}
}

// Reversed flips the order of c.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(e1, e2 T) int { return c(e2, e1) }
}
