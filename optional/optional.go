package optional

import "fmt"

// Optional holds either a value or nothing. The zero Optional is None.
type Optional[T any] struct {
	value T
	some  bool
}

func None[T any]() Optional[T] { return Optional[T]{} }

func Some[T any](v T) Optional[T] { return Optional[T]{value: v, some: true} }

// Get returns the held value and whether there was one.
func (o Optional[T]) Get() (T, bool) { return o.value, o.some }

func (o Optional[T]) IsNone() bool { return !o.some }

func (o Optional[T]) IsSome() bool { return o.some }

func (o Optional[T]) OrElse(other T) T {
	if o.some {
		return o.value
	}
	return other
}

func (o Optional[T]) OrElseGet(supplier func() T) T {
	if o.some {
		return o.value
	}
	return supplier()
}

func (o Optional[T]) IfPresent(f func(T)) {
	if o.some {
		f(o.value)
	}
}

// MustGet panics on None.
func (o Optional[T]) MustGet() T {
	if !o.some {
		panic("optional: MustGet on None")
	}
	return o.value
}

func (o Optional[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the held value, if any.
func Map[T, R any](o Optional[T], f func(T) R) Optional[R] {
	if !o.some {
		return None[R]()
	}
	return Some(f(o.value))
}
