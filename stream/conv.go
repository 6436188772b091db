package stream

import (
	"fmt"

	"github.com/kabu1204/go-analytics/types"
)

// FromIterator wraps it. The stream's size class is it.Len() at the time of the call.
func FromIterator[T any](it types.Iterator[T]) *Stream[T] {
	return source("FromIterator", it)
}

func source[T any](name string, it types.Iterator[T]) *Stream[T] {
	size := it.Len()
	return &Stream[T]{
		drive: func(head *sink[T]) {
			head.settler(size)
			for !head.canceller() {
				v, ok := it.Next()
				if !ok {
					break
				}
				head.consumer(v)
			}
			head.cleaner()
		},
		size:   size,
		stages: []string{name},
	}
}

func Of[T any](elems ...T) *Stream[T] {
	return source("Of", types.SliceIterator(elems))
}

// FromSlice streams s without copying it; s must not change while the stream runs.
func FromSlice[T any](s []T) *Stream[T] {
	return source("FromSlice", types.SliceIterator(s))
}

func Empty[T any]() *Stream[T] {
	return source("Empty", types.SliceIterator[T](nil))
}

// Generate is an unbounded stream calling supplier once per pulled element.
func Generate[T any](supplier types.Supplier[T]) *Stream[T] {
	return source("Generate", types.GenerateIterator(supplier))
}

// Iterate is the unbounded stream seed, step(seed), step(step(seed)), ...
func Iterate[T any](seed T, step types.UnaryOperator[T]) *Stream[T] {
	return source("Iterate", types.IterateIterator(seed, nil, step))
}

// IterateWhile is Iterate that stops the first time hasNext is false.
func IterateWhile[T any](seed T, hasNext types.Predicate[T], step types.UnaryOperator[T]) *Stream[T] {
	if hasNext == nil {
		panic(fmt.Errorf("IterateWhile: nil hasNext: %w", ErrIllegalArgument))
	}
	return source("IterateWhile", types.IterateIterator(seed, hasNext, step))
}

// Range yields start, start+1, ..., end-1.
func Range[T types.Integer](start, end T) *Stream[T] {
	return source("Range", types.RangeIterator(start, end))
}

// RangeClosed yields start, start+1, ..., end.
func RangeClosed[T types.Integer](start, end T) *Stream[T] {
	return source("RangeClosed", types.RangeClosedIterator(start, end))
}

// Concat yields every element of a, then every element of b.
func Concat[T any](a, b *Stream[T]) *Stream[T] {
	if a.linked || b.linked || a == b {
		panic(fmt.Errorf("Concat: %w", ErrStreamConsumed))
	}
	a.link("Concat")
	b.link("Concat")
	size := concatSize(a.size, b.size)
	return &Stream[T]{
		drive: func(head *sink[T]) {
			head.settler(size)
			a.feed(head)
			if !head.canceller() {
				b.feed(head)
			}
			head.cleaner()
		},
		size:     size,
		parallel: max(a.parallel, b.parallel),
		stages:   []string{fmt.Sprintf("Concat(%v, %v)", a.stages, b.stages)},
	}
}

func concatSize(a, b int64) int64 {
	switch {
	case a == types.SizeUnbounded || b == types.SizeUnbounded:
		return types.SizeUnbounded
	case a >= 0 && b >= 0:
		return a + b
	default:
		return types.SizeUnknown
	}
}

// Builder accumulates elements for a stream. It cannot be added to once built.
type Builder[T any] struct {
	elems []T
	built bool
}

func NewBuilder[T any]() *Builder[T] { return &Builder[T]{} }

func (b *Builder[T]) Add(e T) *Builder[T] {
	if b.built {
		panic(fmt.Errorf("Builder.Add: %w", ErrStreamConsumed))
	}
	b.elems = append(b.elems, e)
	return b
}

func (b *Builder[T]) Build() *Stream[T] {
	if b.built {
		panic(fmt.Errorf("Builder.Build: %w", ErrStreamConsumed))
	}
	b.built = true
	return source("Builder", types.SliceIterator(b.elems))
}
