package types

// Size classes reported by Iterator.Len besides an exact, non-negative length.
const (
	// SizeUnknown marks a finite source whose length is not known in advance.
	SizeUnknown int64 = -1
	// SizeUnbounded marks a source that never runs dry on its own.
	SizeUnbounded int64 = -2
)

type Iterator[T any] interface {
	Next() (T, bool)
	Len() int64 // exact length, SizeUnknown or SizeUnbounded
}

type sliceIterator[T any] struct {
	index int
	slice []T
}

func SliceIterator[T any](s []T) Iterator[T] {
	return &sliceIterator[T]{
		index: -1,
		slice: s,
	}
}

func (it *sliceIterator[T]) hasNext() bool {
	return it.index < len(it.slice)-1
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.hasNext() {
		it.index++
		return it.slice[it.index], true
	}
	var zero T
	return zero, false
}

func (it *sliceIterator[T]) Len() int64 {
	return int64(len(it.slice))
}

type generateIterator[T any] struct {
	supplier Supplier[T]
}

// GenerateIterator pulls a fresh value from supplier on every call to Next.
func GenerateIterator[T any](supplier Supplier[T]) Iterator[T] {
	return &generateIterator[T]{supplier: supplier}
}

func (it *generateIterator[T]) Next() (T, bool) { return it.supplier(), true }
func (it *generateIterator[T]) Len() int64      { return SizeUnbounded }

type iterateIterator[T any] struct {
	seed    T
	cur     T
	hasNext Predicate[T]
	step    UnaryOperator[T]
	started bool
	done    bool
}

// IterateIterator yields seed, step(seed), step(step(seed)), ... The sequence
// ends the first time hasNext reports false; a nil hasNext never ends it.
// step is applied only when the next element is pulled.
func IterateIterator[T any](seed T, hasNext Predicate[T], step UnaryOperator[T]) Iterator[T] {
	return &iterateIterator[T]{
		seed:    seed,
		hasNext: hasNext,
		step:    step,
	}
}

func (it *iterateIterator[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	if !it.started {
		it.started = true
		it.cur = it.seed
	} else {
		it.cur = it.step(it.cur)
	}
	if it.hasNext != nil && !it.hasNext(it.cur) {
		it.done = true
		it.cur = zero
		return zero, false
	}
	return it.cur, true
}

func (it *iterateIterator[T]) Len() int64 {
	if it.hasNext == nil {
		return SizeUnbounded
	}
	return SizeUnknown
}

type rangeIterator[T Integer] struct {
	next, last T
	done       bool
}

// RangeIterator yields start, start+1, ..., end-1.
func RangeIterator[T Integer](start, end T) Iterator[T] {
	if start >= end {
		return &rangeIterator[T]{done: true}
	}
	return &rangeIterator[T]{next: start, last: end - 1}
}

// RangeClosedIterator yields start, start+1, ..., end.
func RangeClosedIterator[T Integer](start, end T) Iterator[T] {
	if start > end {
		return &rangeIterator[T]{done: true}
	}
	return &rangeIterator[T]{next: start, last: end}
}

func (it *rangeIterator[T]) Next() (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}
	v := it.next
	if it.next == it.last {
		it.done = true
	} else {
		it.next++
	}
	return v, true
}

func (it *rangeIterator[T]) Len() int64 {
	if it.done {
		return 0
	}
	return int64(it.last-it.next) + 1
}
