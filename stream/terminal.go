package stream

import (
	"cmp"

	"github.com/kabu1204/go-analytics/collectors"
	"github.com/kabu1204/go-analytics/optional"
	"github.com/kabu1204/go-analytics/stats"
	"github.com/kabu1204/go-analytics/types"
)

// termination

func (s *Stream[T]) ForEach(f types.Consumer[T]) {
	s.terminate("ForEach", newSink(wrapConsumer(f)), false)
}

func (s *Stream[T]) ToSlice() []T {
	var slice []T
	settler := func(sz int64) {
		slice = make([]T, 0, max(sz, 0))
	}
	consumer := func(e T) {
		slice = append(slice, e)
	}
	s.terminate("ToSlice", newSink(wrapSettler[T](settler), wrapConsumer(consumer)), false)
	return slice
}

func (s *Stream[T]) Count() int64 {
	var cnt int64
	consumer := func(T) { cnt++ }
	s.terminate("Count", newSink(wrapConsumer(consumer)), false)
	return cnt
}

// AnyMatch reports whether some element satisfies p, stopping at the first
// one. It is false for an empty stream.
func (s *Stream[T]) AnyMatch(p types.Predicate[T]) bool {
	if s.parallel > 0 {
		return anyMatchParallel(s, "AnyMatch", p)
	}
	return s.anyMatch("AnyMatch", p)
}

// AllMatch reports whether every element satisfies p, stopping at the first
// one that does not. It is true for an empty stream.
func (s *Stream[T]) AllMatch(p types.Predicate[T]) bool {
	if s.parallel > 0 {
		return !anyMatchParallel(s, "AllMatch", types.Not(p))
	}
	return !s.anyMatch("AllMatch", types.Not(p))
}

// NoneMatch reports whether no element satisfies p. It is true for an empty stream.
func (s *Stream[T]) NoneMatch(p types.Predicate[T]) bool {
	if s.parallel > 0 {
		return !anyMatchParallel(s, "NoneMatch", p)
	}
	return !s.anyMatch("NoneMatch", p)
}

func (s *Stream[T]) anyMatch(name string, p types.Predicate[T]) bool {
	var flag bool
	consumer := func(e T) {
		if !flag && p(e) {
			flag = true
		}
	}
	canceller := func() bool {
		return flag
	}
	s.terminate(name, newSink(wrapConsumer(consumer), wrapCanceller[T](canceller)), true)
	return flag
}

// FindFirst returns the first element in encounter order, if any.
func (s *Stream[T]) FindFirst() optional.Optional[T] {
	return s.findFirst("FindFirst")
}

// FindAny returns some element, if any. Sequentially it is the first one; in
// parallel it is whichever a worker reports first.
func (s *Stream[T]) FindAny() optional.Optional[T] {
	if s.parallel > 0 {
		return findAnyParallel(s)
	}
	return s.findFirst("FindAny")
}

func (s *Stream[T]) findFirst(name string) optional.Optional[T] {
	result := optional.None[T]()
	consumer := func(e T) {
		if result.IsNone() {
			result = optional.Some(e)
		}
	}
	canceller := func() bool {
		return result.IsSome()
	}
	s.terminate(name, newSink(wrapConsumer(consumer), wrapCanceller[T](canceller)), true)
	return result
}

// Reduce folds the elements with accumulator, starting from the first one.
// It returns None for an empty stream.
func (s *Stream[T]) Reduce(accumulator types.BinaryOperator[T]) optional.Optional[T] {
	var result T
	none := true
	consumer := func(e T) {
		if none {
			result = e
			none = false
		} else {
			result = accumulator(result, e)
		}
	}
	s.terminate("Reduce", newSink(wrapConsumer(consumer)), false)
	if none {
		return optional.None[T]()
	}
	return optional.Some(result)
}

func (s *Stream[T]) ReduceFrom(identity T, accumulator types.BinaryOperator[T]) T {
	return foldNamed(s, "ReduceFrom", identity, func(acc, e T) T { return accumulator(acc, e) })
}

// Min returns the least element by cmp; ties keep the earliest.
func (s *Stream[T]) Min(cmp types.Comparator[T]) optional.Optional[T] {
	return s.best("Min", func(candidate, best T) bool { return cmp(candidate, best) < 0 })
}

// Max returns the greatest element by cmp; ties keep the earliest.
func (s *Stream[T]) Max(cmp types.Comparator[T]) optional.Optional[T] {
	return s.best("Max", func(candidate, best T) bool { return cmp(candidate, best) > 0 })
}

// best keeps the first element and replaces it only with a strictly better one.
func (s *Stream[T]) best(name string, better func(candidate, best T) bool) optional.Optional[T] {
	result := optional.None[T]()
	consumer := func(e T) {
		if cur, ok := result.Get(); !ok || better(e, cur) {
			result = optional.Some(e)
		}
	}
	s.terminate(name, newSink(wrapConsumer(consumer)), false)
	return result
}

func MinBy[T any, K cmp.Ordered](s *Stream[T], key types.Function[T, K]) optional.Optional[T] {
	return s.Min(types.Comparing(key))
}

func MaxBy[T any, K cmp.Ordered](s *Stream[T], key types.Function[T, K]) optional.Optional[T] {
	return s.Max(types.Comparing(key))
}

// Fold is a sequential left fold: accumulator(...accumulator(identity, e0)..., en).
func Fold[T, R any](s *Stream[T], identity R, accumulator func(R, T) R) R {
	return foldNamed(s, "Fold", identity, accumulator)
}

func foldNamed[T, R any](s *Stream[T], name string, identity R, accumulator func(R, T) R) R {
	result := identity
	consumer := func(e T) {
		result = accumulator(result, e)
	}
	s.terminate(name, newSink(wrapConsumer(consumer)), false)
	return result
}

func Sum[N types.Number](s *Stream[N]) N {
	return foldNamed(s, "Sum", N(0), func(acc, e N) N { return acc + e })
}

// SummaryStatistics summarizes the stream in one pass.
func SummaryStatistics[N types.Number](s *Stream[N]) stats.Summary[N] {
	var summary stats.Summary[N]
	s.terminate("SummaryStatistics", newSink(wrapConsumer(summary.Accept)), false)
	return summary
}

// Collect runs the stream into a fresh container of c.
func Collect[T, R any](s *Stream[T], c collectors.Collector[T, R]) R {
	box := c.New()
	s.terminate("Collect", newSink(wrapConsumer(box.Accept)), false)
	return box.Finish()
}
