package stream

import (
	"cmp"
	"fmt"
	"reflect"
	"runtime"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/kabu1204/go-analytics/types"
)

// sizes of stages that may drop elements: a finite stream of unknown length,
// unless the input never ends.
func shrinkSize(size int64) int64 {
	if size == types.SizeUnbounded {
		return size
	}
	return types.SizeUnknown
}

// stateless

func (s *Stream[T]) Filter(p types.Predicate[T]) *Stream[T] {
	wrapper := func(next *sink[T]) []Option[T] {
		consumer := func(e T) {
			if p(e) {
				next.consumer(e)
			}
		}
		return []Option[T]{wrapConsumer(consumer)}
	}
	return then(s, "Filter", shrinkSize(s.size), wrapper)
}

func Map[T, R any](s *Stream[T], f types.Function[T, R]) *Stream[R] {
	wrapper := func(next *sink[R]) []Option[T] {
		consumer := func(e T) {
			next.consumer(f(e))
		}
		return []Option[T]{wrapConsumer(consumer)}
	}
	return then(s, "Map", s.size, wrapper)
}

// MapField projects each element onto the exported field at fieldPath, e.g.
// "Address.City". The field must hold an R.
func MapField[T, R any](s *Stream[T], fieldPath string) *Stream[R] {
	wrapper := func(next *sink[R]) []Option[T] {
		var indices []int
		consumer := func(e T) {
			var field any
			if indices != nil {
				v := reflect.Indirect(reflect.ValueOf(e))
				if !v.IsValid() {
					panic(fmt.Errorf("MapField %q on nil %T: %w", fieldPath, e, ErrFieldPath))
				}
				fv, err := v.FieldByIndexErr(indices)
				if err != nil {
					panic(fmt.Errorf("MapField %q on %T: %v: %w", fieldPath, e, err, ErrFieldPath))
				}
				field = fv.Interface()
			} else if v, idx, ok := types.FieldPathIndex(e, fieldPath); ok {
				field, indices = v, idx
			} else {
				panic(fmt.Errorf("MapField %q on %T: %w", fieldPath, e, ErrFieldPath))
			}
			r, ok := field.(R)
			if !ok {
				panic(fmt.Errorf("MapField %q holds %T: %w", fieldPath, field, ErrFieldPath))
			}
			next.consumer(r)
		}
		return []Option[T]{wrapConsumer(consumer)}
	}
	return then(s, "MapField", s.size, wrapper)
}

// FlatMap replaces each element with the elements of the stream f returns for
// it, in order. A nil stream contributes nothing. Inner streams are pulled only
// as far as downstream demands; an unbounded inner stream panics with
// ErrUnbounded unless a Limit or a short-circuit terminal follows.
func FlatMap[T, R any](s *Stream[T], f func(T) *Stream[R]) *Stream[R] {
	wrapper := func(next *sink[R]) []Option[T] {
		consumer := func(e T) {
			inner := f(e)
			if inner == nil {
				return
			}
			if inner.size == types.SizeUnbounded && !next.bounded {
				panic(fmt.Errorf("FlatMap: %w", ErrUnbounded))
			}
			inner.link("FlatMap")
			inner.feed(next)
		}
		return []Option[T]{wrapConsumer(consumer)}
	}
	return then(s, "FlatMap", shrinkSize(s.size), wrapper)
}

// Peek calls f on each element as it flows past. Under parallel evaluation f
// still runs once per element, but callers should not rely on when.
func (s *Stream[T]) Peek(f types.Consumer[T]) *Stream[T] {
	wrapper := func(next *sink[T]) []Option[T] {
		consumer := func(e T) {
			f(e)
			next.consumer(e)
		}
		return []Option[T]{wrapConsumer(consumer)}
	}
	return then(s, "Peek", s.size, wrapper)
}

// Parallel lets ReduceWithCombiner, AnyMatch, AllMatch, NoneMatch and FindAny
// split their work across n workers; n <= 0 means GOMAXPROCS. Other terminals
// are unaffected.
func (s *Stream[T]) Parallel(n int) *Stream[T] {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := then(s, "Parallel", s.size, defaultWrapper[T])
	p.parallel = n
	return p
}

func (s *Stream[T]) Sequential() *Stream[T] {
	p := then(s, "Sequential", s.size, defaultWrapper[T])
	p.parallel = 0
	return p
}

// stateful

// Distinct drops elements equal to one seen before, keeping first occurrences
// in order. Elements are compared with ==, so their dynamic types must be comparable.
func (s *Stream[T]) Distinct() *Stream[T] {
	size := shrinkSize(s.size)
	wrapper := func(next *sink[T]) []Option[T] {
		var set *hashset.Set
		settler := func(int64) {
			set = hashset.New()
			next.settler(size)
		}
		consumer := func(e T) {
			if !set.Contains(e) {
				set.Add(e)
				next.consumer(e)
			}
		}
		cleaner := func() {
			set.Clear()
			next.cleaner()
		}
		return []Option[T]{wrapSettler[T](settler), wrapConsumer(consumer), wrapCleaner[T](cleaner)}
	}
	return then(s, "Distinct", size, wrapper)
}

// DistinctBy keeps the first element for each distinct key.
func (s *Stream[T]) DistinctBy(key func(T) int) *Stream[T] {
	size := shrinkSize(s.size)
	wrapper := func(next *sink[T]) []Option[T] {
		var set *hashmap.HashMap
		settler := func(int64) {
			set = &hashmap.HashMap{}
			next.settler(size)
		}
		consumer := func(e T) {
			if _, exist := set.GetOrInsert(key(e), struct{}{}); !exist {
				next.consumer(e)
			}
		}
		cleaner := func() {
			set = nil
			next.cleaner()
		}
		return []Option[T]{wrapSettler[T](settler), wrapConsumer(consumer), wrapCleaner[T](cleaner)}
	}
	return then(s, "DistinctBy", size, wrapper)
}

// Sorted orders elements by cmp. Elements that compare equal keep their
// encounter order. Sorting must buffer everything, so Sorted panics with
// ErrUnbounded on an unbounded stream.
func (s *Stream[T]) Sorted(comparator types.Comparator[T]) *Stream[T] {
	s.mustBeBounded("Sorted")
	if comparator == nil {
		panic(fmt.Errorf("Sorted: nil comparator: %w", ErrIllegalArgument))
	}
	wrapper := func(next *sink[T]) []Option[T] {
		var mp *treemap.Map
		var count int64
		settler := func(int64) {
			mp = treemap.NewWith(func(a, b interface{}) int { return comparator(a.(T), b.(T)) })
			count = 0
		}
		consumer := func(e T) {
			count++
			if bucket, ok := mp.Get(e); ok {
				mp.Put(e, append(bucket.([]T), e))
			} else {
				mp.Put(e, []T{e})
			}
		}
		cleaner := func() {
			next.settler(count)
			it := mp.Iterator()
		emit:
			for it.Next() {
				for _, e := range it.Value().([]T) {
					if next.canceller() {
						break emit
					}
					next.consumer(e)
				}
			}
			mp.Clear()
			mp = nil
			next.cleaner()
		}
		canceller := func() bool { return false }
		return []Option[T]{wrapSettler[T](settler), wrapConsumer(consumer), wrapCleaner[T](cleaner), wrapCanceller[T](canceller), wrapBounded[T](false)}
	}
	return then(s, "Sorted", s.size, wrapper)
}

// Sort orders elements by their natural order.
func Sort[T cmp.Ordered](s *Stream[T]) *Stream[T] {
	return s.Sorted(cmp.Compare[T])
}

// Limit yields at most the first n elements and then stops pulling from
// upstream. It is what makes an unbounded stream safe to consume fully.
func (s *Stream[T]) Limit(n int64) *Stream[T] {
	if n < 0 {
		panic(fmt.Errorf("Limit(%d): %w", n, ErrIllegalArgument))
	}
	size := types.SizeUnknown
	if s.size >= 0 {
		size = min(s.size, n)
	}
	wrapper := func(next *sink[T]) []Option[T] {
		var cnt int64
		consumer := func(e T) {
			if cnt < n {
				cnt++
				next.consumer(e)
			}
		}
		canceller := func() bool {
			return cnt >= n || next.canceller()
		}
		return []Option[T]{wrapConsumer(consumer), wrapCanceller[T](canceller), wrapBounded[T](true)}
	}
	return then(s, "Limit", size, wrapper)
}

// Skip drops the first n elements.
func (s *Stream[T]) Skip(n int64) *Stream[T] {
	if n < 0 {
		panic(fmt.Errorf("Skip(%d): %w", n, ErrIllegalArgument))
	}
	size := s.size
	if size >= 0 {
		size = max(size-n, 0)
	}
	wrapper := func(next *sink[T]) []Option[T] {
		var cnt int64
		consumer := func(e T) {
			if cnt < n {
				cnt++
				return
			}
			next.consumer(e)
		}
		return []Option[T]{wrapConsumer(consumer)}
	}
	return then(s, "Skip", size, wrapper)
}
