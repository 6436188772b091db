package collectors

import "github.com/kabu1204/go-analytics/types"

// GroupBy buckets elements by key. Each bucket keeps its elements in encounter order.
func GroupBy[T any, K comparable](key types.Function[T, K]) Collector[T, map[K][]T] {
	return GroupByWith(key, ToList[T]())
}

// GroupByWith buckets elements by key and reduces every bucket with its own
// container of downstream. A key is present as soon as one element maps to it,
// even if downstream filters that element out.
func GroupByWith[T any, K comparable, R any](key types.Function[T, K], downstream Collector[T, R]) Collector[T, map[K]R] {
	return Func[T, map[K]R](func() Container[T, map[K]R] {
		return &grouping[T, K, R]{
			key:     key,
			down:    downstream,
			buckets: make(map[K]Container[T, R]),
		}
	})
}

type grouping[T any, K comparable, R any] struct {
	guard
	key     types.Function[T, K]
	down    Collector[T, R]
	buckets map[K]Container[T, R]
}

func (g *grouping[T, K, R]) Accept(e T) {
	g.accepting()
	k := g.key(e)
	bucket, ok := g.buckets[k]
	if !ok {
		bucket = g.down.New()
		g.buckets[k] = bucket
	}
	bucket.Accept(e)
}

func (g *grouping[T, K, R]) Finish() map[K]R {
	g.finishing()
	out := make(map[K]R, len(g.buckets))
	for k, bucket := range g.buckets {
		out[k] = bucket.Finish()
	}
	g.buckets = nil
	return out
}

// PartitionBy splits elements into the true and false buckets of pred.
// Both keys are always present.
func PartitionBy[T any](pred types.Predicate[T]) Collector[T, map[bool][]T] {
	return PartitionByWith(pred, ToList[T]())
}

func PartitionByWith[T, R any](pred types.Predicate[T], downstream Collector[T, R]) Collector[T, map[bool]R] {
	return Func[T, map[bool]R](func() Container[T, map[bool]R] {
		return &grouping[T, bool, R]{
			key:  types.Function[T, bool](pred),
			down: downstream,
			buckets: map[bool]Container[T, R]{
				true:  downstream.New(),
				false: downstream.New(),
			},
		}
	})
}

// Frequencies counts how many times each distinct value occurs.
func Frequencies[T comparable]() Collector[T, map[T]int64] {
	return GroupByWith(types.Identity[T](), Counting[T]())
}
