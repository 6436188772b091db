package collectors

import (
	"strings"

	"github.com/kabu1204/go-analytics/stats"
	"github.com/kabu1204/go-analytics/types"
)

func identity[T any](v T) T { return v }

func ToList[T any]() Collector[T, []T] {
	return Of(
		func() []T { return make([]T, 0) },
		func(l []T, e T) []T { return append(l, e) },
		identity[[]T],
	)
}

func Counting[T any]() Collector[T, int64] {
	return Of(
		func() int64 { return 0 },
		func(n int64, _ T) int64 { return n + 1 },
		identity[int64],
	)
}

func Summing[T any, N types.Number](fn types.Function[T, N]) Collector[T, N] {
	return Of(
		func() N { return 0 },
		func(sum N, e T) N { return sum + fn(e) },
		identity[N],
	)
}

// Averaging yields the arithmetic mean of fn over the elements, or 0 when there are none.
func Averaging[T any, N types.Number](fn types.Function[T, N]) Collector[T, float64] {
	return Of(
		func() *stats.Summary[N] { return &stats.Summary[N]{} },
		func(s *stats.Summary[N], e T) *stats.Summary[N] { s.Accept(fn(e)); return s },
		func(s *stats.Summary[N]) float64 { return s.Average() },
	)
}

func Summarizing[T any, N types.Number](fn types.Function[T, N]) Collector[T, stats.Summary[N]] {
	return Of(
		func() *stats.Summary[N] { return &stats.Summary[N]{} },
		func(s *stats.Summary[N], e T) *stats.Summary[N] { s.Accept(fn(e)); return s },
		func(s *stats.Summary[N]) stats.Summary[N] { return *s },
	)
}

func Joining(sep string) Collector[string, string] {
	return Of(
		func() []string { return nil },
		func(parts []string, e string) []string { return append(parts, e) },
		func(parts []string) string { return strings.Join(parts, sep) },
	)
}

// Mapping applies fn to each element before handing it to downstream.
func Mapping[T, U, R any](fn types.Function[T, U], downstream Collector[U, R]) Collector[T, R] {
	return Func[T, R](func() Container[T, R] {
		return &mapping[T, U, R]{fn: fn, down: downstream.New()}
	})
}

type mapping[T, U, R any] struct {
	guard
	fn   types.Function[T, U]
	down Container[U, R]
}

func (m *mapping[T, U, R]) Accept(e T) {
	m.accepting()
	m.down.Accept(m.fn(e))
}

func (m *mapping[T, U, R]) Finish() R {
	m.finishing()
	return m.down.Finish()
}

// Filtering drops elements failing pred before they reach downstream.
func Filtering[T, R any](pred types.Predicate[T], downstream Collector[T, R]) Collector[T, R] {
	return Func[T, R](func() Container[T, R] {
		return &filtering[T, R]{pred: pred, down: downstream.New()}
	})
}

type filtering[T, R any] struct {
	guard
	pred types.Predicate[T]
	down Container[T, R]
}

func (f *filtering[T, R]) Accept(e T) {
	f.accepting()
	if f.pred(e) {
		f.down.Accept(e)
	}
}

func (f *filtering[T, R]) Finish() R {
	f.finishing()
	return f.down.Finish()
}
