package stream

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"

	"github.com/kabu1204/go-analytics/optional"
	"github.com/kabu1204/go-analytics/types"
)

// ReduceWithCombiner folds the stream from identity with accumulator. On a
// sequential stream this is a plain left fold and combiner is never called.
// On a parallel stream the elements are split into contiguous partitions, each
// partition is folded from identity on its own worker, and the partial results
// are merged left to right with combiner.
//
// The result is independent of the partitioning only if combiner is
// associative, identity is an identity for it, and
// combiner(r, accumulator(identity, e)) == accumulator(r, e). The engine does
// not check this.
func ReduceWithCombiner[T, R any](s *Stream[T], identity R, accumulator func(R, T) R, combiner func(R, R) R) R {
	if s.parallel == 0 {
		return foldNamed(s, "ReduceWithCombiner", identity, accumulator)
	}
	parts := partition(s, "ReduceWithCombiner")
	return ReducePartitions(parts, identity, accumulator, combiner)
}

// ReducePartitions folds every partition from identity concurrently and merges
// the partial results in partition order with combiner. With no partitions it
// returns identity; with one it returns that partition's fold.
func ReducePartitions[T, R any](parts [][]T, identity R, accumulator func(R, T) R, combiner func(R, R) R) R {
	if len(parts) == 0 {
		return identity
	}
	partials := make([]R, len(parts))
	runPartitions(len(parts), func(i int) {
		acc := identity
		for _, e := range parts[i] {
			acc = accumulator(acc, e)
		}
		partials[i] = acc
	})
	result := partials[0]
	for _, p := range partials[1:] {
		result = combiner(result, p)
	}
	return result
}

// matchBatch is the number of elements each worker gets per round of a
// parallel short-circuit terminal.
const matchBatch = 256

// scanParallel pulls s in rounds of up to s.parallel*matchBatch elements and
// splits each round into contiguous chunks, one per worker. It stops pulling
// once stop reports true, so it terminates on unbounded input whenever stop
// eventually does.
func scanParallel[T any](s *Stream[T], name string, task func(part []T), stop func() bool) {
	workers := s.parallel
	batch := make([]T, 0, workers*matchBatch)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		parts := lo.Chunk(batch, (len(batch)+workers-1)/workers)
		logPartitions(name, len(batch), len(parts))
		runPartitions(len(parts), func(i int) { task(parts[i]) })
		batch = batch[:0]
	}
	consumer := func(e T) {
		batch = append(batch, e)
		if len(batch) == cap(batch) {
			flush()
		}
	}
	cleaner := func() {
		if !stop() {
			flush()
		}
	}
	s.terminate(name, newSink(wrapConsumer(consumer), wrapCleaner[T](cleaner), wrapCanceller[T](stop)), true)
}

func anyMatchParallel[T any](s *Stream[T], name string, p types.Predicate[T]) bool {
	var found atomic.Bool
	scanParallel(s, name, func(part []T) {
		for _, e := range part {
			if found.Load() {
				return
			}
			if p(e) {
				found.Store(true)
				return
			}
		}
	}, found.Load)
	return found.Load()
}

func findAnyParallel[T any](s *Stream[T]) optional.Optional[T] {
	var hit atomic.Pointer[T]
	scanParallel(s, "FindAny", func(part []T) {
		if len(part) > 0 {
			e := part[0]
			hit.CompareAndSwap(nil, &e)
		}
	}, func() bool { return hit.Load() != nil })
	if e := hit.Load(); e != nil {
		return optional.Some(*e)
	}
	return optional.None[T]()
}

// partition materializes s sequentially and splits it into at most
// s.parallel contiguous chunks of equal size, the last one possibly shorter.
func partition[T any](s *Stream[T], name string) [][]T {
	workers := s.parallel
	var items []T
	settler := func(sz int64) {
		items = make([]T, 0, max(sz, 0))
	}
	consumer := func(e T) {
		items = append(items, e)
	}
	s.terminate(name, newSink(wrapSettler[T](settler), wrapConsumer(consumer)), false)
	if len(items) == 0 {
		logPartitions(name, 0, 0)
		return nil
	}
	chunk := (len(items) + workers - 1) / workers
	parts := lo.Chunk(items, chunk)
	logPartitions(name, len(items), len(parts))
	return parts
}

// runPartitions runs task(0..n-1) on a pool of n workers and waits for all of
// them. The first panic raised by a task is re-raised on the caller's goroutine.
func runPartitions(n int, task func(i int)) {
	if n == 0 {
		return
	}
	pool, err := ants.NewPool(n)
	if err != nil {
		panic(fmt.Errorf("parallel pool of %d workers: %w", n, err))
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var once sync.Once
	var failure any
	for i := 0; i < n; i++ {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					once.Do(func() { failure = r })
				}
			}()
			task(i)
		})
		if err != nil {
			wg.Done()
			once.Do(func() { failure = fmt.Errorf("submit partition %d: %w", i, err) })
		}
	}
	wg.Wait()
	if failure != nil {
		panic(failure)
	}
}
