// Package stream implements lazy, single-use pipelines over possibly unbounded
// sequences of values.
//
// A pipeline starts at a source (Of, Generate, Iterate, Concat, ...), grows one
// stage at a time (Filter, Map, Sorted, Limit, ...) and runs only when a
// terminal operation (Count, Fold, Collect, AnyMatch, ...) drives it. Every
// *Stream handle may be linked to exactly one downstream stage or terminal.
//
// Elements are pushed from the source through a chain of sinks, one per stage:
//
//	source -> Filter -> Map -> Limit -> ToSlice
//
// A sink is opened with its settler, receives elements through its consumer,
// is closed by its cleaner, and may ask the source to stop early through its
// canceller. Size information travels with each stage so that operations that
// must see every element fail fast on unbounded input instead of hanging.
package stream

import (
	"fmt"

	"github.com/kabu1204/go-analytics/types"
)

type Stream[T any] struct {
	drive    func(head *sink[T])
	size     int64
	parallel int
	stages   []string
	linked   bool
}

type sink[T any] struct {
	settler   func(size int64)
	consumer  types.Consumer[T]
	cleaner   func()
	canceller func() bool
	// bounded is set when something downstream stops pulling after finitely
	// many elements, so an unbounded inner stream can be drained safely.
	bounded bool
}

type Option[T any] func(*sink[T])

func wrapConsumer[T any](c types.Consumer[T]) Option[T] { return func(s *sink[T]) { s.consumer = c } }
func wrapSettler[T any](c func(int64)) Option[T]        { return func(s *sink[T]) { s.settler = c } }
func wrapCleaner[T any](c func()) Option[T]             { return func(s *sink[T]) { s.cleaner = c } }
func wrapCanceller[T any](c func() bool) Option[T]      { return func(s *sink[T]) { s.canceller = c } }
func wrapBounded[T any](b bool) Option[T]               { return func(s *sink[T]) { s.bounded = b } }

func newSink[T any](opts ...Option[T]) *sink[T] {
	s := &sink[T]{
		settler:   func(int64) {},
		consumer:  func(T) {},
		cleaner:   func() {},
		canceller: func() bool { return false },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// link claims s for one downstream stage or terminal.
func (s *Stream[T]) link(name string) {
	if s.linked {
		panic(fmt.Errorf("%s: %w", name, ErrStreamConsumed))
	}
	s.linked = true
}

func (s *Stream[T]) mustBeBounded(name string) {
	if s.size == types.SizeUnbounded {
		panic(fmt.Errorf("%s: %w", name, ErrUnbounded))
	}
}

// Len reports the size class known before the stream runs: an exact count,
// types.SizeUnknown for a finite stream of unknown length, or
// types.SizeUnbounded.
func (s *Stream[T]) Len() int64 { return s.size }

// Bounded reports whether the stream is known to end on its own.
func (s *Stream[T]) Bounded() bool { return s.size != types.SizeUnbounded }

// IsParallel reports whether parallel-capable terminals will split their work.
func (s *Stream[T]) IsParallel() bool { return s.parallel > 0 }

// Stages lists the stage names from the source to this handle.
func (s *Stream[T]) Stages() []string { return append([]string(nil), s.stages...) }

// then links a new stage of type R below prev. wrapper receives the sink of
// the next stage and returns the options of the new stage's own sink; the
// settler, cleaner and canceller default to forwarding to next.
func then[T, R any](prev *Stream[T], name string, size int64, wrapper func(next *sink[R]) []Option[T]) *Stream[R] {
	prev.link(name)
	stages := make([]string, 0, len(prev.stages)+1)
	stages = append(append(stages, prev.stages...), name)
	return &Stream[R]{
		drive: func(next *sink[R]) {
			opts := append(forward[T](next, size), wrapper(next)...)
			prev.drive(newSink(opts...))
		},
		size:     size,
		parallel: prev.parallel,
		stages:   stages,
	}
}

// terminate drives s into head. Unless it short-circuits, a terminal must
// see every element, so unbounded input is rejected before anything is pulled.
func (s *Stream[T]) terminate(name string, head *sink[T], shortCircuit bool) {
	s.link(name)
	if !shortCircuit {
		s.mustBeBounded(name)
	}
	head.bounded = shortCircuit
	logDrive(name, s.stages, s.size, s.parallel)
	s.drive(head)
}

// feed drives an already linked s into the consumer and canceller of an
// enclosing pipeline, without opening or closing it. FlatMap and Concat use
// it for inner streams.
func (s *Stream[T]) feed(outer *sink[T]) {
	s.drive(newSink(wrapConsumer(outer.consumer), wrapCanceller[T](outer.canceller), wrapBounded[T](outer.bounded)))
}
