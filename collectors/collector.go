// Package collectors builds mutable reductions that turn a finite sequence
// into a structured result: lists, groupings, partitions, frequency tables
// and keyed maps.
//
// A Collector is a recipe. Each call to New returns a fresh Container owned by
// one caller; a Container accepts elements until Finish, after which it
// rejects any further use.
package collectors

import (
	"errors"
	"fmt"
)

var (
	// ErrFinished is raised when a Container is used after Finish.
	ErrFinished = errors.New("collector already finished")
	// ErrDuplicateKey is raised by ToMap and ToSortedMap when no merge function is given.
	ErrDuplicateKey = errors.New("duplicate key")
)

type Container[T, R any] interface {
	Accept(T)
	Finish() R
}

type Collector[T, R any] interface {
	New() Container[T, R]
}

// Func adapts a Container factory to a Collector.
type Func[T, R any] func() Container[T, R]

func (f Func[T, R]) New() Container[T, R] { return f() }

// Of assembles a Collector from a supplier of fresh accumulation state, an
// accumulator folding one element into it and a finisher producing the result.
func Of[T, A, R any](supplier func() A, accumulator func(A, T) A, finisher func(A) R) Collector[T, R] {
	return Func[T, R](func() Container[T, R] {
		return &container[T, A, R]{
			acc:        supplier(),
			accumulate: accumulator,
			finish:     finisher,
		}
	})
}

// guard enforces the accumulating -> finished life cycle of a container.
type guard struct {
	finished bool
}

func (g *guard) accepting() {
	if g.finished {
		panic(fmt.Errorf("accept: %w", ErrFinished))
	}
}

func (g *guard) finishing() {
	if g.finished {
		panic(fmt.Errorf("finish: %w", ErrFinished))
	}
	g.finished = true
}

type container[T, A, R any] struct {
	guard
	acc        A
	accumulate func(A, T) A
	finish     func(A) R
}

func (c *container[T, A, R]) Accept(e T) {
	c.accepting()
	c.acc = c.accumulate(c.acc, e)
}

func (c *container[T, A, R]) Finish() R {
	c.finishing()
	r := c.finish(c.acc)
	var zero A
	c.acc = zero
	return r
}

// Drive feeds values into a fresh container of c and finishes it.
func Drive[T, R any](c Collector[T, R], values ...T) R {
	box := c.New()
	for _, v := range values {
		box.Accept(v)
	}
	return box.Finish()
}
