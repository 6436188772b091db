package types

// Apply calls f. It reads better than a bare call at the end of a composition chain.
func (f Function[T, R]) Apply(v T) R { return f(v) }

// Identity returns its argument unchanged.
func Identity[T any]() Function[T, T] {
	return func(v T) T { return v }
}

// Compose returns x -> g(f(x)); f runs first.
func Compose[A, B, C any](f Function[A, B], g Function[B, C]) Function[A, C] {
	return func(x A) C { return g(f(x)) }
}

// AndThen is Compose read left to right: AndThen(f, g) runs f, then g on its result.
func AndThen[A, B, C any](f Function[A, B], g Function[B, C]) Function[A, C] {
	return Compose(f, g)
}

// Chain composes same-typed operators in order. An empty chain is the identity.
func Chain[T any](ops ...UnaryOperator[T]) UnaryOperator[T] {
	fns := append([]UnaryOperator[T](nil), ops...)
	return func(v T) T {
		for _, op := range fns {
			v = op(v)
		}
		return v
	}
}
