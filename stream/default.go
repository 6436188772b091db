package stream

// forward passes open, close and cancel signals through to next; the stage
// opens next with its own static size and inherits its boundedness.
func forward[T, R any](next *sink[R], size int64) []Option[T] {
	settler := func(int64) {
		next.settler(size)
	}
	cleaner := func() {
		next.cleaner()
	}
	canceller := func() bool {
		return next.canceller()
	}
	return []Option[T]{wrapSettler[T](settler), wrapCleaner[T](cleaner), wrapCanceller[T](canceller), wrapBounded[T](next.bounded)}
}

func defaultWrapper[T any](next *sink[T]) []Option[T] {
	defaultConsumer := func(e T) {
		next.consumer(e)
	}
	return []Option[T]{wrapConsumer(defaultConsumer)}
}
