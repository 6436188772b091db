package stream

import (
	"errors"

	"github.com/kabu1204/go-analytics/collectors"
)

// Misuse errors. They are raised with panic at the call that caused them.
var (
	ErrUnbounded       = errors.New("unbounded sequence")
	ErrStreamConsumed  = errors.New("stream has already been linked or consumed")
	ErrIllegalArgument = errors.New("illegal argument")
	ErrFieldPath       = errors.New("field path is incorrect")
)

// Catch runs fn and returns the misuse error it panicked with, if any. Other
// panics are re-raised unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && isMisuse(e) {
			err = e
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

func isMisuse(err error) bool {
	for _, target := range []error{
		ErrUnbounded,
		ErrStreamConsumed,
		ErrIllegalArgument,
		ErrFieldPath,
		collectors.ErrFinished,
		collectors.ErrDuplicateKey,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
