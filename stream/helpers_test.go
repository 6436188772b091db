package stream

import (
	"errors"
	"slices"
	"testing"
)

func expectMisuse(t *testing.T, target error, fn func()) {
	t.Helper()
	err := Catch(fn)
	if err == nil {
		t.Fatalf("expected %v, got no error", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
}

func expectSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
