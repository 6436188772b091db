// Package stats holds the single-pass summary statistics record.
package stats

import (
	"fmt"

	"github.com/kabu1204/go-analytics/types"
)

// Summary accumulates count, sum, min and max of a numeric sequence.
// The zero value is an empty summary ready for Accept.
//
// Sum is kept in N and wraps like N does; integer summaries also keep an int64
// total, reported by Total and used by Average.
type Summary[N types.Number] struct {
	count int64
	sum   N
	total int64
	min   N
	max   N
}

// floating reports whether N is a floating-point type.
func floating[N types.Number]() bool {
	var half N = 1
	half /= 2
	return half != 0
}

// Of summarizes values.
func Of[N types.Number](values ...N) Summary[N] {
	var s Summary[N]
	for _, v := range values {
		s.Accept(v)
	}
	return s
}

func (s *Summary[N]) Accept(v N) {
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		s.min = min(s.min, v)
		s.max = max(s.max, v)
	}
	s.count++
	s.sum += v
	if !floating[N]() {
		s.total += int64(v)
	}
}

// Combine folds other into s, as if every value other saw had been accepted by s.
func (s *Summary[N]) Combine(other Summary[N]) {
	if other.count == 0 {
		return
	}
	if s.count == 0 {
		*s = other
		return
	}
	s.count += other.count
	s.sum += other.sum
	s.total += other.total
	s.min = min(s.min, other.min)
	s.max = max(s.max, other.max)
}

func (s Summary[N]) Count() int64 { return s.count }
func (s Summary[N]) Sum() N       { return s.sum }

// Total is the sum as an int64: exact for integer summaries, truncated for
// floating-point ones.
func (s Summary[N]) Total() int64 {
	if floating[N]() {
		return int64(s.sum)
	}
	return s.total
}

// Min is zero when the summary is empty.
func (s Summary[N]) Min() N { return s.min }

// Max is zero when the summary is empty.
func (s Summary[N]) Max() N { return s.max }

// Average is sum/count, or 0 for an empty summary.
func (s Summary[N]) Average() float64 {
	if s.count == 0 {
		return 0
	}
	if floating[N]() {
		return float64(s.sum) / float64(s.count)
	}
	return float64(s.total) / float64(s.count)
}

func (s Summary[N]) String() string {
	return fmt.Sprintf("Summary{count=%d, sum=%v, min=%v, average=%f, max=%v}",
		s.count, s.sum, s.min, s.Average(), s.max)
}
