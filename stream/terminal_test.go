package stream

import (
	"errors"
	"math"
	"testing"

	"github.com/kabu1204/go-analytics/collectors"
	"github.com/kabu1204/go-analytics/employee"
	"github.com/kabu1204/go-analytics/types"
)

func TestCount(t *testing.T) {
	if got := FromSlice(employee.Sample()).Count(); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
	if got := Empty[int]().Count(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestSumAndFold(t *testing.T) {
	salaries := Map(FromSlice(employee.Sample()), employee.Salary)
	if got := Sum(salaries); got != 12000 {
		t.Errorf("expected 12000, got %d", got)
	}

	got := Fold(Of("a", "b", "c"), 0, func(n int, s string) int { return n*10 + len(s) })
	if got != 111 {
		t.Errorf("expected 111, got %d", got)
	}

	if got := Sum(Of(0.5, 0.25)); got != 0.75 {
		t.Errorf("expected 0.75, got %v", got)
	}
}

func TestReduce(t *testing.T) {
	longer := func(s1, s2 string) string {
		if len(s1) < len(s2) {
			return s2
		}
		return s1
	}
	if got, ok := Of("uno", "dos", "tres", "cuatro", "cinco").Reduce(longer).Get(); !ok || got != "cuatro" {
		t.Errorf("expected Some(cuatro), got %v %v", got, ok)
	}
	if got := Empty[string]().Reduce(longer); !got.IsNone() {
		t.Errorf("expected None, got %v", got)
	}
	if got := Empty[string]().ReduceFrom("seed", longer); got != "seed" {
		t.Errorf("expected identity on empty input, got %q", got)
	}
}

func TestMinMaxBy(t *testing.T) {
	words := []string{"uno", "dos", "tres", "cuatro", "cinco"}
	length := func(s string) int { return len(s) }

	if got := MaxBy(FromSlice(words), length).MustGet(); got != "cuatro" {
		t.Errorf("expected cuatro, got %q", got)
	}
	// ties resolve to the first element encountered
	if got := MinBy(FromSlice(words), length).MustGet(); got != "uno" {
		t.Errorf("expected uno, got %q", got)
	}
	if got := MaxBy(Of("ab", "cd", "e"), length).MustGet(); got != "ab" {
		t.Errorf("expected ab, got %q", got)
	}
	if got := MinBy(Empty[string](), length); !got.IsNone() {
		t.Errorf("expected None, got %v", got)
	}
	if got := Of(3, 1, 2).Max(types.NaturalOrder[int]()).OrElse(-1); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := Of(3, 1, 2).Min(types.NaturalOrder[int]()).OrElse(-1); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestMatches(t *testing.T) {
	over := func(limit int) types.Predicate[employee.Employee] {
		return func(e employee.Employee) bool { return e.Salary > limit }
	}
	tests := []struct {
		name string
		run  func() bool
		want bool
	}{
		{"any over 2000", func() bool { return FromSlice(employee.Sample()).AnyMatch(over(2000)) }, true},
		{"all over 2000", func() bool { return FromSlice(employee.Sample()).AllMatch(over(2000)) }, false},
		{"none over 3000", func() bool { return FromSlice(employee.Sample()).NoneMatch(over(3000)) }, true},
		{"all over 500", func() bool { return FromSlice(employee.Sample()).AllMatch(over(500)) }, true},
		{"empty any", func() bool { return Empty[employee.Employee]().AnyMatch(over(0)) }, false},
		{"empty all", func() bool { return Empty[employee.Employee]().AllMatch(over(0)) }, true},
		{"empty none", func() bool { return Empty[employee.Employee]().NoneMatch(over(0)) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMatchesShortCircuitOnUnbounded(t *testing.T) {
	pulled := 0
	naturals := Generate(func() int { pulled++; return pulled })
	if !naturals.AnyMatch(func(n int) bool { return n == 7 }) {
		t.Fatal("expected a match")
	}
	if pulled != 7 {
		t.Errorf("expected 7 pulls, got %d", pulled)
	}
	if Iterate(1, func(n int) int { return n + 1 }).AllMatch(func(n int) bool { return n < 3 }) {
		t.Error("expected AllMatch to find a counterexample")
	}
}

func TestFindFirst(t *testing.T) {
	names := Map(FromSlice(employee.Sample()).Filter(func(e employee.Employee) bool { return e.Salary >= 1000 }), employee.Name)
	if got := names.FindFirst().OrElse(""); got != "Empleado1" {
		t.Errorf("expected Empleado1, got %q", got)
	}

	none := Of(1, 3, 5).Filter(isEven).FindFirst()
	if !none.IsNone() {
		t.Errorf("expected None, got %v", none)
	}
	if v, ok := Iterate(1, func(n int) int { return n * 3 }).Filter(func(n int) bool { return n > 100 }).FindFirst().Get(); !ok || v != 243 {
		t.Errorf("expected 243, got %v", v)
	}
}

func TestFindAnySequential(t *testing.T) {
	if got := Of(4, 5, 6).FindAny().MustGet(); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := Empty[int]().FindAny(); !got.IsNone() {
		t.Errorf("expected None, got %v", got)
	}
}

func TestSummaryStatistics(t *testing.T) {
	s := SummaryStatistics(Of(800, 800, 900, 1000, 1000, 1000, 1200, 1200, 2000, 2500))
	if s.Count() != 10 || s.Sum() != 12400 || s.Min() != 800 || s.Max() != 2500 {
		t.Fatalf("unexpected summary %v", s)
	}
	if s.Average() != 1240.0 {
		t.Errorf("expected average 1240, got %v", s.Average())
	}

	medellin := Map(FromSlice(employee.Sample()).Filter(func(e employee.Employee) bool { return e.Location == "Medellín" }), employee.Salary)
	m := SummaryStatistics(medellin)
	if m.Count() != 4 || m.Sum() != 3600 || m.Min() != 800 || m.Max() != 1000 || m.Average() != 900 {
		t.Errorf("unexpected Medellín summary %v", m)
	}
	if math.Abs(m.Average()*float64(m.Count())-float64(m.Sum())) > 1e-9 {
		t.Errorf("sum does not match average*count in %v", m)
	}

	empty := SummaryStatistics(Empty[int]())
	if empty.Count() != 0 || empty.Average() != 0 {
		t.Errorf("unexpected empty summary %v", empty)
	}
}

func TestCollect(t *testing.T) {
	got := Collect(Of(1, 2, 1, 3, 3, 1, 2, 1, 5, 1, 3), collectors.Frequencies[int]())
	want := map[int]int64{1: 5, 2: 2, 3: 3, 5: 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("count of %d: expected %d, got %d", k, v, got[k])
		}
	}
}

func TestFullMaterializationRejectsUnbounded(t *testing.T) {
	naturals := func() *Stream[int] { return Iterate(0, func(n int) int { return n + 1 }) }
	tests := []struct {
		name string
		run  func()
	}{
		{"ToSlice", func() { naturals().ToSlice() }},
		{"Count", func() { naturals().Count() }},
		{"ForEach", func() { naturals().ForEach(func(int) {}) }},
		{"Sum", func() { Sum(naturals()) }},
		{"Fold", func() { Fold(naturals(), 0, func(a, b int) int { return a + b }) }},
		{"Collect", func() { Collect(naturals(), collectors.ToList[int]()) }},
		{"SummaryStatistics", func() { SummaryStatistics(naturals()) }},
		{"MaxBy", func() { MaxBy(naturals(), func(n int) int { return n }) }},
		{"parallel ReduceWithCombiner", func() {
			ReduceWithCombiner(naturals().Parallel(2), 0, func(a, b int) int { return a + b }, func(a, b int) int { return a + b })
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectMisuse(t, ErrUnbounded, tt.run)
		})
	}
}

func TestCatchRethrowsOtherPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("expected boom to propagate, got %v", r)
		}
	}()
	_ = Catch(func() { panic("boom") })
	t.Error("expected Catch to re-panic")
}

func TestCatchReturnsNilWithoutPanic(t *testing.T) {
	if err := Catch(func() { Of(1).Count() }); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := Catch(func() { panic(ErrIllegalArgument) }); !errors.Is(err, ErrIllegalArgument) {
		t.Errorf("expected %v, got %v", ErrIllegalArgument, err)
	}
}
