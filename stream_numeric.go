package funcdemo

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds up the values. An empty stream sums to zero.
func Sum[T Number](s *Stream[T]) T {
	return s.Reduce(0, func(acc, v T) T { return acc + v })
}

// Average returns the arithmetic mean, or false when the stream is empty.
func Average[T Number](s *Stream[T]) (float64, bool) {
	st := Summarize(s)
	if st.Count == 0 {
		return 0, false
	}
	return st.Average(), true
}

// SummaryStatistics holds count, sum, min and max of a set of numbers.
// The zero value is an empty summary.
type SummaryStatistics[T Number] struct {
	Count int
	Sum   T
	Min   T
	Max   T
}

// Accept records v.
func (st *SummaryStatistics[T]) Accept(v T) {
	if st.Count == 0 || v < st.Min {
		st.Min = v
	}
	if st.Count == 0 || v > st.Max {
		st.Max = v
	}
	st.Count++
	st.Sum += v
}

// Average returns Sum/Count, or zero for an empty summary.
func (st SummaryStatistics[T]) Average() float64 {
	if st.Count == 0 {
		return 0
	}
	return float64(st.Sum) / float64(st.Count)
}

func (st SummaryStatistics[T]) String() string {
	return fmt.Sprintf("SummaryStatistics{count=%d, sum=%v, min=%v, average=%f, max=%v}",
		st.Count, st.Sum, st.Min, st.Average(), st.Max)
}

// Summarize computes the statistics of the stream in a single pass.
func Summarize[T Number](s *Stream[T]) SummaryStatistics[T] {
	var st SummaryStatistics[T]
	s.ForEach(st.Accept)
	return st
}

// Join formats the values with fmt.Sprint and joins them with sep.
func Join[T any](s *Stream[T], sep string) string {
	var b strings.Builder
	first := true
	s.ForEach(func(v T) {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprint(&b, v)
	})
	return b.String()
}
