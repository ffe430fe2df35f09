package funcdemo

import (
	"errors"
	"iter"
)

// ErrStreamConsumed is reported when a stream is used after an intermediate or
// terminal operation already claimed it, or after its pipeline was closed.
var ErrStreamConsumed = errors.New("funcdemo: stream has already been operated upon or closed")

// pipeline is the state shared by every stage built from the same source.
type pipeline struct {
	err     error
	closers []func() error
	closed  bool
}

func (p *pipeline) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *pipeline) close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	var errs []error
	for _, c := range p.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Stream is a lazy, single-pass sequence of values.
//
// Intermediate operations (Filter, Limit, Map, Distinct, ...) only describe
// work; nothing is pulled from the source until a terminal operation
// (Collect, ForEach, Reduce, Sum, ...) runs. A stream can be claimed by one
// operation only. Using it a second time yields nothing and Err reports
// ErrStreamConsumed. Terminal operations close the pipeline.
//
// Sources built with Generate or Iterate are infinite and must be truncated
// with Limit before a terminal operation, otherwise it never returns.
//
// A Stream is not safe for concurrent use.
type Stream[T any] struct {
	seq     iter.Seq[T]
	p       *pipeline
	claimed bool
	err     error
}

func newStream[T any](seq iter.Seq[T]) *Stream[T] {
	return &Stream[T]{seq: seq, p: &pipeline{}}
}

func emptySeq[T any](func(T) bool) {}

// consumed returns an empty stream that already reports ErrStreamConsumed.
func consumed[T any]() *Stream[T] {
	return &Stream[T]{seq: emptySeq[T], p: &pipeline{closed: true}, err: ErrStreamConsumed}
}

func (s *Stream[T]) claim() (iter.Seq[T], bool) {
	if s.claimed || s.p.closed {
		return nil, false
	}
	s.claimed = true
	return s.seq, true
}

// derive claims s and wraps its sequence in a new stage of the same pipeline.
func derive[T, U any](s *Stream[T], stage func(iter.Seq[T]) iter.Seq[U]) *Stream[U] {
	seq, ok := s.claim()
	if !ok {
		return consumed[U]()
	}
	return &Stream[U]{seq: stage(seq), p: s.p}
}

// drain claims s, feeds every value to yield until it returns false, then
// closes the pipeline. It reports false when s was already claimed.
func (s *Stream[T]) drain(yield func(T) bool) bool {
	seq, ok := s.claim()
	if !ok {
		s.err = ErrStreamConsumed
		return false
	}
	seq(yield)
	if err := s.p.close(); err != nil {
		s.p.fail(err)
	}
	return true
}

// Err returns the first error met by the stream: misuse of a consumed stream,
// or a failure of its source or close handlers.
func (s *Stream[T]) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.p.err
}

// OnClose registers fn to run when the pipeline is closed.
// It does not claim the stream.
func (s *Stream[T]) OnClose(fn func() error) *Stream[T] {
	s.p.closers = append(s.p.closers, fn)
	return s
}

// Close runs the close handlers of the pipeline once. Further operations on
// any stage of the pipeline report ErrStreamConsumed.
func (s *Stream[T]) Close() error {
	return s.p.close()
}

// ============================================================================
// Intermediate Operations
// ============================================================================

// Filter keeps the values matching pred.
func (s *Stream[T]) Filter(pred func(T) bool) *Stream[T] {
	return derive(s, func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for v := range seq {
				if pred(v) && !yield(v) {
					return
				}
			}
		}
	})
}

// Limit truncates the stream to at most n values.
// The source is not pulled beyond the n-th value.
func (s *Stream[T]) Limit(n int) *Stream[T] {
	return derive(s, func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			if n <= 0 {
				return
			}
			i := 0
			for v := range seq {
				if !yield(v) {
					return
				}
				i++
				if i >= n {
					return
				}
			}
		}
	})
}

// Skip drops the first n values.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	return derive(s, func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			i := 0
			for v := range seq {
				if i < n {
					i++
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Peek calls fn with each value as it flows past.
func (s *Stream[T]) Peek(fn func(T)) *Stream[T] {
	return derive(s, func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for v := range seq {
				fn(v)
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Sorted orders the values with c. It is stable, and it buffers the whole
// upstream on the first pull, so it must not follow an infinite source.
func (s *Stream[T]) Sorted(c ComparatorFunc[T]) *Stream[T] {
	return derive(s, func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			var buf []T
			for v := range seq {
				buf = append(buf, v)
			}
			c.Sort(buf)
			for _, v := range buf {
				if !yield(v) {
					return
				}
			}
		}
	})
}

// Map transforms every value with fn.
func Map[T, U any](s *Stream[T], fn func(T) U) *Stream[U] {
	return derive(s, func(seq iter.Seq[T]) iter.Seq[U] {
		return func(yield func(U) bool) {
			for v := range seq {
				if !yield(fn(v)) {
					return
				}
			}
		}
	})
}

// FlatMap replaces every value with the values of the sequence fn returns.
func FlatMap[T, U any](s *Stream[T], fn func(T) iter.Seq[U]) *Stream[U] {
	return derive(s, func(seq iter.Seq[T]) iter.Seq[U] {
		return func(yield func(U) bool) {
			for v := range seq {
				for u := range fn(v) {
					if !yield(u) {
						return
					}
				}
			}
		}
	})
}

// Distinct drops values equal to one already seen, keeping first-seen order.
func Distinct[T comparable](s *Stream[T]) *Stream[T] {
	return derive(s, func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			seen := make(map[T]struct{})
			for v := range seq {
				if _, dup := seen[v]; dup {
					continue
				}
				seen[v] = struct{}{}
				if !yield(v) {
					return
				}
			}
		}
	})
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Seq hands the stream over to a range-over-func loop. The pipeline is
// closed when the loop ends.
func (s *Stream[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.drain(yield)
	}
}

// Collect gathers the values into a slice.
func (s *Stream[T]) Collect() []T {
	var out []T
	s.drain(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// ForEach calls fn with every value.
func (s *Stream[T]) ForEach(fn func(T)) {
	s.drain(func(v T) bool {
		fn(v)
		return true
	})
}

// Reduce folds the values into identity with fn, left to right.
func (s *Stream[T]) Reduce(identity T, fn func(acc, v T) T) T {
	acc := identity
	s.drain(func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	return acc
}

// Fold is Reduce with an accumulator of a different type.
func Fold[T, A any](s *Stream[T], seed A, fn func(acc A, v T) A) A {
	acc := seed
	s.drain(func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	return acc
}

// Count returns the number of values.
func (s *Stream[T]) Count() int {
	n := 0
	s.drain(func(T) bool {
		n++
		return true
	})
	return n
}

// FindFirst returns the first value, or false when the stream is empty.
func (s *Stream[T]) FindFirst() (T, bool) {
	var (
		first T
		found bool
	)
	s.drain(func(v T) bool {
		first, found = v, true
		return false
	})
	return first, found
}

// AnyMatch reports whether some value matches pred. It stops at the first match.
func (s *Stream[T]) AnyMatch(pred func(T) bool) bool {
	matched := false
	s.drain(func(v T) bool {
		matched = pred(v)
		return !matched
	})
	return matched
}

// AllMatch reports whether every value matches pred. Empty streams match.
func (s *Stream[T]) AllMatch(pred func(T) bool) bool {
	return !s.AnyMatch(Not(pred))
}

// NoneMatch reports whether no value matches pred.
func (s *Stream[T]) NoneMatch(pred func(T) bool) bool {
	return !s.AnyMatch(pred)
}

// Min returns the first smallest value according to c.
func (s *Stream[T]) Min(c ComparatorFunc[T]) (T, bool) {
	return s.best(func(v, cur T) bool { return c(v, cur) < 0 })
}

// Max returns the first largest value according to c.
func (s *Stream[T]) Max(c ComparatorFunc[T]) (T, bool) {
	return s.best(func(v, cur T) bool { return c(v, cur) > 0 })
}

func (s *Stream[T]) best(better func(v, cur T) bool) (T, bool) {
	var (
		cur   T
		found bool
	)
	s.drain(func(v T) bool {
		if !found || better(v, cur) {
			cur, found = v, true
		}
		return true
	})
	return cur, found
}

// GroupBy collects the values into groups keyed by key, each group keeping
// stream order.
func GroupBy[T any, K comparable](s *Stream[T], key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	s.drain(func(v T) bool {
		k := key(v)
		groups[k] = append(groups[k], v)
		return true
	})
	return groups
}
