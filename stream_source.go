package funcdemo

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
)

// Of streams the given values.
func Of[T any](values ...T) *Stream[T] {
	return FromSlice(values)
}

// FromSlice streams the elements of items. The slice is read lazily, so
// changes made to it before the terminal operation are visible.
func FromSlice[T any](items []T) *Stream[T] {
	return newStream(slices.Values(items))
}

// FromSeq streams the values of seq.
func FromSeq[T any](seq iter.Seq[T]) *Stream[T] {
	return newStream(seq)
}

// Generate streams the values returned by successive calls to supplier.
// The stream is infinite.
func Generate[T any](supplier func() T) *Stream[T] {
	return newStream(func(yield func(T) bool) {
		for {
			if !yield(supplier()) {
				return
			}
		}
	})
}

// Iterate streams seed, next(seed), next(next(seed)), ...
// The stream is infinite.
func Iterate[T any](seed T, next func(T) T) *Stream[T] {
	return newStream(func(yield func(T) bool) {
		for v := seed; ; v = next(v) {
			if !yield(v) {
				return
			}
		}
	})
}

// Range streams the integers in [start, end).
func Range(start, end int) *Stream[int] {
	return newStream(func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	})
}

// FromReader streams the lines of r without their line endings.
// A read failure ends the stream and is reported by Err.
func FromReader(r io.Reader) *Stream[string] {
	s := newStream[string](nil)
	s.seq = func(yield func(string) bool) {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			s.p.fail(fmt.Errorf("funcdemo: read lines: %w", err))
		}
	}
	return s
}

// Lines streams the lines of the file at path. The file is opened right away,
// so a missing file is reported here as an error wrapping fs.ErrNotExist.
// It is closed when the pipeline is closed.
func Lines(path string) (*Stream[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("funcdemo: lines of %q: %w", path, err)
	}
	return FromReader(f).OnClose(f.Close), nil
}
