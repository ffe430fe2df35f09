// Package demo holds the runnable demonstrations shared by the examples and
// the funcdemo CLI. Each demo writes its results to an io.Writer and is
// independent of the others.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/Pure-Company/funcdemo"
)

// Options tunes a demo run. The zero value uses the system clock and the
// built-in roster.
type Options struct {
	// Clock pins "today" for the ages shown. Defaults to funcdemo.SystemClock.
	Clock funcdemo.Clock
	// Persons replaces the built-in roster when non-nil.
	Persons []funcdemo.Person
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = funcdemo.SystemClock
	}
	if o.Persons == nil {
		o.Persons = DefaultRoster()
	}
	return o
}

// printer remembers the first write error so demos can print freely and
// check once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

// formatList renders items as "[a, b, c]".
func formatList[T any](items []T, format func(T) string) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = format(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatPersons(persons []funcdemo.Person, clock funcdemo.Clock) string {
	return formatList(persons, func(p funcdemo.Person) string { return p.Format(clock) })
}
