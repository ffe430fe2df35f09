package demo

import (
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/Pure-Company/funcdemo"
)

// missingFile never exists; reading it shows a swallowed failure.
const missingFile = "A File Path"

// Streams walks through stream sources, operations, collectors and
// statistics.
func Streams(w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	p := &printer{w: w}

	// Example 1: sources
	fruits := []string{"apple", "banana", "coconut"}
	p.printf("From a slice: %s\n", formatList(funcdemo.FromSlice(fruits).Collect(), funcdemo.Identity[string]))

	// Generate is infinite; Limit makes it finite.
	n := funcdemo.Generate(rand.Int).Limit(10).Count()
	p.printf("From a generator, limited: %d values\n", n)
	p.printf("From a range: [%s]\n", funcdemo.Join(funcdemo.Range(0, 10), ", "))

	if lines, err := funcdemo.Lines(missingFile); err == nil {
		p.printf("From a file: %d lines\n", lines.Count())
	}

	// Example 2: operations
	withA := funcdemo.FromSlice(fruits).Filter(func(s string) bool { return strings.Contains(s, "a") })
	p.printf("Containing \"a\": %s\n", formatList(withA.Collect(), funcdemo.Identity[string]))

	evens := funcdemo.Range(0, 10).Filter(func(i int) bool { return i%2 == 0 })
	squares := funcdemo.Map(evens, func(i int) int { return i * i })
	p.printf("Sum of squares of even numbers in [0,10): %d\n",
		squares.Reduce(0, func(a, b int) int { return a + b }))

	powers := funcdemo.Iterate(1, func(i int) int { return i * 2 }).Limit(8).Collect()
	p.printf("First powers of two: %s\n", formatList(powers, strconv.Itoa))

	// Example 3: collectors
	surnames := funcdemo.Distinct(funcdemo.Map(funcdemo.FromSlice(opts.Persons), funcdemo.Person.Surname)).Collect()
	p.printf("Unique surnames: %s\n", formatList(surnames, funcdemo.Identity[string]))

	if youngest, ok := funcdemo.FromSlice(opts.Persons).Min(funcdemo.PersonOrder(opts.Clock)); ok {
		p.printf("Youngest: %s\n", youngest.Format(opts.Clock))
	}

	// Example 4: statistics
	p.printf("Sum of [0,10): %d\n", funcdemo.Sum(funcdemo.Range(0, 10)))

	digits := funcdemo.Range(0, 10)
	if avg, ok := funcdemo.Average(digits); ok {
		p.printf("Average of [0,10): %.1f\n", avg)
	}
	// A stream is not reusable.
	if _, ok := funcdemo.Average(digits); !ok {
		p.printf("Average again: %v\n", digits.Err())
	}

	stats := funcdemo.Summarize(funcdemo.Range(0, 10))
	p.printf("count=%d sum=%d min=%d max=%d average=%.1f\n",
		stats.Count, stats.Sum, stats.Min, stats.Max, stats.Average())

	return p.err
}
