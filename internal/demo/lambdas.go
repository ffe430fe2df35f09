package demo

import (
	"io"
	"slices"

	"github.com/Pure-Company/funcdemo"
)

// helloRunner implements Runnable the long way, with a named type.
type helloRunner struct {
	p *printer
}

func (h helloRunner) Run() {
	h.p.println("Hello World - Runnable 1")
}

// Lambdas shows three ways to satisfy a single-method interface, then sorts
// strings and persons with comparator chains.
func Lambdas(w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	p := &printer{w: w}

	// Example 1: Runnable
	sayHello := func() {
		p.println("Hello World - method value")
	}
	runnables := []funcdemo.Runnable{
		helloRunner{p: p},
		funcdemo.RunnableFunc(func() { p.println("Hello World - Runnable 2") }),
		funcdemo.RunnableFunc(sayHello),
	}
	for _, r := range runnables {
		r.Run()
	}

	// Example 2: sorting
	strs := []string{"Batman", "Bruce Wayne", "Superman", "Clark Kent"}
	p.printf("Original Strings: %s\n", formatList(strs, funcdemo.Identity[string]))

	byLength := funcdemo.ComparatorFunc[string](func(a, b string) int { return len(a) - len(b) })
	byLength.Sort(strs)
	p.printf("Sorted on length: %s\n", formatList(strs, funcdemo.Identity[string]))

	funcdemo.Comparing(func(s string) int { return len(s) }).Reversed().Sort(strs)
	p.printf("Reverse sorted on length: %s\n", formatList(strs, funcdemo.Identity[string]))

	persons := slices.Clone(opts.Persons)
	p.printf("Original Persons: %s\n", formatPersons(persons, opts.Clock))
	funcdemo.PersonOrder(opts.Clock).Sort(persons)
	p.printf("Sorted Persons: %s\n", formatPersons(persons, opts.Clock))

	return p.err
}
