/*
Package funcdemo shows functional-style Go: function types bound to
single-method interfaces, comparator chains, and lazy single-pass streams.

# Overview

A single-method interface can be satisfied by a function type, so a function
literal or a method value stands in wherever the interface is expected:

	type Runnable interface{ Run() }
	type RunnableFunc func()

	var r Runnable = RunnableFunc(func() { fmt.Println("Hello World") })
	r = RunnableFunc(sayHello) // method values work too

Optional capabilities live in their own interfaces, with a package-level helper
supplying the default when a type does not implement them:

	IsExisting(Closure{})         // false, the default
	IsExisting(ExistingManHole{}) // true, overridden

# Core Concepts

Monoids: RunnableFunc, ConsumerFunc and ComparatorFunc provide Empty() and
Compose():

	byAge.Compose(byName)      // tie-break by name
	run1.Compose(run2)         // run both in order

Comparators: build an ordering from keys and chain tie-breakers:

	order := Comparing(Person.Name).ThenComparing(Comparing(Person.Surname))
	order.Sort(persons) // stable

Streams: describe a pipeline, then run it with one terminal operation:

	sum := Sum(Map(Range(0, 10).Filter(isEven), square)) // 120

Nothing runs until the terminal operation, and a stream can be used once.
Check Err after a terminal operation when reuse or a failing source is
possible:

	s := Of("apple", "banana")
	s.Collect()
	s.Collect() // empty, s.Err() == ErrStreamConsumed

# Available Types

Functional bindings:
  - RunnableFunc, SupplierFunc, PredicateFunc, ConsumerFunc
  - ClockFunc, EquipmentFunc
  - ComparatorFunc, SortInterface

Values:
  - Person: immutable name, surname and date of birth with a derived age
  - Closure, ExistingManHole: Equipment variants

Streams:
  - Sources: Of, FromSlice, FromSeq, FromReader, Lines, Range, Generate, Iterate
  - Intermediate: Filter, Limit, Skip, Peek, Sorted, Map, FlatMap, Distinct
  - Terminal: Collect, ForEach, Reduce, Fold, Count, FindFirst, AnyMatch,
    AllMatch, NoneMatch, Min, Max, Seq, Sum, Average, Summarize, Join, GroupBy
*/
package funcdemo
