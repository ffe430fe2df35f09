package funcdemo

import "sync"

// ============================================================================
// Runnable Bindings
// ============================================================================

// Runnable is a unit of work that takes no input and returns nothing.
type Runnable interface {
	Run()
}

// RunnableFunc is a functional binding for Runnable.
// Any func() can be converted to it, including method values.
//
// Example:
//
//	hello := RunnableFunc(func() { fmt.Println("Hello") })
//	hello.Compose(RunnableFunc(sayBye)).Run()
type RunnableFunc func()

// Run implements Runnable.
func (f RunnableFunc) Run() {
	f()
}

// Empty returns a runnable that does nothing (Monoid identity).
func (f RunnableFunc) Empty() RunnableFunc {
	return func() {}
}

// Compose runs this runnable, then next (Monoid operation).
func (f RunnableFunc) Compose(next RunnableFunc) RunnableFunc {
	return func() {
		f()
		next()
	}
}

// ============================================================================
// Supplier Bindings
// ============================================================================

// Supplier produces values of type T on demand.
type Supplier[T any] interface {
	Get() T
}

// SupplierFunc is a functional binding for Supplier.
//
// Example:
//
//	closure := SupplierFunc[Equipment](func() Equipment { return Closure{} })
//	eq := CreateEquipment(closure)
type SupplierFunc[T any] func() T

// Get implements Supplier.
func (f SupplierFunc[T]) Get() T {
	return f()
}

// Memoize defers the call to f until the first Get and caches the result.
// The returned supplier is safe for concurrent use.
func (f SupplierFunc[T]) Memoize() SupplierFunc[T] {
	var (
		once sync.Once
		v    T
	)
	return func() T {
		once.Do(func() { v = f() })
		return v
	}
}

// ============================================================================
// Predicate Bindings
// ============================================================================

// PredicateFunc is a functional binding for a boolean test on T.
//
// Example:
//
//	even := PredicateFunc[int](func(i int) bool { return i%2 == 0 })
//	positiveEven := even.And(func(i int) bool { return i > 0 })
type PredicateFunc[T any] func(T) bool

// Test evaluates the predicate.
func (p PredicateFunc[T]) Test(v T) bool {
	return p(v)
}

// And short-circuits: other is not evaluated when p is false.
func (p PredicateFunc[T]) And(other PredicateFunc[T]) PredicateFunc[T] {
	return func(v T) bool {
		return p(v) && other(v)
	}
}

// Or short-circuits: other is not evaluated when p is true.
func (p PredicateFunc[T]) Or(other PredicateFunc[T]) PredicateFunc[T] {
	return func(v T) bool {
		return p(v) || other(v)
	}
}

// Negate inverts the predicate.
func (p PredicateFunc[T]) Negate() PredicateFunc[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// Not is the package-level form of Negate, handy with plain funcs.
func Not[T any](p func(T) bool) PredicateFunc[T] {
	return PredicateFunc[T](p).Negate()
}

// ============================================================================
// Consumer Bindings
// ============================================================================

// ConsumerFunc is a functional binding for an operation that accepts a value
// and returns nothing.
type ConsumerFunc[T any] func(T)

// Accept applies the consumer.
func (f ConsumerFunc[T]) Accept(v T) {
	f(v)
}

// Empty returns a consumer that ignores its input (Monoid identity).
func (f ConsumerFunc[T]) Empty() ConsumerFunc[T] {
	return func(T) {}
}

// AndThen feeds the same value to f, then to next.
func (f ConsumerFunc[T]) AndThen(next ConsumerFunc[T]) ConsumerFunc[T] {
	return func(v T) {
		f(v)
		next(v)
	}
}

// ============================================================================
// Function Helpers
// ============================================================================

// Identity returns its input unchanged.
func Identity[T any](v T) T {
	return v
}

// Compose returns a function applying f and then g.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
