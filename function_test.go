package funcdemo

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunnableFunc(t *testing.T) {
	var calls []string
	first := RunnableFunc(func() { calls = append(calls, "first") })
	second := RunnableFunc(func() { calls = append(calls, "second") })

	var r Runnable = first.Compose(second).Compose(first.Empty())
	r.Run()

	assert.Equal(t, []string{"first", "second"}, calls)
}

type greeter struct{ said *[]string }

func (g greeter) sayHello() { *g.said = append(*g.said, "hello") }

func TestRunnableFunc_MethodValue(t *testing.T) {
	var said []string
	g := greeter{said: &said}

	RunnableFunc(g.sayHello).Run()

	assert.Equal(t, []string{"hello"}, said)
}

func TestSupplierFunc_Memoize(t *testing.T) {
	calls := 0
	s := SupplierFunc[int](func() int {
		calls++
		return 42
	}).Memoize()

	assert.Equal(t, 0, calls, "memoized supplier must not run before Get")
	assert.Equal(t, 42, s.Get())
	assert.Equal(t, 42, s.Get())
	assert.Equal(t, 1, calls)
}

func TestSupplierFunc_Memoize_Concurrent(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	s := SupplierFunc[string](func() string {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return "once"
	}).Memoize()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "once", s.Get())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}

func TestPredicateFunc(t *testing.T) {
	even := PredicateFunc[int](func(i int) bool { return i%2 == 0 })
	positive := PredicateFunc[int](func(i int) bool { return i > 0 })

	tests := []struct {
		name string
		p    PredicateFunc[int]
		in   int
		want bool
	}{
		{"and both", even.And(positive), 4, true},
		{"and one", even.And(positive), -4, false},
		{"or one", even.Or(positive), 3, true},
		{"or none", even.Or(positive), -3, false},
		{"negate", even.Negate(), 3, true},
		{"not", Not[int](even), 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Test(tt.in))
		})
	}
}

func TestPredicateFunc_ShortCircuits(t *testing.T) {
	evaluated := false
	spy := PredicateFunc[int](func(int) bool {
		evaluated = true
		return true
	})
	never := PredicateFunc[int](func(int) bool { return false })
	always := PredicateFunc[int](func(int) bool { return true })

	never.And(spy).Test(1)
	always.Or(spy).Test(1)

	assert.False(t, evaluated)
}

func TestConsumerFunc_AndThen(t *testing.T) {
	var got []string
	record := func(prefix string) ConsumerFunc[int] {
		return func(i int) { got = append(got, prefix+strconv.Itoa(i)) }
	}

	c := record("a").AndThen(record("b")).AndThen(ConsumerFunc[int](nil).Empty())
	c.Accept(1)

	assert.Equal(t, []string{"a1", "b1"}, got)
}

func TestCompose(t *testing.T) {
	lenThenDouble := Compose(func(s string) int { return len(s) }, func(n int) int { return n * 2 })

	assert.Equal(t, 10, lenThenDouble("hello"))
	assert.Equal(t, "same", Identity("same"))
}
