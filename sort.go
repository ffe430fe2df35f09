package funcdemo

// ============================================================================
// Sort Package Bindings
// ============================================================================

// SortInterface is a functional binding for sort.Interface.
type SortInterface struct {
	LenFunc  func() int
	LessFunc func(i, j int) bool
	SwapFunc func(i, j int)
}

// Len implements sort.Interface.
func (s SortInterface) Len() int {
	return s.LenFunc()
}

// Less implements sort.Interface.
func (s SortInterface) Less(i, j int) bool {
	return s.LessFunc(i, j)
}

// Swap implements sort.Interface.
func (s SortInterface) Swap(i, j int) {
	s.SwapFunc(i, j)
}

// SortSlice binds items and a comparator to sort.Interface.
//
// Example:
//
//	sort.Stable(SortSlice(persons, PersonOrder(SystemClock)))
func SortSlice[T any](items []T, c ComparatorFunc[T]) SortInterface {
	return SortInterface{
		LenFunc: func() int { return len(items) },
		LessFunc: func(i, j int) bool {
			return c(items[i], items[j]) < 0
		},
		SwapFunc: func(i, j int) {
			items[i], items[j] = items[j], items[i]
		},
	}
}
