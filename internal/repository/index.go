package repository

// GroupBy builds a secondary index from records to the values of keyOf.
// Each group keeps the input order. The index is a snapshot and is not
// updated when the source repository changes.
func GroupBy[T any, K comparable](records []T, keyOf func(T) K) map[K][]T {
	index := make(map[K][]T)
	for _, record := range records {
		k := keyOf(record)
		index[k] = append(index[k], record)
	}
	return index
}
