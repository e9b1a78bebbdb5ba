package utils

import "sync"

// ResolveEach evaluates fn for every item in parallel and returns the
// results in input order. Each item is resolved independently, so a
// failure encoded in one result never affects the others.
func ResolveEach[T any, R any](items []T, fn func(T) R) []R {
	results := make([]R, len(items))

	var wg sync.WaitGroup
	wg.Add(len(items))
	for i := range items {
		go func(index int) {
			defer wg.Done()
			results[index] = fn(items[index])
		}(i)
	}
	wg.Wait()

	return results
}
