package state

// The helpers below never modify their input, so slices held by earlier
// snapshots stay intact.

// Prepend returns a new slice with item in front of items.
func Prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// Replace returns a copy of items where every element matching is swapped for
// item.
func Replace[T any](items []T, item T, match func(T) bool) []T {
	out := make([]T, len(items))
	for i, it := range items {
		if match(it) {
			out[i] = item
			continue
		}
		out[i] = it
	}
	return out
}

// Upsert replaces the matching element, or appends item when none matches.
func Upsert[T any](items []T, item T, match func(T) bool) []T {
	for _, it := range items {
		if match(it) {
			return Replace(items, item, match)
		}
	}
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Remove returns a copy of items without the matching elements.
func Remove[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Map returns a copy of items with fn applied to each element.
func Map[T any](items []T, fn func(T) T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = fn(it)
	}
	return out
}

// Find returns the first matching element.
func Find[T any](items []T, match func(T) bool) (T, bool) {
	for _, it := range items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}
