package taxonomy

import "github.com/rpggio/termstate/internal/state"

// The helpers below patch the markers embedded in terms and translations.
// Like the state helpers they never modify their input.

// Attach adds item to items, replacing an existing marker with the same key.
func Attach[T Item](items []T, item T) []T {
	return state.Upsert(items, item, sameKey[T](item.Key()))
}

// Detach removes the marker identified by key.
func Detach[T Item](items []T, key string) []T {
	return state.Remove(items, sameKey[T](key))
}

// Refresh swaps in the new version of item where it is attached. Items
// without it are returned unchanged.
func Refresh[T Item](items []T, item T) []T {
	if _, ok := state.Find(items, sameKey[T](item.Key())); !ok {
		return items
	}
	return state.Replace(items, item, sameKey[T](item.Key()))
}

// Has reports whether the marker identified by key is attached.
func Has[T Item](items []T, key string) bool {
	_, ok := state.Find(items, sameKey[T](key))
	return ok
}

func sameKey[T Item](key string) func(T) bool {
	return func(it T) bool { return it.Key() == key }
}

// Edit attaches or detaches a single marker.
type Edit[T Item] struct {
	Item   T
	Detach bool
}

// Apply returns items with the edit applied, along with a function that
// undoes only this edit on a later version of the list. Markers attached or
// detached by other edits in the meantime are left alone.
func (e Edit[T]) Apply(items []T) ([]T, func([]T) []T) {
	key := e.Item.Key()
	prev, had := state.Find(items, sameKey[T](key))
	undo := func(cur []T) []T {
		if had {
			return Attach(cur, prev)
		}
		return Detach(cur, key)
	}
	if e.Detach {
		if !had {
			return items, func(cur []T) []T { return cur }
		}
		return Detach(items, key), undo
	}
	return Attach(items, e.Item), undo
}
