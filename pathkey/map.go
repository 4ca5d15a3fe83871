package pathkey

import (
	"iter"
)

// Strategy is a consistent pair of hash and equality functions: Equal(a, b) must imply
// Hash(a) == Hash(b).
type Strategy interface {
	Hash(s string) uint64
	Equal(a, b string) bool
}

type pathStrategy struct{}

func (pathStrategy) Hash(s string) uint64 { return Hash(s) }

func (pathStrategy) Equal(a, b string) bool { return Equal(a, b) }

type foldStrategy struct{}

func (foldStrategy) Hash(s string) uint64 { return HashFold(s) }

func (foldStrategy) Equal(a, b string) bool { return EqualFold(a, b) }

var (
	// Path keys by normalized form: case, slash direction and edge slashes are ignored.
	Path Strategy = pathStrategy{} //nolint:gochecknoglobals	// Stateless strategy value
	// Fold keys by ASCII case only.
	Fold Strategy = foldStrategy{} //nolint:gochecknoglobals	// Stateless strategy value
)

type entry[V any] struct {
	key   string
	value V
}

// Map is an insertion-ordered map whose keys are hashed and compared through a Strategy.
// When several spellings of the same key are stored, the first one is kept.
//
// A Map must not be mutated concurrently. The zero value is not usable; call NewMap.
type Map[V any] struct {
	strategy Strategy
	entries  []entry[V]
	buckets  map[uint64][]int
}

// NewMap returns an empty Map using strategy. A nil strategy defaults to Path.
func NewMap[V any](strategy Strategy) *Map[V] {
	if strategy == nil {
		strategy = Path
	}

	return &Map[V]{
		strategy: strategy,
		buckets:  make(map[uint64][]int),
	}
}

// Set stores value under key. If an equal key is already present its value is replaced and its
// original spelling kept. It reports whether the key was newly added.
func (m *Map[V]) Set(key string, value V) bool {
	h := m.strategy.Hash(key)

	if idx, ok := m.find(h, key); ok {
		m.entries[idx].value = value

		return false
	}

	m.buckets[h] = append(m.buckets[h], len(m.entries))
	m.entries = append(m.entries, entry[V]{key: key, value: value})

	return true
}

// Get returns the value stored under a key equal to key.
func (m *Map[V]) Get(key string) (V, bool) {
	if idx, ok := m.find(m.strategy.Hash(key), key); ok {
		return m.entries[idx].value, true
	}

	var zero V

	return zero, false
}

// Key returns the stored spelling of a key equal to key.
func (m *Map[V]) Key(key string) (string, bool) {
	if idx, ok := m.find(m.strategy.Hash(key), key); ok {
		return m.entries[idx].key, true
	}

	return "", false
}

// Has reports whether a key equal to key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.find(m.strategy.Hash(key), key)

	return ok
}

// Delete removes the entry for key and reports whether it was present.
// Later entries keep their relative order.
func (m *Map[V]) Delete(key string) bool {
	h := m.strategy.Hash(key)

	idx, ok := m.find(h, key)
	if !ok {
		return false
	}

	m.entries = append(m.entries[:idx], m.entries[idx+1:]...)

	// Reindex: drop idx, shift everything after it down by one.
	for bh, bucket := range m.buckets {
		kept := bucket[:0]

		for _, i := range bucket {
			switch {
			case i == idx:
				continue
			case i > idx:
				i--
			}

			kept = append(kept, i)
		}

		if len(kept) == 0 {
			delete(m.buckets, bh)
		} else {
			m.buckets[bh] = kept
		}
	}

	return true
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.entries)
}

// All iterates over the entries in insertion order, yielding the stored key spelling.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns the stored key spellings in insertion order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.key)
	}

	return keys
}

func (m *Map[V]) find(h uint64, key string) (int, bool) {
	for _, idx := range m.buckets[h] {
		if m.strategy.Equal(m.entries[idx].key, key) {
			return idx, true
		}
	}

	return 0, false
}

// Set is an insertion-ordered set of keys hashed and compared through a Strategy.
type Set struct {
	m *Map[struct{}]
}

// NewSet returns a Set using strategy, holding keys.
func NewSet(strategy Strategy, keys ...string) *Set {
	s := &Set{m: NewMap[struct{}](strategy)}

	for _, key := range keys {
		s.Add(key)
	}

	return s
}

// Add inserts key and reports whether it was not already present.
func (s *Set) Add(key string) bool {
	return s.m.Set(key, struct{}{})
}

// Has reports whether a key equal to key is present.
func (s *Set) Has(key string) bool {
	return s.m.Has(key)
}

// Remove deletes key and reports whether it was present.
func (s *Set) Remove(key string) bool {
	return s.m.Delete(key)
}

// Len returns the number of keys.
func (s *Set) Len() int {
	return s.m.Len()
}

// All iterates over the keys in insertion order.
func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for key := range s.m.All() {
			if !yield(key) {
				return
			}
		}
	}
}
