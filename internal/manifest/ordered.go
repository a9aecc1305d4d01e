package manifest

// OrderedMap is a minimal insertion-order-preserving map from UniqueId to a
// node value. The selection core's determinism property (spec.md §8,
// invariant 4) and the kind-iteration order in §4.1 both depend on
// observing a manifest mapping's insertion order, which a plain Go map
// cannot provide and no pack dependency supplies for a generic key/value
// pair without dragging in a much larger ordered-collections library than
// this single concern justifies — see DESIGN.md.
type OrderedMap[V any] struct {
	order []UniqueId
	byID  map[UniqueId]V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{byID: make(map[UniqueId]V)}
}

// Set inserts or overwrites the value for id. Overwriting an existing key
// does not change its position in iteration order.
func (m *OrderedMap[V]) Set(id UniqueId, v V) {
	if _, ok := m.byID[id]; !ok {
		m.order = append(m.order, id)
	}
	m.byID[id] = v
}

// Get returns the value for id and whether it was present.
func (m *OrderedMap[V]) Get(id UniqueId) (V, bool) {
	v, ok := m.byID[id]
	return v, ok
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int { return len(m.order) }

// Each calls fn for every entry in insertion order. Iteration stops early
// if fn returns false.
func (m *OrderedMap[V]) Each(fn func(UniqueId, V) bool) {
	for _, id := range m.order {
		v := m.byID[id]
		if !fn(id, v) {
			return
		}
	}
}

// Keys returns the ids in insertion order.
func (m *OrderedMap[V]) Keys() []UniqueId {
	out := make([]UniqueId, len(m.order))
	copy(out, m.order)
	return out
}
