package sortable

import "fmt"

// slot is an entry of the reference sequence: an item and the visual slot
// id it carried when the order was last committed.
type slot[T any] struct {
	item T
	id   int
}

// IndexMap maps collection positions to visual slots.
//
// records is kept in render order so that element identity survives
// reorders; ref is the last committed visual order.
type IndexMap[T any] struct {
	records []Record[T]
	ref     []slot[T]
}

// NewIndexMap builds a map where every item sits at its own position.
func NewIndexMap[T any](items []T) *IndexMap[T] {
	m := &IndexMap[T]{}
	m.Reset(items)
	return m
}

// Reset rebuilds the map from scratch, discarding any visual-order memory.
func (m *IndexMap[T]) Reset(items []T) {
	m.records = make([]Record[T], len(items))
	m.ref = make([]slot[T], len(items))
	for i, item := range items {
		m.records[i] = Record[T]{Item: item, ID: i}
		m.ref[i] = slot[T]{item: item, id: i}
	}
}

// Len returns the number of position records.
func (m *IndexMap[T]) Len() int {
	return len(m.records)
}

// Items returns the items in committed visual order.
func (m *IndexMap[T]) Items() []T {
	items := make([]T, len(m.ref))
	for i, s := range m.ref {
		items[i] = s.item
	}
	return items
}

// Records returns a copy of the position records in render order.
func (m *IndexMap[T]) Records() []Record[T] {
	return append([]Record[T](nil), m.records...)
}

// Ordered returns the record items read in ID order.
func (m *IndexMap[T]) Ordered() []T {
	items := make([]T, len(m.records))
	for _, r := range m.records {
		if r.ID >= 0 && r.ID < len(items) {
			items[r.ID] = r.Item
		}
	}
	return items
}

// Commit records a new visual order. order lists, for each visual position,
// the slot id the element at that position carried before the drop.
func (m *IndexMap[T]) Commit(order []int) error {
	if len(order) != len(m.ref) {
		return fmt.Errorf("%w: %d slots for %d items", ErrSlotMismatch, len(order), len(m.ref))
	}
	byID := make(map[int]T, len(m.ref))
	for _, s := range m.ref {
		byID[s.id] = s.item
	}
	ref := make([]slot[T], len(order))
	seen := make(map[int]bool, len(order))
	for i, id := range order {
		item, ok := byID[id]
		if !ok || seen[id] {
			return fmt.Errorf("%w: slot %d at position %d", ErrSlotMismatch, id, i)
		}
		seen[id] = true
		ref[i] = slot[T]{item: item, id: id}
	}
	m.ref = ref
	return nil
}

// Resolve re-derives every record's ID from its position in the committed
// order, then restamps the committed order with positional ids so that a
// repeated Resolve changes nothing.
func (m *IndexMap[T]) Resolve() {
	rank := make(map[int]int, len(m.ref))
	for i, s := range m.ref {
		rank[s.id] = i
	}
	for i := range m.records {
		if r, ok := rank[m.records[i].ID]; ok {
			m.records[i].ID = r
		} else {
			m.records[i].ID = -1
		}
	}
	for i := range m.ref {
		m.ref[i].id = i
	}
}

// Refresh replaces the stored values with items, given in committed order,
// without touching any ID. It expects a resolved map and is a no-op when
// the lengths differ.
func (m *IndexMap[T]) Refresh(items []T) {
	if len(items) != len(m.ref) {
		return
	}
	for i := range m.ref {
		m.ref[i].item = items[i]
	}
	for i := range m.records {
		if id := m.records[i].ID; id >= 0 && id < len(items) {
			m.records[i].Item = items[id]
		}
	}
}
