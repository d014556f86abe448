package memory

import "slices"

// cloner is implemented by every stored entity.
type cloner[T any] interface {
	Clone() T
}

// table keeps entities by id and remembers the order in which ids first appeared.
// A grouped table also indexes ids by a group key taken from each entity when it
// is first stored; the key of an id must never change.
type table[T cloner[T]] struct {
	rows map[string]T
	ids  []string

	groupOf func(T) string
	groups  map[string][]string
}

func newTable[T cloner[T]]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func newGroupedTable[T cloner[T]](groupOf func(T) string) *table[T] {
	return &table[T]{rows: make(map[string]T), groupOf: groupOf, groups: make(map[string][]string)}
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return v.Clone(), true
}

func (t *table[T]) has(id string) bool {
	_, ok := t.rows[id]
	return ok
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.rows[id]; !ok {
		t.ids = append(t.ids, id)
		if t.groupOf != nil {
			key := t.groupOf(v)
			t.groups[key] = append(t.groups[key], id)
		}
	}
	t.rows[id] = v.Clone()
}

// groupIDs returns the ids stored under key in insertion order. It is nil for an
// ungrouped table.
func (t *table[T]) groupIDs(key string) []string {
	return slices.Clone(t.groups[key])
}

// listGroup returns the rows stored under key in insertion order.
func (t *table[T]) listGroup(key string) []T {
	ids := t.groups[key]
	if len(ids) == 0 {
		return nil
	}
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id].Clone())
	}
	return out
}

func (t *table[T]) list() []T {
	out := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.rows[id].Clone())
	}
	return out
}

func (t *table[T]) size() int {
	return len(t.ids)
}

// merge returns base with the staged rows laid over it: staged versions replace
// base rows in place and the stagedIDs not in base follow in staging order.
func merge[T cloner[T]](base []T, baseIDs []string, staged *table[T], stagedIDs []string) []T {
	out := make([]T, 0, len(base)+len(stagedIDs))
	seen := make(map[string]struct{}, len(baseIDs))
	for i, id := range baseIDs {
		seen[id] = struct{}{}
		if v, ok := staged.get(id); ok {
			out = append(out, v)
			continue
		}
		out = append(out, base[i])
	}
	for _, id := range stagedIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		v, _ := staged.get(id)
		out = append(out, v)
	}
	return out
}
