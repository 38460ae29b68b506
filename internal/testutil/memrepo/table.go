package memrepo

import (
	"sort"
	"sync"
)

// table almacén genérico con ids autoincrementales, base de los repositorios de contenido.
type table[T any] struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

func (t *table[T]) insert(set func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	row := set(t.nextID)
	t.rows[t.nextID] = row
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) put(id int64, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// all devuelve las filas que cumplen keep, en orden de id.
func (t *table[T]) all(keep func(T) bool) []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if keep == nil || keep(t.rows[id]) {
			out = append(out, t.rows[id])
		}
	}
	return out
}
