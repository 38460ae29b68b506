package memrepo

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

var _ repository.VisitRepository = (*Visits)(nil)

// Visits log de visitas en memoria. TopPages devuelve los grupos en orden de
// primera aparición (sin ordenar): el orden final lo decide el caso de uso.
type Visits struct {
	mu   sync.Mutex
	rows []entity.PageVisit
	Now  func() time.Time
}

// NewVisits construye el log vacío.
func NewVisits() *Visits {
	return &Visits{Now: time.Now}
}

func (r *Visits) Create(_ context.Context, v *entity.PageVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = int64(len(r.rows) + 1)
	if v.CreatedAt.IsZero() {
		v.CreatedAt = r.Now()
	}
	r.rows = append(r.rows, *v)
	return nil
}

// Insert añade una visita con CreatedAt explícito (datos de prueba históricos).
func (r *Visits) Insert(v entity.PageVisit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, v)
}

func (r *Visits) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *Visits) CountSince(_ context.Context, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, v := range r.rows {
		if !v.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *Visits) TopPages(_ context.Context, limit int) ([]repository.PageCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	index := map[string]int{}
	var out []repository.PageCount
	for _, v := range r.rows {
		i, ok := index[v.Page]
		if !ok {
			index[v.Page] = len(out)
			out = append(out, repository.PageCount{Page: v.Page})
			i = len(out) - 1
		}
		out[i].Count++
	}
	return out, nil
}

func (r *Visits) CountByDevice(_ context.Context) ([]repository.DeviceCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	index := map[string]int{}
	var out []repository.DeviceCount
	for _, v := range r.rows {
		i, ok := index[v.Device]
		if !ok {
			index[v.Device] = len(out)
			out = append(out, repository.DeviceCount{Device: v.Device})
			i = len(out) - 1
		}
		out[i].Count++
	}
	return out, nil
}

// All copia de las visitas guardadas.
func (r *Visits) All() []entity.PageVisit {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.PageVisit(nil), r.rows...)
}
