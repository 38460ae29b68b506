package memrepo

import (
	"context"
	"sync"

	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

var _ repository.SettingsRepository = (*Settings)(nil)

// Settings registro clave/valor en memoria, en orden de inserción.
type Settings struct {
	mu     sync.Mutex
	nextID int64
	rows   []entity.SiteSetting
}

// NewSettings construye el registro vacío.
func NewSettings() *Settings {
	return &Settings{}
}

func (r *Settings) List(_ context.Context) ([]*entity.SiteSetting, error) {
	return r.filter(func(entity.SiteSetting) bool { return true }), nil
}

func (r *Settings) ListByCategory(_ context.Context, categories ...string) ([]*entity.SiteSetting, error) {
	return r.filter(func(s entity.SiteSetting) bool {
		for _, c := range categories {
			if s.Category == c {
				return true
			}
		}
		return false
	}), nil
}

func (r *Settings) GetByKey(_ context.Context, key string) (*entity.SiteSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.rows {
		if s.Key == key {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (r *Settings) Create(_ context.Context, s *entity.SiteSetting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.Key == s.Key {
			return domain.ErrDuplicate
		}
	}
	r.nextID++
	s.ID = r.nextID
	r.rows = append(r.rows, *s)
	return nil
}

func (r *Settings) UpdateValue(_ context.Context, key, value string) (*entity.SiteSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].Key == key {
			r.rows[i].Value = value
			out := r.rows[i]
			return &out, nil
		}
	}
	return nil, nil
}

// Len número de filas.
func (r *Settings) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *Settings) filter(keep func(entity.SiteSetting) bool) []*entity.SiteSetting {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.SiteSetting, 0, len(r.rows))
	for _, s := range r.rows {
		if keep(s) {
			row := s
			out = append(out, &row)
		}
	}
	return out
}
