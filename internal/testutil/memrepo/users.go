// Package memrepo implementa en memoria los puertos de repositorio del dominio.
// Se usa en tests de casos de uso y de handlers HTTP; respeta las mismas
// convenciones que los adaptadores PostgreSQL ((nil, nil) si no hay fila,
// ErrDuplicate en claves únicas).
package memrepo

import (
	"context"
	"sync"

	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

var _ repository.UserRepository = (*Users)(nil)

// Users repositorio de usuarios en memoria.
type Users struct {
	mu    sync.Mutex
	items map[string]entity.User
}

// NewUsers construye el repositorio vacío.
func NewUsers() *Users {
	return &Users{items: make(map[string]entity.User)}
}

func (r *Users) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	r.items[user.ID] = *user
	return nil
}

func (r *Users) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *Users) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *Users) UpdatePassword(_ context.Context, id, passwordHash string, mustChange bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil
	}
	u.PasswordHash = passwordHash
	u.MustChangePassword = mustChange
	r.items[id] = u
	return nil
}

// Len número de usuarios guardados.
func (r *Users) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
