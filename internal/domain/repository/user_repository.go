package repository

import (
	"context"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) si no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// UpdatePassword reemplaza el hash y el flag de cambio obligatorio en una sola sentencia.
	UpdatePassword(ctx context.Context, id, passwordHash string, mustChange bool) error
}
