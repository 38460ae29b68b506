package repository

import (
	"context"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
)

// SettingsRepository puerto del registro clave/valor site_settings.
type SettingsRepository interface {
	List(ctx context.Context) ([]*entity.SiteSetting, error)
	ListByCategory(ctx context.Context, categories ...string) ([]*entity.SiteSetting, error)
	// GetByKey devuelve (nil, nil) si la clave no existe.
	GetByKey(ctx context.Context, key string) (*entity.SiteSetting, error)
	// Create inserta una fila nueva; devuelve domain.ErrDuplicate si la clave ya existe.
	Create(ctx context.Context, s *entity.SiteSetting) error
	// UpdateValue cambia solo value (nunca category). Devuelve nil si la clave no existe.
	UpdateValue(ctx context.Context, key, value string) (*entity.SiteSetting, error)
}
