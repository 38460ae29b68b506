package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo registro clave/valor site_settings.
type SettingsRepo struct {
	db Querier
}

// NewSettingsRepository construye el repositorio.
func NewSettingsRepository(db Querier) *SettingsRepo {
	return &SettingsRepo{db: db}
}

const settingColumns = `id, key, value, category`

func scanSetting(row pgx.Row) (*entity.SiteSetting, error) {
	var s entity.SiteSetting
	if err := row.Scan(&s.ID, &s.Key, &s.Value, &s.Category); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepo) List(ctx context.Context) ([]*entity.SiteSetting, error) {
	rows, err := r.db.Query(ctx, `SELECT `+settingColumns+` FROM site_settings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return collect(rows, scanSetting)
}

func (r *SettingsRepo) ListByCategory(ctx context.Context, categories ...string) ([]*entity.SiteSetting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+settingColumns+` FROM site_settings WHERE category = ANY($1) ORDER BY id`, categories)
	if err != nil {
		return nil, fmt.Errorf("list settings by category: %w", err)
	}
	return collect(rows, scanSetting)
}

func (r *SettingsRepo) GetByKey(ctx context.Context, key string) (*entity.SiteSetting, error) {
	s, err := scanSetting(r.db.QueryRow(ctx, `SELECT `+settingColumns+` FROM site_settings WHERE key = $1`, key))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return s, nil
}

func (r *SettingsRepo) Create(ctx context.Context, s *entity.SiteSetting) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO site_settings (key, value, category) VALUES ($1, $2, $3) RETURNING id`,
		s.Key, s.Value, s.Category,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert setting: %w", err)
	}
	return nil
}

// UpdateValue no toca category: queda la de la primera inserción.
func (r *SettingsRepo) UpdateValue(ctx context.Context, key, value string) (*entity.SiteSetting, error) {
	s, err := scanSetting(r.db.QueryRow(ctx,
		`UPDATE site_settings SET value = $2 WHERE key = $1 RETURNING `+settingColumns, key, value))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update setting: %w", err)
	}
	return s, nil
}
