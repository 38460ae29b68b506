package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación de PartnerRepository.
type PartnerRepo struct {
	db Querier
}

// NewPartnerRepository construye el repositorio.
func NewPartnerRepository(db Querier) *PartnerRepo {
	return &PartnerRepo{db: db}
}

const partnerColumns = `id, name, logo_url, brand_color, is_active, sort_order`

func scanPartner(row pgx.Row) (*entity.Partner, error) {
	var p entity.Partner
	if err := row.Scan(&p.ID, &p.Name, &p.LogoURL, &p.BrandColor, &p.IsActive, &p.SortOrder); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartnerRepo) Create(ctx context.Context, p *entity.Partner) error {
	query := `
		INSERT INTO partners (name, logo_url, brand_color, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRow(ctx, query, p.Name, p.LogoURL, p.BrandColor, p.IsActive, p.SortOrder).Scan(&p.ID); err != nil {
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

func (r *PartnerRepo) GetByID(ctx context.Context, id int64) (*entity.Partner, error) {
	return r.one(ctx, "get partner", `SELECT `+partnerColumns+` FROM partners WHERE id = $1`, id)
}

func (r *PartnerRepo) List(ctx context.Context, onlyVisible bool) ([]*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners`
	if onlyVisible {
		query += ` WHERE is_active`
	}
	rows, err := r.db.Query(ctx, query+` ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return collect(rows, scanPartner)
}

func (r *PartnerRepo) Update(ctx context.Context, p *entity.Partner) (*entity.Partner, error) {
	query := `
		UPDATE partners
		SET name = $2, logo_url = $3, brand_color = $4, is_active = $5, sort_order = $6
		WHERE id = $1
		RETURNING ` + partnerColumns
	return r.one(ctx, "update partner", query, p.ID, p.Name, p.LogoURL, p.BrandColor, p.IsActive, p.SortOrder)
}

// UpdateLogo cambia solo logo_url.
func (r *PartnerRepo) UpdateLogo(ctx context.Context, id int64, logoURL string) (*entity.Partner, error) {
	return r.one(ctx, "update partner logo",
		`UPDATE partners SET logo_url = $2 WHERE id = $1 RETURNING `+partnerColumns, id, logoURL)
}

func (r *PartnerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "partners", id)
}

func (r *PartnerRepo) one(ctx context.Context, op, query string, args ...any) (*entity.Partner, error) {
	p, err := scanPartner(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
