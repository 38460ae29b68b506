package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

// VisitRepo log de visitas (page_visits).
type VisitRepo struct {
	db Querier
}

// NewVisitRepository construye el repositorio.
func NewVisitRepository(db Querier) *VisitRepo {
	return &VisitRepo{db: db}
}

func (r *VisitRepo) Create(ctx context.Context, v *entity.PageVisit) error {
	query := `
		INSERT INTO page_visits (page, referrer, user_agent, ip, device, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(ctx, query, v.Page, v.Referrer, v.UserAgent, v.IP, v.Device, v.CreatedAt).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert page visit: %w", err)
	}
	return nil
}

func (r *VisitRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM page_visits`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count page visits: %w", err)
	}
	return n, nil
}

func (r *VisitRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM page_visits WHERE created_at >= $1`, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count page visits since: %w", err)
	}
	return n, nil
}

func (r *VisitRepo) TopPages(ctx context.Context, limit int) ([]repository.PageCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT page, COUNT(*) AS cnt
		FROM page_visits
		GROUP BY page
		ORDER BY cnt DESC, page ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top pages: %w", err)
	}
	defer rows.Close()
	var out []repository.PageCount
	for rows.Next() {
		var pc repository.PageCount
		if err := rows.Scan(&pc.Page, &pc.Count); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

func (r *VisitRepo) CountByDevice(ctx context.Context) ([]repository.DeviceCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT device, COUNT(*) AS cnt
		FROM page_visits
		GROUP BY device
		ORDER BY cnt DESC, device ASC`)
	if err != nil {
		return nil, fmt.Errorf("count by device: %w", err)
	}
	defer rows.Close()
	var out []repository.DeviceCount
	for rows.Next() {
		var dc repository.DeviceCount
		if err := rows.Scan(&dc.Device, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}
