package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación de ReviewRepository.
type ReviewRepo struct {
	db Querier
}

// NewReviewRepository construye el repositorio.
func NewReviewRepository(db Querier) *ReviewRepo {
	return &ReviewRepo{db: db}
}

const reviewColumns = `id, author_name, company, text, rating, is_active, created_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var rv entity.Review
	if err := row.Scan(&rv.ID, &rv.AuthorName, &rv.Company, &rv.Text, &rv.Rating, &rv.IsActive, &rv.CreatedAt); err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepo) Create(ctx context.Context, rv *entity.Review) error {
	query := `
		INSERT INTO reviews (author_name, company, text, rating, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, rv.AuthorName, rv.Company, rv.Text, rv.Rating, rv.IsActive).
		Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *ReviewRepo) GetByID(ctx context.Context, id int64) (*entity.Review, error) {
	rv, err := scanReview(r.db.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return rv, nil
}

func (r *ReviewRepo) List(ctx context.Context, onlyVisible bool) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews`
	if onlyVisible {
		query += ` WHERE is_active`
	}
	rows, err := r.db.Query(ctx, query+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return collect(rows, scanReview)
}

func (r *ReviewRepo) Update(ctx context.Context, rv *entity.Review) (*entity.Review, error) {
	query := `
		UPDATE reviews
		SET author_name = $2, company = $3, text = $4, rating = $5, is_active = $6
		WHERE id = $1
		RETURNING ` + reviewColumns
	updated, err := scanReview(r.db.QueryRow(ctx, query,
		rv.ID, rv.AuthorName, rv.Company, rv.Text, rv.Rating, rv.IsActive,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update review: %w", err)
	}
	return updated, nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "reviews", id)
}
