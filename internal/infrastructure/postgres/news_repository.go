package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

var _ repository.NewsRepository = (*NewsRepo)(nil)

// NewsRepo implementación de NewsRepository.
type NewsRepo struct {
	db Querier
}

// NewNewsRepository construye el repositorio.
func NewNewsRepository(db Querier) *NewsRepo {
	return &NewsRepo{db: db}
}

const newsColumns = `id, title, content, category, is_published, created_at`

func scanNews(row pgx.Row) (*entity.News, error) {
	var n entity.News
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &n.IsPublished, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NewsRepo) Create(ctx context.Context, n *entity.News) error {
	query := `
		INSERT INTO news (title, content, category, is_published)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, n.Title, n.Content, n.Category, n.IsPublished).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert news: %w", err)
	}
	return nil
}

func (r *NewsRepo) GetByID(ctx context.Context, id int64) (*entity.News, error) {
	n, err := scanNews(r.db.QueryRow(ctx, `SELECT `+newsColumns+` FROM news WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get news: %w", err)
	}
	return n, nil
}

func (r *NewsRepo) List(ctx context.Context, onlyVisible bool) ([]*entity.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news`
	if onlyVisible {
		query += ` WHERE is_published`
	}
	rows, err := r.db.Query(ctx, query+` ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return collect(rows, scanNews)
}

func (r *NewsRepo) Update(ctx context.Context, n *entity.News) (*entity.News, error) {
	query := `
		UPDATE news
		SET title = $2, content = $3, category = $4, is_published = $5
		WHERE id = $1
		RETURNING ` + newsColumns
	updated, err := scanNews(r.db.QueryRow(ctx, query, n.ID, n.Title, n.Content, n.Category, n.IsPublished))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update news: %w", err)
	}
	return updated, nil
}

func (r *NewsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "news", id)
}
