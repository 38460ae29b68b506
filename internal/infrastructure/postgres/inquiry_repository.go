package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

// InquiryRepo implementación de InquiryRepository.
type InquiryRepo struct {
	db Querier
}

// NewInquiryRepository construye el repositorio.
func NewInquiryRepository(db Querier) *InquiryRepo {
	return &InquiryRepo{db: db}
}

const inquiryColumns = `id, name, phone, email, company, message, status, created_at`

func scanInquiry(row pgx.Row) (*entity.Inquiry, error) {
	var i entity.Inquiry
	if err := row.Scan(&i.ID, &i.Name, &i.Phone, &i.Email, &i.Company, &i.Message, &i.Status, &i.CreatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

// Create inserta la solicitud; id y created_at los asigna la base.
func (r *InquiryRepo) Create(ctx context.Context, inq *entity.Inquiry) error {
	query := `
		INSERT INTO inquiries (name, phone, email, company, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		inq.Name, inq.Phone, inq.Email, inq.Company, inq.Message, inq.Status,
	).Scan(&inq.ID, &inq.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

func (r *InquiryRepo) GetByID(ctx context.Context, id int64) (*entity.Inquiry, error) {
	inq, err := scanInquiry(r.db.QueryRow(ctx, `SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return inq, nil
}

func (r *InquiryRepo) List(ctx context.Context) ([]*entity.Inquiry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+inquiryColumns+` FROM inquiries ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return collect(rows, scanInquiry)
}

func (r *InquiryRepo) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Inquiry, error) {
	inq, err := scanInquiry(r.db.QueryRow(ctx,
		`UPDATE inquiries SET status = $2 WHERE id = $1 RETURNING `+inquiryColumns, id, status))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update inquiry status: %w", err)
	}
	return inq, nil
}

func (r *InquiryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "inquiries", id)
}

// deleteByID borra una fila por id; table es siempre un literal del paquete.
func deleteByID(ctx context.Context, db Querier, table string, id int64) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}
