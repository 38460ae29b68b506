package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación de StaffRepository.
type StaffRepo struct {
	db Querier
}

// NewStaffRepository construye el repositorio.
func NewStaffRepository(db Querier) *StaffRepo {
	return &StaffRepo{db: db}
}

const staffColumns = `id, name, position, phone, email, department, is_active`

func scanStaff(row pgx.Row) (*entity.Staff, error) {
	var s entity.Staff
	if err := row.Scan(&s.ID, &s.Name, &s.Position, &s.Phone, &s.Email, &s.Department, &s.IsActive); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepo) Create(ctx context.Context, s *entity.Staff) error {
	query := `
		INSERT INTO staff (name, position, phone, email, department, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(ctx, query, s.Name, s.Position, s.Phone, s.Email, s.Department, s.IsActive).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

func (r *StaffRepo) GetByID(ctx context.Context, id int64) (*entity.Staff, error) {
	s, err := scanStaff(r.db.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return s, nil
}

// List sin orden de negocio; se ordena por id para que sea estable.
func (r *StaffRepo) List(ctx context.Context) ([]*entity.Staff, error) {
	rows, err := r.db.Query(ctx, `SELECT `+staffColumns+` FROM staff ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return collect(rows, scanStaff)
}

func (r *StaffRepo) Update(ctx context.Context, s *entity.Staff) (*entity.Staff, error) {
	query := `
		UPDATE staff
		SET name = $2, position = $3, phone = $4, email = $5, department = $6, is_active = $7
		WHERE id = $1
		RETURNING ` + staffColumns
	updated, err := scanStaff(r.db.QueryRow(ctx, query,
		s.ID, s.Name, s.Position, s.Phone, s.Email, s.Department, s.IsActive,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update staff: %w", err)
	}
	return updated, nil
}

func (r *StaffRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "staff", id)
}
