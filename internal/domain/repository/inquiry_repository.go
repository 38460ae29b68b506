package repository

import (
	"context"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
)

// InquiryRepository define el puerto de persistencia para Inquiry.
type InquiryRepository interface {
	Create(ctx context.Context, inq *entity.Inquiry) error
	GetByID(ctx context.Context, id int64) (*entity.Inquiry, error)
	// List devuelve las solicitudes de la más reciente a la más antigua.
	List(ctx context.Context) ([]*entity.Inquiry, error)
	// UpdateStatus devuelve nil si el id no existe.
	UpdateStatus(ctx context.Context, id int64, status string) (*entity.Inquiry, error)
	// Delete devuelve false si el id no existía.
	Delete(ctx context.Context, id int64) (bool, error)
}
