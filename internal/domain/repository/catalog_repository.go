package repository

import (
	"context"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
)

// Puertos del contenido editable de la landing. Todos siguen la misma convención:
// GetByID y Update devuelven nil si el id no existe; Delete devuelve false.
// El flag onlyVisible filtra por IsActive / IsPublished para el público.

// ProductRepository persistencia de Product; List ordena por sort_order ascendente.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context, onlyVisible bool) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PartnerRepository persistencia de Partner; List ordena por sort_order ascendente.
type PartnerRepository interface {
	Create(ctx context.Context, p *entity.Partner) error
	GetByID(ctx context.Context, id int64) (*entity.Partner, error)
	List(ctx context.Context, onlyVisible bool) ([]*entity.Partner, error)
	Update(ctx context.Context, p *entity.Partner) (*entity.Partner, error)
	UpdateLogo(ctx context.Context, id int64, logoURL string) (*entity.Partner, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ReviewRepository persistencia de Review; List ordena por created_at descendente.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	GetByID(ctx context.Context, id int64) (*entity.Review, error)
	List(ctx context.Context, onlyVisible bool) ([]*entity.Review, error)
	Update(ctx context.Context, r *entity.Review) (*entity.Review, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// StaffRepository persistencia de Staff (sin vista pública).
type StaffRepository interface {
	Create(ctx context.Context, s *entity.Staff) error
	GetByID(ctx context.Context, id int64) (*entity.Staff, error)
	List(ctx context.Context) ([]*entity.Staff, error)
	Update(ctx context.Context, s *entity.Staff) (*entity.Staff, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// NewsRepository persistencia de News; List ordena por created_at descendente.
type NewsRepository interface {
	Create(ctx context.Context, n *entity.News) error
	GetByID(ctx context.Context, id int64) (*entity.News, error)
	List(ctx context.Context, onlyVisible bool) ([]*entity.News, error)
	Update(ctx context.Context, n *entity.News) (*entity.News, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
