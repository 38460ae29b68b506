package memrepo

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*Products)(nil)
	_ repository.PartnerRepository = (*Partners)(nil)
	_ repository.ReviewRepository  = (*Reviews)(nil)
	_ repository.StaffRepository   = (*Staff)(nil)
	_ repository.NewsRepository    = (*News)(nil)
)

// Products repositorio de productos en memoria.
type Products struct{ t *table[entity.Product] }

// NewProducts construye el repositorio vacío.
func NewProducts() *Products { return &Products{t: newTable[entity.Product]()} }

func (r *Products) Create(_ context.Context, p *entity.Product) error {
	*p = r.t.insert(func(id int64) entity.Product {
		p.ID = id
		return *p
	})
	return nil
}

func (r *Products) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if row, ok := r.t.get(id); ok {
		return &row, nil
	}
	return nil, nil
}

func (r *Products) List(_ context.Context, onlyVisible bool) ([]*entity.Product, error) {
	rows := r.t.all(func(p entity.Product) bool { return !onlyVisible || p.IsActive })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].SortOrder < rows[j].SortOrder })
	return ptrs(rows), nil
}

func (r *Products) Update(_ context.Context, p *entity.Product) (*entity.Product, error) {
	if !r.t.put(p.ID, *p) {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (r *Products) Delete(_ context.Context, id int64) (bool, error) { return r.t.remove(id), nil }

// Partners repositorio de partners en memoria.
type Partners struct{ t *table[entity.Partner] }

// NewPartners construye el repositorio vacío.
func NewPartners() *Partners { return &Partners{t: newTable[entity.Partner]()} }

func (r *Partners) Create(_ context.Context, p *entity.Partner) error {
	*p = r.t.insert(func(id int64) entity.Partner {
		p.ID = id
		return *p
	})
	return nil
}

func (r *Partners) GetByID(_ context.Context, id int64) (*entity.Partner, error) {
	if row, ok := r.t.get(id); ok {
		return &row, nil
	}
	return nil, nil
}

func (r *Partners) List(_ context.Context, onlyVisible bool) ([]*entity.Partner, error) {
	rows := r.t.all(func(p entity.Partner) bool { return !onlyVisible || p.IsActive })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].SortOrder < rows[j].SortOrder })
	return ptrs(rows), nil
}

func (r *Partners) Update(_ context.Context, p *entity.Partner) (*entity.Partner, error) {
	if !r.t.put(p.ID, *p) {
		return nil, nil
	}
	out := *p
	return &out, nil
}

func (r *Partners) UpdateLogo(_ context.Context, id int64, logoURL string) (*entity.Partner, error) {
	row, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	row.LogoURL = logoURL
	r.t.put(id, row)
	return &row, nil
}

func (r *Partners) Delete(_ context.Context, id int64) (bool, error) { return r.t.remove(id), nil }

// Reviews repositorio de opiniones en memoria.
type Reviews struct {
	t   *table[entity.Review]
	Now func() time.Time
}

// NewReviews construye el repositorio vacío.
func NewReviews() *Reviews { return &Reviews{t: newTable[entity.Review](), Now: time.Now} }

func (r *Reviews) Create(_ context.Context, rv *entity.Review) error {
	*rv = r.t.insert(func(id int64) entity.Review {
		rv.ID = id
		rv.CreatedAt = r.Now()
		return *rv
	})
	return nil
}

func (r *Reviews) GetByID(_ context.Context, id int64) (*entity.Review, error) {
	if row, ok := r.t.get(id); ok {
		return &row, nil
	}
	return nil, nil
}

func (r *Reviews) List(_ context.Context, onlyVisible bool) ([]*entity.Review, error) {
	rows := r.t.all(func(rv entity.Review) bool { return !onlyVisible || rv.IsActive })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return ptrs(rows), nil
}

func (r *Reviews) Update(_ context.Context, rv *entity.Review) (*entity.Review, error) {
	if !r.t.put(rv.ID, *rv) {
		return nil, nil
	}
	out := *rv
	return &out, nil
}

func (r *Reviews) Delete(_ context.Context, id int64) (bool, error) { return r.t.remove(id), nil }

// Staff repositorio del equipo en memoria.
type Staff struct{ t *table[entity.Staff] }

// NewStaff construye el repositorio vacío.
func NewStaff() *Staff { return &Staff{t: newTable[entity.Staff]()} }

func (r *Staff) Create(_ context.Context, s *entity.Staff) error {
	*s = r.t.insert(func(id int64) entity.Staff {
		s.ID = id
		return *s
	})
	return nil
}

func (r *Staff) GetByID(_ context.Context, id int64) (*entity.Staff, error) {
	if row, ok := r.t.get(id); ok {
		return &row, nil
	}
	return nil, nil
}

func (r *Staff) List(_ context.Context) ([]*entity.Staff, error) {
	return ptrs(r.t.all(nil)), nil
}

func (r *Staff) Update(_ context.Context, s *entity.Staff) (*entity.Staff, error) {
	if !r.t.put(s.ID, *s) {
		return nil, nil
	}
	out := *s
	return &out, nil
}

func (r *Staff) Delete(_ context.Context, id int64) (bool, error) { return r.t.remove(id), nil }

// News repositorio de noticias en memoria.
type News struct {
	t   *table[entity.News]
	Now func() time.Time
}

// NewNews construye el repositorio vacío.
func NewNews() *News { return &News{t: newTable[entity.News](), Now: time.Now} }

func (r *News) Create(_ context.Context, n *entity.News) error {
	*n = r.t.insert(func(id int64) entity.News {
		n.ID = id
		n.CreatedAt = r.Now()
		return *n
	})
	return nil
}

func (r *News) GetByID(_ context.Context, id int64) (*entity.News, error) {
	if row, ok := r.t.get(id); ok {
		return &row, nil
	}
	return nil, nil
}

func (r *News) List(_ context.Context, onlyVisible bool) ([]*entity.News, error) {
	rows := r.t.all(func(n entity.News) bool { return !onlyVisible || n.IsPublished })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return ptrs(rows), nil
}

func (r *News) Update(_ context.Context, n *entity.News) (*entity.News, error) {
	if !r.t.put(n.ID, *n) {
		return nil, nil
	}
	out := *n
	return &out, nil
}

func (r *News) Delete(_ context.Context, id int64) (bool, error) { return r.t.remove(id), nil }
