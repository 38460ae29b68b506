package memrepo

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

var _ repository.InquiryRepository = (*Inquiries)(nil)

// Inquiries repositorio de solicitudes en memoria.
type Inquiries struct {
	t   *table[entity.Inquiry]
	Now func() time.Time
}

// NewInquiries construye el repositorio vacío.
func NewInquiries() *Inquiries {
	return &Inquiries{t: newTable[entity.Inquiry](), Now: time.Now}
}

func (r *Inquiries) Create(_ context.Context, inq *entity.Inquiry) error {
	row := r.t.insert(func(id int64) entity.Inquiry {
		inq.ID = id
		inq.CreatedAt = r.Now()
		return *inq
	})
	*inq = row
	return nil
}

func (r *Inquiries) GetByID(_ context.Context, id int64) (*entity.Inquiry, error) {
	row, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *Inquiries) List(_ context.Context) ([]*entity.Inquiry, error) {
	rows := r.t.all(nil)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })
	return ptrs(rows), nil
}

func (r *Inquiries) UpdateStatus(_ context.Context, id int64, status string) (*entity.Inquiry, error) {
	row, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	row.Status = status
	r.t.put(id, row)
	return &row, nil
}

func (r *Inquiries) Delete(_ context.Context, id int64) (bool, error) {
	return r.t.remove(id), nil
}

func ptrs[T any](rows []T) []*T {
	out := make([]*T, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out
}
