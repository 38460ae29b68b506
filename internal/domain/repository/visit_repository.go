package repository

import (
	"context"
	"time"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
)

// PageCount número de visitas de una página.
type PageCount struct {
	Page  string
	Count int64
}

// DeviceCount número de visitas por clase de dispositivo.
type DeviceCount struct {
	Device string
	Count  int64
}

// VisitRepository puerto del log de visitas (solo inserción + agregados de lectura).
type VisitRepository interface {
	Create(ctx context.Context, v *entity.PageVisit) error
	Count(ctx context.Context) (int64, error)
	// CountSince cuenta filas con created_at >= since.
	CountSince(ctx context.Context, since time.Time) (int64, error)
	// TopPages devuelve como máximo limit páginas, de más a menos visitadas.
	TopPages(ctx context.Context, limit int) ([]PageCount, error)
	CountByDevice(ctx context.Context) ([]DeviceCount, error)
}
