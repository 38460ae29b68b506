// Package analytics contiene el registro de visitas de la landing y su agregado
// para el panel de estadísticas.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mileusna/useragent"
	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

const topPagesLimit = 20 // páginas en el ranking de estadísticas

// TrackInput datos de una visita. Referrer ya debe venir resuelto (cuerpo o cabecera Referer).
type TrackInput struct {
	Page      string
	Referrer  string
	UserAgent string
	IP        string
}

// VisitUseCase registra visitas y calcula estadísticas.
//
// Fuente de datos: VisitRepository (append-only). No hay retención: las filas se acumulan.
type VisitUseCase struct {
	repo repository.VisitRepository
	now  func() time.Time
}

// NewVisitUseCase construye el caso de uso.
func NewVisitUseCase(repo repository.VisitRepository) *VisitUseCase {
	return &VisitUseCase{repo: repo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *VisitUseCase) WithClock(now func() time.Time) *VisitUseCase {
	uc.now = now
	return uc
}

// Track inserta una visita. Page vacío se registra como "/".
func (uc *VisitUseCase) Track(ctx context.Context, in TrackInput) error {
	page := strings.TrimSpace(in.Page)
	if page == "" {
		page = "/"
	}
	v := &entity.PageVisit{
		Page:      page,
		Referrer:  in.Referrer,
		UserAgent: in.UserAgent,
		IP:        in.IP,
		Device:    classifyDevice(in.UserAgent),
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return fmt.Errorf("registrar visita: %w", err)
	}
	return nil
}

// Stats construye el VisitStatsDTO.
//
// Cuatro consultas en paralelo:
//  1. Count                     → Total
//  2. CountSince(inicio de hoy) → Today (hora local del servidor)
//  3. TopPages(20)              → Pages
//  4. CountByDevice             → Devices
func (uc *VisitUseCase) Stats(ctx context.Context) (*dto.VisitStatsDTO, error) {
	now := uc.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type countResult struct {
		n   int64
		err error
	}
	type pagesResult struct {
		pages []repository.PageCount
		err   error
	}
	type devicesResult struct {
		devices []repository.DeviceCount
		err     error
	}

	totalCh := make(chan countResult, 1)
	todayCh := make(chan countResult, 1)
	pagesCh := make(chan pagesResult, 1)
	devicesCh := make(chan devicesResult, 1)

	go func() {
		n, err := uc.repo.Count(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountSince(ctx, todayStart)
		todayCh <- countResult{n, err}
	}()
	go func() {
		pages, err := uc.repo.TopPages(ctx, topPagesLimit)
		pagesCh <- pagesResult{pages, err}
	}()
	go func() {
		devices, err := uc.repo.CountByDevice(ctx)
		devicesCh <- devicesResult{devices, err}
	}()

	total := <-totalCh
	today := <-todayCh
	pages := <-pagesCh
	devices := <-devicesCh

	if total.err != nil {
		return nil, fmt.Errorf("estadísticas: total: %w", total.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("estadísticas: hoy: %w", today.err)
	}
	if pages.err != nil {
		return nil, fmt.Errorf("estadísticas: páginas: %w", pages.err)
	}
	if devices.err != nil {
		return nil, fmt.Errorf("estadísticas: dispositivos: %w", devices.err)
	}

	return &dto.VisitStatsDTO{
		Total:   total.n,
		Today:   today.n,
		Pages:   rankPages(pages.pages, topPagesLimit),
		Devices: rankDevices(devices.devices),
	}, nil
}

// rankPages ordena por visitas descendente; empate por página ascendente para que
// el resultado sea determinista.
func rankPages(in []repository.PageCount, limit int) []dto.PageCountDTO {
	sorted := append([]repository.PageCount(nil), in...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Page < sorted[j].Page
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]dto.PageCountDTO, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, dto.PageCountDTO{Page: p.Page, Count: p.Count})
	}
	return out
}

func rankDevices(in []repository.DeviceCount) []dto.DeviceCountDTO {
	sorted := append([]repository.DeviceCount(nil), in...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Device < sorted[j].Device
	})
	out := make([]dto.DeviceCountDTO, 0, len(sorted))
	for _, d := range sorted {
		out = append(out, dto.DeviceCountDTO{Device: d.Device, Count: d.Count})
	}
	return out
}

func classifyDevice(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return entity.DeviceUnknown
	}
	parsed := useragent.Parse(ua)
	switch {
	case parsed.Bot:
		return entity.DeviceBot
	case parsed.Tablet:
		return entity.DeviceTablet
	case parsed.Mobile:
		return entity.DeviceMobile
	case parsed.Desktop:
		return entity.DeviceDesktop
	default:
		return entity.DeviceUnknown
	}
}
