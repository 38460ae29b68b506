package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/testutil/memrepo"
)

const (
	uaDesktop = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaBot     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestStats_OrdenaPaginasPorVisitas(t *testing.T) {
	ctx := context.Background()
	repo := memrepo.NewVisits()
	uc := NewVisitUseCase(repo)

	for i := 0; i < 3; i++ {
		require.NoError(t, uc.Track(ctx, TrackInput{Page: "/b"}))
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, uc.Track(ctx, TrackInput{Page: "/a"}))
	}

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), stats.Total)
	require.Len(t, stats.Pages, 2)
	assert.Equal(t, "/a", stats.Pages[0].Page)
	assert.Equal(t, int64(5), stats.Pages[0].Count)
	assert.Equal(t, "/b", stats.Pages[1].Page)
	assert.Equal(t, int64(3), stats.Pages[1].Count)
}

func TestStats_EmpateOrdenaPorPagina(t *testing.T) {
	ctx := context.Background()
	uc := NewVisitUseCase(memrepo.NewVisits())

	require.NoError(t, uc.Track(ctx, TrackInput{Page: "/z"}))
	require.NoError(t, uc.Track(ctx, TrackInput{Page: "/m"}))

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.Pages, 2)
	assert.Equal(t, "/m", stats.Pages[0].Page)
	assert.Equal(t, "/z", stats.Pages[1].Page)
}

func TestStats_LimitaA20Paginas(t *testing.T) {
	ctx := context.Background()
	uc := NewVisitUseCase(memrepo.NewVisits())

	for i := 0; i < 25; i++ {
		require.NoError(t, uc.Track(ctx, TrackInput{Page: fmt.Sprintf("/p%02d", i)}))
	}

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(25), stats.Total)
	assert.Len(t, stats.Pages, 20)
}

func TestStats_HoyCuentaDesdeMedianoche(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 10, 15, 30, 0, 0, time.Local)
	repo := memrepo.NewVisits()
	repo.Insert(entity.PageVisit{Page: "/", CreatedAt: now.Add(-24 * time.Hour)})
	repo.Insert(entity.PageVisit{Page: "/", CreatedAt: now})

	stats, err := NewVisitUseCase(repo).WithClock(fixedClock(now)).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Today)
}

func TestStats_SinVisitas(t *testing.T) {
	stats, err := NewVisitUseCase(memrepo.NewVisits()).Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Today)
	assert.Empty(t, stats.Pages)
	assert.Empty(t, stats.Devices)
}

func TestTrack_PaginaPorDefectoYDispositivo(t *testing.T) {
	ctx := context.Background()
	repo := memrepo.NewVisits()
	uc := NewVisitUseCase(repo)

	require.NoError(t, uc.Track(ctx, TrackInput{UserAgent: uaDesktop, Referrer: "https://ya.ru", IP: "10.0.0.1"}))
	require.NoError(t, uc.Track(ctx, TrackInput{Page: "/catalog", UserAgent: uaIPhone}))
	require.NoError(t, uc.Track(ctx, TrackInput{Page: "/catalog", UserAgent: uaBot}))
	require.NoError(t, uc.Track(ctx, TrackInput{Page: "/catalog"}))

	rows := repo.All()
	require.Len(t, rows, 4)
	assert.Equal(t, "/", rows[0].Page)
	assert.Equal(t, "https://ya.ru", rows[0].Referrer)
	assert.Equal(t, "10.0.0.1", rows[0].IP)
	assert.Equal(t, entity.DeviceDesktop, rows[0].Device)
	assert.Equal(t, entity.DeviceMobile, rows[1].Device)
	assert.Equal(t, entity.DeviceBot, rows[2].Device)
	assert.Equal(t, entity.DeviceUnknown, rows[3].Device)

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats.Devices, 4)
}
