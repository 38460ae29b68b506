package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/woodini-site/internal/application/analytics"
	"github.com/jhoicas/woodini-site/internal/application/auth"
	"github.com/jhoicas/woodini-site/internal/application/settings"
	"github.com/jhoicas/woodini-site/internal/application/upload"
	"github.com/jhoicas/woodini-site/internal/application/usecase"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
	"github.com/jhoicas/woodini-site/internal/infrastructure/filestore"
	apphttp "github.com/jhoicas/woodini-site/internal/interfaces/http"
	"github.com/jhoicas/woodini-site/internal/testutil/memrepo"
	"github.com/jhoicas/woodini-site/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-session-secret"

type testServer struct {
	app      *fiber.App
	products *memrepo.Products
	visits   *memrepo.Visits
	public   afero.Fs
	uploads  afero.Fs
}

// newTestServer monta el router completo sobre repositorios en memoria y un
// administrador por defecto (admin / admin123).
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := memrepo.NewUsers()
	authUC := auth.NewAuthUseCase(users)
	created, err := authUC.EnsureDefaultAdmin(context.Background())
	require.NoError(t, err)
	require.True(t, created)

	products := memrepo.NewProducts()
	partners := memrepo.NewPartners()
	visits := memrepo.NewVisits()
	publicFS := afero.NewMemMapFs()
	uploadsFS := afero.NewMemMapFs()
	publicStore := filestore.New(publicFS)
	uploadsStore := filestore.New(uploadsFS)

	log := logger.Nop()
	app := apphttp.NewApp("woodini-test", log)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		InquiryUC:   usecase.NewInquiryUseCase(memrepo.NewInquiries()),
		ProductUC:   usecase.NewProductUseCase(products),
		PartnerUC:   usecase.NewPartnerUseCase(partners),
		ReviewUC:    usecase.NewReviewUseCase(memrepo.NewReviews()),
		StaffUC:     usecase.NewStaffUseCase(memrepo.NewStaff()),
		NewsUC:      usecase.NewNewsUseCase(memrepo.NewNews()),
		SettingsUC:  settings.NewSettingsUseCase(memrepo.NewSettings()),
		VisitUC:     analytics.NewVisitUseCase(visits),
		UploadUC:    upload.NewUploadUseCase(partners, publicStore, uploadsStore, "price.pdf"),
		Sessions:    apphttp.NewSessionManager(apphttp.SessionConfig{}),
		CookieKey:   apphttp.CookieKeyFromSecret(testSecret),
		PublicFiles: publicStore.HTTP(),
		UploadFiles: uploadsStore.HTTP(),
		PriceFile:   "price.pdf",
		Log:         log,
	})

	return &testServer{app: app, products: products, visits: visits, public: publicFS, uploads: uploadsFS}
}

// do ejecuta la petición con las cookies dadas; body puede ser nil, string, []byte o un valor JSON.
func (s *testServer) do(t *testing.T, method, path string, body any, cookies []*http.Cookie, headers ...string) *http.Response {
	t.Helper()

	var r io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case []byte:
		r = bytes.NewReader(b)
		contentType = "application/octet-stream"
	case string:
		r = strings.NewReader(b)
		contentType = "application/octet-stream"
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
		contentType = fiber.MIMEApplicationJSON
	}

	req := httptest.NewRequest(method, path, r)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login inicia sesión como admin y devuelve las cookies de la respuesta.
func (s *testServer) login(t *testing.T) []*http.Cookie {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin", "password": auth.DefaultAdminPassword,
	}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies, "el login debe emitir la cookie de sesión")
	return cookies
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_LoginMeLogout(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	cookies := s.login(t)

	resp = s.do(t, http.MethodGet, "/api/auth/me", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	me := decode[map[string]any](t, resp)
	assert.Equal(t, "admin", me["username"])
	assert.Equal(t, true, me["mustChangePassword"])
	assert.NotContains(t, me, "passwordHash")

	resp = s.do(t, http.MethodPost, "/api/auth/logout", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decode[map[string]any](t, resp)["ok"])

	// La cookie anterior ya no identifica a nadie
	resp = s.do(t, http.MethodGet, "/api/auth/me", nil, cookies)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_LoginCredencialesInvalidas(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin", "password": "incorrecta",
	}, nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", decode[map[string]any](t, resp)["code"])

	resp = s.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "nadie", "password": "x",
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_ChangePassword(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	resp := s.do(t, http.MethodPost, "/api/auth/change-password", map[string]string{
		"currentPassword": "otra", "newPassword": "nueva-clave",
	}, cookies)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_CURRENT_PASSWORD", decode[map[string]any](t, resp)["code"])

	resp = s.do(t, http.MethodPost, "/api/auth/change-password", map[string]string{
		"currentPassword": auth.DefaultAdminPassword, "newPassword": "nueva-clave",
	}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decode[map[string]any](t, resp)["ok"])

	resp = s.do(t, http.MethodGet, "/api/auth/me", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, decode[map[string]any](t, resp)["mustChangePassword"])

	resp = s.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin", "password": "nueva-clave",
	}, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestChangePassword_SinSesion(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/auth/change-password", map[string]string{
		"currentPassword": auth.DefaultAdminPassword, "newPassword": "nueva-clave",
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Solicitudes
// ──────────────────────────────────────────────────────────────────────────────

func TestInquiries_FlujoCompleto(t *testing.T) {
	s := newTestServer(t)

	// Alta pública
	resp := s.do(t, http.MethodPost, "/api/inquiries", map[string]string{
		"name": "Иван", "phone": "+7 900 000 00 00", "message": "Нужна консультация",
	}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[map[string]any](t, resp)
	assert.Equal(t, "new", created["status"])
	id := int64(created["id"].(float64))

	// Listado solo con sesión
	resp = s.do(t, http.MethodGet, "/api/inquiries", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	cookies := s.login(t)
	path := "/api/inquiries/" + itoa(id)

	resp = s.do(t, http.MethodPatch, path+"/status", map[string]string{"status": "in_progress"}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "in_progress", decode[map[string]any](t, resp)["status"])

	resp = s.do(t, http.MethodPatch, path+"/status", map[string]string{"status": "archivada"}, cookies)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, path, nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/inquiries", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]map[string]any](t, resp))

	resp = s.do(t, http.MethodDelete, path, nil, cookies)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInquiries_SinNombre(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/inquiries", map[string]string{"phone": "123"}, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[map[string]any](t, resp)["code"])
}

func TestInquiries_CuerpoInvalido(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader("{no es json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_DeleteSinSesionNoModifica(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	resp := s.do(t, http.MethodPost, "/api/products", map[string]any{"name": "Дверь"}, cookies)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := int64(decode[map[string]any](t, resp)["id"].(float64))

	resp = s.do(t, http.MethodDelete, "/api/products/"+itoa(id), nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/products/"+itoa(id), nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Дверь", decode[map[string]any](t, resp)["name"])
}

func TestProducts_VisibilidadPublica(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	resp := s.do(t, http.MethodPost, "/api/products", map[string]any{"name": "Активный", "sortOrder": 2}, cookies)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = s.do(t, http.MethodPost, "/api/products", map[string]any{"name": "Скрытый", "isActive": false, "sortOrder": 1}, cookies)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	hiddenID := int64(decode[map[string]any](t, resp)["id"].(float64))

	resp = s.do(t, http.MethodGet, "/api/products", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	public := decode[[]map[string]any](t, resp)
	require.Len(t, public, 1)
	assert.Equal(t, "Активный", public[0]["name"])

	resp = s.do(t, http.MethodGet, "/api/products/"+itoa(hiddenID), nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/products", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	all := decode[[]map[string]any](t, resp)
	require.Len(t, all, 2)
	assert.Equal(t, "Скрытый", all[0]["name"], "orden por sortOrder")
}

func TestProducts_NoEncontrado(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	resp := s.do(t, http.MethodGet, "/api/products/999", nil, cookies)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[map[string]any](t, resp)["code"])

	resp = s.do(t, http.MethodPatch, "/api/products/999", map[string]any{"name": "x"}, cookies)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/products/abc", nil, cookies)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStaff_RequiereSesion(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/staff", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	cookies := s.login(t)
	resp = s.do(t, http.MethodPost, "/api/staff", map[string]any{"name": "Мария", "position": "Менеджер"}, cookies)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/staff", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]map[string]any](t, resp), 1)
}

func TestNews_FeedSoloPublicadas(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	resp := s.do(t, http.MethodPut, "/api/settings/seo_title", map[string]string{"value": "Woodini", "category": "seo"}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/news", map[string]any{"title": "Открытие", "content": "<p>Скоро</p>", "isPublished": true}, cookies)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = s.do(t, http.MethodPost, "/api/news", map[string]any{"title": "Черновик", "content": "...", "isPublished": false}, cookies)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/news", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]map[string]any](t, resp), 1)

	resp = s.do(t, http.MethodGet, "/api/news/feed.xml", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/rss+xml")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<title>Woodini</title>")
	assert.Contains(t, string(raw), "Открытие")
	assert.NotContains(t, string(raw), "Черновик")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes
// ──────────────────────────────────────────────────────────────────────────────

func TestSettings_UpsertYLecturaPublica(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPut, "/api/settings/phone", map[string]string{"value": "+7 495 000 00 00"}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	cookies := s.login(t)
	resp = s.do(t, http.MethodPut, "/api/settings/phone", map[string]string{"value": "+7 495 000 00 00", "category": "contacts"}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// La categoría no cambia en escrituras posteriores
	resp = s.do(t, http.MethodPut, "/api/settings/phone", map[string]string{"value": "+7 495 111 11 11", "category": "general"}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[map[string]any](t, resp)
	assert.Equal(t, "contacts", updated["category"])
	assert.Equal(t, "+7 495 111 11 11", updated["value"])

	resp = s.do(t, http.MethodPut, "/api/settings/phone", map[string]string{"category": "contacts"}, cookies)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "value es obligatorio")

	resp = s.do(t, http.MethodGet, "/api/settings/phone", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "+7 495 111 11 11", decode[map[string]any](t, resp)["value"])

	resp = s.do(t, http.MethodGet, "/api/settings/fax", nil, cookies)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/settings/public", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	public := decode[[]map[string]any](t, resp)
	require.Len(t, public, 1)
	assert.Equal(t, "phone", public[0]["key"])
}

func TestSettings_ClaveSobreviveAPeticionesPosteriores(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	resp := s.do(t, http.MethodPut, "/api/settings/phone", map[string]string{"value": "+7 495 000 00 00", "category": "contacts"}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Peticiones con rutas más largas reutilizan los buffers de fasthttp
	for i := 0; i < 5; i++ {
		resp = s.do(t, http.MethodGet, "/api/products/xxxxxxxxxxxxxxx", nil, cookies)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}

	resp = s.do(t, http.MethodGet, "/api/settings", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	all := decode[[]map[string]any](t, resp)
	require.Len(t, all, 1)
	assert.Equal(t, "phone", all[0]["key"])
	assert.Equal(t, "contacts", all[0]["category"])
}

func TestSettings_ClaveConEscapes(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	resp := s.do(t, http.MethodPut, "/api/settings/hero%20banner", map[string]string{"value": "{}", "category": "content"}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "hero banner", decode[map[string]any](t, resp)["key"])

	resp = s.do(t, http.MethodGet, "/api/settings/hero%20banner", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "hero banner", decode[map[string]any](t, resp)["key"])
}

func TestContent_Secciones(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	resp := s.do(t, http.MethodPut, "/api/settings/hero", map[string]string{
		"value": `{"title":"Двери на заказ"}`, "category": "content",
	}, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/content", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	content := decode[map[string]map[string]any](t, resp)
	assert.Equal(t, "Двери на заказ", content["hero"]["title"])

	resp = s.do(t, http.MethodGet, "/api/content/hero", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Двери на заказ", decode[map[string]any](t, resp)["title"])

	resp = s.do(t, http.MethodGet, "/api/content/faq", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Analítica
// ──────────────────────────────────────────────────────────────────────────────

func TestTrack_YEstadisticas(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/track", map[string]string{"page": "/catalog"}, nil,
		fiber.HeaderUserAgent, "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
		fiber.HeaderReferer, "https://ya.ru/")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Cuerpo vacío: página por defecto
	resp = s.do(t, http.MethodPost, "/api/track", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	rows := s.visits.All()
	require.Len(t, rows, 2)
	assert.Equal(t, "https://ya.ru/", rows[0].Referrer)
	assert.Equal(t, "mobile", rows[0].Device)
	assert.Equal(t, "/", rows[1].Page)

	resp = s.do(t, http.MethodGet, "/api/stats/visits", nil, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	cookies := s.login(t)
	resp = s.do(t, http.MethodGet, "/api/stats/visits", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	stats := decode[map[string]any](t, resp)
	assert.Equal(t, float64(2), stats["total"])
	assert.Equal(t, float64(2), stats["today"])
}

func TestTrack_CabecerasSobrevivenAPeticionesPosteriores(t *testing.T) {
	s := newTestServer(t)
	const ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	resp := s.do(t, http.MethodPost, "/api/track", map[string]string{"page": "/"}, nil,
		fiber.HeaderUserAgent, ua, fiber.HeaderReferer, "https://ya.ru/")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for i := 0; i < 5; i++ {
		s.do(t, http.MethodGet, "/api/products", nil, nil,
			fiber.HeaderUserAgent, strings.Repeat("z", len(ua)), fiber.HeaderReferer, "https://zzzzzz/")
	}

	rows := s.visits.All()
	require.Len(t, rows, 1)
	assert.Equal(t, ua, rows[0].UserAgent)
	assert.Equal(t, "https://ya.ru/", rows[0].Referrer)
}

// failingVisits almacén de visitas que siempre falla.
type failingVisits struct{}

var errStore = errors.New("conexión perdida")

func (failingVisits) Create(context.Context, *entity.PageVisit) error { return errStore }
func (failingVisits) Count(context.Context) (int64, error) { return 0, errStore }
func (failingVisits) CountSince(context.Context, time.Time) (int64, error) {
	return 0, errStore
}
func (failingVisits) TopPages(context.Context, int) ([]repository.PageCount, error) {
	return nil, errStore
}
func (failingVisits) CountByDevice(context.Context) ([]repository.DeviceCount, error) {
	return nil, errStore
}

func TestTrack_ErrorDelAlmacen(t *testing.T) {
	app := apphttp.NewApp("woodini-test", logger.Nop())
	apphttp.Router(app, apphttp.RouterDeps{
		VisitUC:  analytics.NewVisitUseCase(failingVisits{}),
		Sessions: apphttp.NewSessionManager(apphttp.SessionConfig{}),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/track", strings.NewReader(`{"page":"/"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.Contains(t, body["message"], "conexión perdida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Subidas
// ──────────────────────────────────────────────────────────────────────────────

func TestUploadPrice(t *testing.T) {
	s := newTestServer(t)

	pdf := []byte("%PDF-1.7\n...contenido...")
	resp := s.do(t, http.MethodPost, "/api/upload-price", pdf, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	cookies := s.login(t)
	resp = s.do(t, http.MethodPost, "/api/upload-price", "esto no es un pdf", cookies)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "NOT_PDF", decode[map[string]any](t, resp)["code"])
	exists, err := afero.Exists(s.public, "/price.pdf")
	require.NoError(t, err)
	assert.False(t, exists, "un fichero rechazado no debe escribirse")

	resp = s.do(t, http.MethodPost, "/api/upload-price", pdf, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(len(pdf)), decode[map[string]any](t, resp)["size"])

	resp = s.do(t, http.MethodGet, "/api/price-info", nil, cookies)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decode[map[string]any](t, resp)["exists"])

	resp = s.do(t, http.MethodGet, "/price.pdf", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	served, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, pdf, served)
}

func TestUploadPartnerLogo(t *testing.T) {
	s := newTestServer(t)
	cookies := s.login(t)

	resp := s.do(t, http.MethodPost, "/api/partners", map[string]any{"name": "Фабрика"}, cookies)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := int64(decode[map[string]any](t, resp)["id"].(float64))
	path := "/api/upload-partner-logo/" + itoa(id)

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)
	resp = s.do(t, http.MethodPost, path, svg, cookies, apphttp.HeaderFileExt, "svg")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	logoURL, _ := decode[map[string]any](t, resp)["logoUrl"].(string)
	assert.True(t, strings.HasPrefix(logoURL, "/uploads/partner-"+itoa(id)+".svg?t="), logoURL)

	resp = s.do(t, http.MethodGet, "/api/partners", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[[]map[string]any](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, logoURL, list[0]["logoUrl"])

	resp = s.do(t, http.MethodGet, "/uploads/partner-"+itoa(id)+".svg", nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/upload-partner-logo/999", svg, cookies, apphttp.HeaderFileExt, "svg")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodPost, path, svg, cookies, apphttp.HeaderFileExt, "../../etc")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	big := bytes.Repeat([]byte{0x89}, upload.MaxLogoSize+1)
	resp = s.do(t, http.MethodPost, path, big, cookies, apphttp.HeaderFileExt, "png")
	require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, "FILE_TOO_LARGE", decode[map[string]any](t, resp)["code"])
}

func TestHealthYRutaDesconocida(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/health", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]any](t, resp)["status"])

	resp = s.do(t, http.MethodGet, "/api/no-existe", nil, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[map[string]any](t, resp)["code"])
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
