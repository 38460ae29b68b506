package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/jhoicas/woodini-site/internal/application/analytics"
	"github.com/jhoicas/woodini-site/internal/application/auth"
	"github.com/jhoicas/woodini-site/internal/application/settings"
	"github.com/jhoicas/woodini-site/internal/application/upload"
	"github.com/jhoicas/woodini-site/internal/application/usecase"
	"github.com/jhoicas/woodini-site/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	InquiryUC  *usecase.InquiryUseCase
	ProductUC  *usecase.ProductUseCase
	PartnerUC  *usecase.PartnerUseCase
	ReviewUC   *usecase.ReviewUseCase
	StaffUC    *usecase.StaffUseCase
	NewsUC     *usecase.NewsUseCase
	SettingsUC *settings.SettingsUseCase
	VisitUC    *analytics.VisitUseCase
	UploadUC   *upload.UploadUseCase

	Sessions *SessionManager
	// CookieKey clave base64 de encryptcookie; vacía = cookie de sesión sin cifrar.
	CookieKey string

	// PublicFiles y UploadFiles nil = sin ficheros estáticos (tests).
	PublicFiles http.FileSystem
	UploadFiles http.FileSystem
	PriceFile   string

	Log *logger.Logger
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Use(RequestLogger(log.Component("http")))
	if deps.CookieKey != "" {
		app.Use(encryptcookie.New(encryptcookie.Config{Key: deps.CookieKey}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": c.App().Config().AppName})
	})

	// Estáticos: logos de partners y lista de precios
	if deps.UploadFiles != nil {
		app.Use("/uploads", filesystem.New(filesystem.Config{
			Root:   deps.UploadFiles,
			MaxAge: 3600,
		}))
	}
	if deps.PublicFiles != nil && deps.PriceFile != "" {
		app.Get("/price.pdf", func(c *fiber.Ctx) error {
			return filesystem.SendFile(c, deps.PublicFiles, "/"+deps.PriceFile)
		})
	}

	requireAuth := RequireAuth(deps.Sessions)
	optionalAuth := OptionalAuth(deps.Sessions)
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, log)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", requireAuth, authHandler.Me)
	authGroup.Post("/change-password", requireAuth, authHandler.ChangePassword)

	// Solicitudes: el alta es el formulario público
	inquiryHandler := NewInquiryHandler(deps.InquiryUC)
	inquiries := api.Group("/inquiries")
	inquiries.Post("/", inquiryHandler.Create)
	inquiries.Get("/", requireAuth, inquiryHandler.List)
	inquiries.Get("/:id", requireAuth, inquiryHandler.GetByID)
	inquiries.Patch("/:id/status", requireAuth, inquiryHandler.UpdateStatus)
	inquiries.Delete("/:id", requireAuth, inquiryHandler.Delete)

	// Productos
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", optionalAuth, productHandler.List)
	products.Get("/:id", optionalAuth, productHandler.GetByID)
	products.Post("/", requireAuth, productHandler.Create)
	products.Patch("/:id", requireAuth, productHandler.Update)
	products.Delete("/:id", requireAuth, productHandler.Delete)

	// Partners
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partners := api.Group("/partners")
	partners.Get("/", optionalAuth, partnerHandler.List)
	partners.Post("/", requireAuth, partnerHandler.Create)
	partners.Patch("/:id", requireAuth, partnerHandler.Update)
	partners.Delete("/:id", requireAuth, partnerHandler.Delete)

	// Opiniones
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	reviews := api.Group("/reviews")
	reviews.Get("/", optionalAuth, reviewHandler.List)
	reviews.Post("/", requireAuth, reviewHandler.Create)
	reviews.Patch("/:id", requireAuth, reviewHandler.Update)
	reviews.Delete("/:id", requireAuth, reviewHandler.Delete)

	// Equipo (siempre con sesión)
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff := api.Group("/staff", requireAuth)
	staff.Get("/", staffHandler.List)
	staff.Post("/", staffHandler.Create)
	staff.Patch("/:id", staffHandler.Update)
	staff.Delete("/:id", staffHandler.Delete)

	// Noticias; feed.xml antes de /:id
	newsHandler := NewNewsHandler(deps.NewsUC, deps.SettingsUC)
	news := api.Group("/news")
	news.Get("/feed.xml", newsHandler.Feed)
	news.Get("/", optionalAuth, newsHandler.List)
	news.Get("/:id", optionalAuth, newsHandler.GetByID)
	news.Post("/", requireAuth, newsHandler.Create)
	news.Patch("/:id", requireAuth, newsHandler.Update)
	news.Delete("/:id", requireAuth, newsHandler.Delete)

	// Ajustes y contenido
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/content", settingsHandler.GetContent)
	api.Get("/content/:section", settingsHandler.GetContentSection)
	api.Get("/settings/public", settingsHandler.GetPublic)
	api.Get("/settings", requireAuth, settingsHandler.GetAll)
	api.Get("/settings/:key", requireAuth, settingsHandler.GetByKey)
	api.Put("/settings/:key", requireAuth, settingsHandler.Upsert)

	// Analítica
	analyticsHandler := NewAnalyticsHandler(deps.VisitUC, log)
	api.Post("/track", analyticsHandler.Track)
	api.Get("/stats/visits", requireAuth, analyticsHandler.Stats)

	// Subidas
	uploadHandler := NewUploadHandler(deps.UploadUC)
	api.Post("/upload-price", requireAuth, uploadHandler.UploadPrice)
	api.Post("/upload-partner-logo/:id", requireAuth, uploadHandler.UploadPartnerLogo)
	api.Get("/price-info", requireAuth, uploadHandler.PriceInfo)
}
