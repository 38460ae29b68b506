package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/woodini-site/internal/application/analytics"
	"github.com/jhoicas/woodini-site/internal/application/auth"
	"github.com/jhoicas/woodini-site/internal/application/settings"
	"github.com/jhoicas/woodini-site/internal/application/upload"
	"github.com/jhoicas/woodini-site/internal/application/usecase"
	"github.com/jhoicas/woodini-site/internal/infrastructure/filestore"
	"github.com/jhoicas/woodini-site/internal/infrastructure/postgres"
	"github.com/jhoicas/woodini-site/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/woodini-site/internal/interfaces/http"
	"github.com/jhoicas/woodini-site/pkg/config"
	"github.com/jhoicas/woodini-site/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración incompleta")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo)
	created, err := authUC.EnsureDefaultAdmin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("crear administrador por defecto")
	}
	if created {
		log.Warn().Msg("creado el usuario admin con la contraseña por defecto; cámbiela en el primer acceso")
	}

	// Sesiones: Redis si está configurado, si no memoria del proceso
	var sessionStorage fiber.Storage
	if cfg.Session.UseRedis() {
		rs, err := redisstore.New(ctx, cfg.Session.RedisURL, cfg.Session.RedisPrefix)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rs.Close()
		sessionStorage = rs
		log.Info().Msg("sesiones en Redis")
	}
	sessions := httpRouter.NewSessionManager(httpRouter.SessionConfig{
		Expiration:   cfg.Session.Expiration,
		CookieName:   cfg.Session.CookieName,
		CookieSecure: cfg.Session.CookieSecure,
		Storage:      sessionStorage,
	})

	publicStore, err := filestore.NewDisk(cfg.Upload.PublicDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.PublicDir).Msg("directorio público")
	}
	uploadsStore, err := filestore.NewDisk(cfg.Upload.UploadsDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.UploadsDir).Msg("directorio de subidas")
	}

	app := httpRouter.NewApp(cfg.App.Name, log)
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Woodini Site API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: no se encuentra el documento")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InquiryUC:   usecase.NewInquiryUseCase(postgres.NewInquiryRepository(pool)),
		ProductUC:   usecase.NewProductUseCase(postgres.NewProductRepository(pool)),
		PartnerUC:   usecase.NewPartnerUseCase(partnerRepo),
		ReviewUC:    usecase.NewReviewUseCase(postgres.NewReviewRepository(pool)),
		StaffUC:     usecase.NewStaffUseCase(postgres.NewStaffRepository(pool)),
		NewsUC:      usecase.NewNewsUseCase(postgres.NewNewsRepository(pool)),
		SettingsUC:  settings.NewSettingsUseCase(postgres.NewSettingsRepository(pool)),
		VisitUC:     analytics.NewVisitUseCase(postgres.NewVisitRepository(pool)),
		UploadUC:    upload.NewUploadUseCase(partnerRepo, publicStore, uploadsStore, cfg.Upload.PriceFile),
		Sessions:    sessions,
		CookieKey:   httpRouter.CookieKeyFromSecret(cfg.Session.Secret),
		PublicFiles: publicStore.HTTP(),
		UploadFiles: uploadsStore.HTTP(),
		PriceFile:   cfg.Upload.PriceFile,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
