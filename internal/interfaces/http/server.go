package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/woodini-site/internal/application/upload"
	"github.com/jhoicas/woodini-site/pkg/logger"
)

// NewApp crea la app fiber con el manejador de errores común y el límite de cuerpo
// ajustado a la subida más grande (lista de precios).
//
// Immutable: los valores de Params/Get/Body se copian, los repositorios pueden
// retenerlos. UnescapePath: /api/settings/hero%20banner llega como "hero banner".
func NewApp(name string, log *logger.Logger) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	return fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: ErrorHandler(log),
		Immutable:    true,
		UnescapePath: true,
		BodyLimit:    upload.MaxPriceSize + 1<<20,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
}
