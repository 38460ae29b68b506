package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/woodini-site/internal/application/analytics"
	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/pkg/logger"
)

// AnalyticsHandler registro y agregado de visitas.
type AnalyticsHandler struct {
	uc  *analytics.VisitUseCase
	log *logger.Logger
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.VisitUseCase, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, log: log}
}

// Track godoc
// @Summary      Registrar una visita
// @Description  El cliente no reintenta; un fallo del almacén responde 500 con el mensaje.
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TrackVisitRequest  false  "Página y referrer"
// @Success      200   {object}  dto.OKResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/track [post]
func (h *AnalyticsHandler) Track(c *fiber.Ctx) error {
	var in dto.TrackVisitRequest
	if len(c.Body()) > 0 {
		_ = c.BodyParser(&in)
	}
	referrer := in.Referrer
	if referrer == "" {
		referrer = c.Get(fiber.HeaderReferer)
	}
	err := h.uc.Track(c.UserContext(), analytics.TrackInput{
		Page:      in.Page,
		Referrer:  referrer,
		UserAgent: c.Get(fiber.HeaderUserAgent),
		IP:        c.IP(),
	})
	if err != nil {
		h.log.Warn().Err(err).Str("page", in.Page).Msg("no se pudo registrar la visita")
		return writeError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Stats godoc
// @Summary      Estadísticas de visitas
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.VisitStatsDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stats/visits [get]
func (h *AnalyticsHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
