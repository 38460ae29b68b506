package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/application/settings"
	"github.com/jhoicas/woodini-site/internal/application/usecase"
	"github.com/jhoicas/woodini-site/internal/infrastructure/feed"
)

// NewsHandler noticias y su feed RSS.
type NewsHandler struct {
	uc       *usecase.NewsUseCase
	settings *settings.SettingsUseCase
}

// NewNewsHandler construye el handler.
func NewNewsHandler(uc *usecase.NewsUseCase, settingsUC *settings.SettingsUseCase) *NewsHandler {
	return &NewsHandler{uc: uc, settings: settingsUC}
}

// List godoc
// @Summary      Listar noticias (solo publicadas sin sesión)
// @Tags         news
// @Produce      json
// @Success      200  {array}  dto.NewsResponse
// @Router       /api/news [get]
func (h *NewsHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), publicView(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener noticia por ID
// @Tags         news
// @Produce      json
// @Param        id   path  int  true  "ID de la noticia"
// @Success      200  {object}  dto.NewsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/news/{id} [get]
func (h *NewsHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id, publicView(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Feed godoc
// @Summary      RSS 2.0 de las noticias publicadas
// @Tags         news
// @Produce      xml
// @Success      200  {string}  string
// @Router       /api/news/feed.xml [get]
func (h *NewsHandler) Feed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	items, err := h.uc.List(ctx, true)
	if err != nil {
		return writeError(c, err)
	}
	seo, err := h.settings.Seo(ctx)
	if err != nil {
		return writeError(c, err)
	}
	title := seo.Title
	if title == "" {
		title = c.App().Config().AppName
	}
	body, err := feed.BuildRSS(feed.Channel{
		Title:       title,
		Description: seo.Description,
		Link:        c.BaseURL(),
		Language:    "ru",
	}, items, time.Now())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.Send(body)
}

// Create godoc
// @Summary      Crear noticia
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNewsRequest  true  "Datos de la noticia"
// @Success      201   {object}  dto.NewsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/news [post]
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNewsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar noticia (parcial)
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la noticia"
// @Param        body  body  dto.UpdateNewsRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.NewsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/news/{id} [patch]
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.UpdateNewsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar noticia
// @Tags         news
// @Produce      json
// @Param        id   path  int  true  "ID de la noticia"
// @Success      200  {object}  dto.OKResponse
// @Router       /api/news/{id} [delete]
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
