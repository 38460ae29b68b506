package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/application/settings"
	"github.com/jhoicas/woodini-site/internal/domain"
)

// SettingsHandler registro clave/valor del sitio y contenido editable.
type SettingsHandler struct {
	uc *settings.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *settings.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetAll godoc
// @Summary      Listar todos los ajustes
// @Tags         settings
// @Produce      json
// @Success      200  {array}   dto.SettingResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetPublic godoc
// @Summary      Ajustes públicos (contacts + seo)
// @Tags         settings
// @Produce      json
// @Success      200  {array}  dto.SettingResponse
// @Router       /api/settings/public [get]
func (h *SettingsHandler) GetPublic(c *fiber.Ctx) error {
	out, err := h.uc.GetPublic(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByKey godoc
// @Summary      Obtener un ajuste por clave
// @Tags         settings
// @Produce      json
// @Param        key  path  string  true  "Clave del ajuste"
// @Success      200  {object}  dto.SettingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/{key} [get]
func (h *SettingsHandler) GetByKey(c *fiber.Ctx) error {
	out, err := h.uc.GetByKey(c.UserContext(), c.Params("key"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Crear o actualizar un ajuste
// @Description  Si la clave existe solo cambia value; la categoría se fija en la primera escritura.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        key   path  string  true  "Clave del ajuste"
// @Param        body  body  dto.UpsertSettingRequest  true  "Valor y categoría opcional"
// @Success      200   {object}  dto.SettingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/{key} [put]
func (h *SettingsHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Value == nil {
		return writeError(c, domain.Invalid("value", "es requerido"))
	}
	out, err := h.uc.Upsert(c.UserContext(), c.Params("key"), *in.Value, in.Category)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetContent godoc
// @Summary      Contenido editable de la landing
// @Tags         content
// @Produce      json
// @Success      200  {object}  dto.ContentResponse
// @Router       /api/content [get]
func (h *SettingsHandler) GetContent(c *fiber.Ctx) error {
	out, err := h.uc.GetContent(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetContentSection godoc
// @Summary      Una sección del contenido editable
// @Tags         content
// @Produce      json
// @Param        section  path  string  true  "Nombre de la sección"
// @Success      200  {object}  object
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/content/{section} [get]
func (h *SettingsHandler) GetContentSection(c *fiber.Ctx) error {
	out, err := h.uc.GetContentSection(c.UserContext(), c.Params("section"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
