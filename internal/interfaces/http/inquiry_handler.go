package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/application/usecase"
)

// InquiryHandler solicitudes de contacto. Create es público; el resto exige sesión.
type InquiryHandler struct {
	uc *usecase.InquiryUseCase
}

// NewInquiryHandler construye el handler.
func NewInquiryHandler(uc *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{uc: uc}
}

// Create godoc
// @Summary      Enviar solicitud desde el formulario público
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInquiryRequest  true  "Datos de contacto"
// @Success      201   {object}  dto.InquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes (más recientes primero)
// @Tags         inquiries
// @Produce      json
// @Success      200  {array}   dto.InquiryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inquiries [get]
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud por ID
// @Tags         inquiries
// @Produce      json
// @Param        id   path  int  true  "ID de la solicitud"
// @Success      200  {object}  dto.InquiryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inquiries/{id} [get]
func (h *InquiryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una solicitud
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la solicitud"
// @Param        body  body  dto.UpdateInquiryStatusRequest  true  "new | in_progress | closed"
// @Success      200   {object}  dto.InquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inquiries/{id}/status [patch]
func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.UpdateInquiryStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), id, in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar solicitud
// @Tags         inquiries
// @Produce      json
// @Param        id   path  int  true  "ID de la solicitud"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
