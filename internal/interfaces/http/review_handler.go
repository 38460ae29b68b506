package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/application/usecase"
)

// ReviewHandler opiniones de clientes.
type ReviewHandler struct {
	uc *usecase.ReviewUseCase
}

// NewReviewHandler construye el handler.
func NewReviewHandler(uc *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// List godoc
// @Summary      Listar opiniones (más recientes primero)
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  dto.ReviewResponse
// @Router       /api/reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), publicView(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear opinión
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReviewRequest  true  "Datos de la opinión"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
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
// @Summary      Actualizar opinión (parcial)
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la opinión"
// @Param        body  body  dto.UpdateReviewRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ReviewResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reviews/{id} [patch]
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.UpdateReviewRequest
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
// @Summary      Eliminar opinión
// @Tags         reviews
// @Produce      json
// @Param        id   path  int  true  "ID de la opinión"
// @Success      200  {object}  dto.OKResponse
// @Router       /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
