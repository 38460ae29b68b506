package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/woodini-site/internal/application/upload"
)

// HeaderFileExt cabecera con la extensión del logo subido (sin punto).
const HeaderFileExt = "X-File-Ext"

// UploadHandler subidas binarias: lista de precios y logos de partners.
type UploadHandler struct {
	uc *upload.UploadUseCase
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *upload.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// UploadPrice godoc
// @Summary      Subir la lista de precios (PDF)
// @Description  Cuerpo binario crudo; debe empezar por %PDF y no superar 10 MB.
// @Tags         uploads
// @Accept       application/pdf
// @Produce      json
// @Success      200  {object}  dto.PriceUploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/upload-price [post]
func (h *UploadHandler) UploadPrice(c *fiber.Ctx) error {
	out, err := h.uc.UploadPrice(c.UserContext(), bytes.NewReader(c.Body()))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UploadPartnerLogo godoc
// @Summary      Subir el logo de un partner
// @Description  Cuerpo binario crudo (máx. 2 MB); extensión en la cabecera X-File-Ext (png por defecto).
// @Tags         uploads
// @Accept       octet-stream
// @Produce      json
// @Param        id          path    int     true   "ID del partner"
// @Param        X-File-Ext  header  string  false  "Extensión del fichero"
// @Success      200  {object}  dto.LogoUploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/upload-partner-logo/{id} [post]
func (h *UploadHandler) UploadPartnerLogo(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.UploadPartnerLogo(c.UserContext(), id, c.Get(HeaderFileExt), bytes.NewReader(c.Body()))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PriceInfo godoc
// @Summary      Estado de la lista de precios publicada
// @Tags         uploads
// @Produce      json
// @Success      200  {object}  dto.PriceInfoResponse
// @Router       /api/price-info [get]
func (h *UploadHandler) PriceInfo(c *fiber.Ctx) error {
	out, err := h.uc.PriceInfo(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
