package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/woodini-site/internal/application/auth"
	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/pkg/logger"
)

// AuthHandler maneja login, logout, usuario actual y cambio de contraseña.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	sessions *SessionManager
	log      *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, sessions *SessionManager, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, log: log}
}

// Login godoc
// @Summary      Iniciar sesión en el panel
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.UserResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	user, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.log.Warn().Str("username", in.Username).Str("ip", c.IP()).Msg("login fallido")
		}
		return writeError(c, err)
	}
	if err := h.sessions.Login(c, user.ID); err != nil {
		return writeError(c, err)
	}
	c.Locals(LocalUserID, user.ID)
	return c.JSON(user)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.OKResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Destroy(c); err != nil {
		h.log.Warn().Err(err).Msg("destruir sesión")
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Me godoc
// @Summary      Usuario de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.CurrentUser(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// ChangePassword godoc
// @Summary      Cambiar la contraseña del usuario de la sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "currentPassword, newPassword"
// @Success      200   {object}  dto.OKResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	user, err := h.uc.ChangePassword(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	h.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("contraseña cambiada")
	return c.JSON(dto.OKResponse{OK: true})
}
