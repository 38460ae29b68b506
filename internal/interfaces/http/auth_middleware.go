package http

import (
	"github.com/gofiber/fiber/v2"
)

// LocalUserID clave de c.Locals con el id del usuario de la sesión.
const LocalUserID = "user_id"

// RequireAuth exige sesión con usuario; responde 401 UNAUTHORIZED en caso contrario.
func RequireAuth(sessions *SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := sessions.UserID(c)
		if err != nil {
			return writeError(c, err)
		}
		if userID == "" {
			return unauthorized(c)
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// OptionalAuth carga el usuario de la sesión si la hay; nunca rechaza.
func OptionalAuth(sessions *SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, err := sessions.UserID(c); err == nil && userID != "" {
			c.Locals(LocalUserID, userID)
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// publicView indica si la petición es anónima: solo se muestra contenido activo/publicado.
func publicView(c *fiber.Ctx) bool {
	return GetUserID(c) == ""
}
