package http

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/fiber/v2/utils"
)

const sessionUserKey = "userId"

// SessionConfig parámetros de la cookie y del almacén de sesiones.
type SessionConfig struct {
	Expiration   time.Duration
	CookieName   string
	CookieSecure bool
	// Storage nil = memoria del proceso (con GC de sesiones expiradas).
	Storage fiber.Storage
}

// SessionManager asocia el id de sesión de la cookie con el usuario autenticado.
type SessionManager struct {
	store *session.Store
}

// NewSessionManager construye el gestor sobre session.Store de fiber.
func NewSessionManager(cfg SessionConfig) *SessionManager {
	if cfg.Expiration <= 0 {
		cfg.Expiration = 24 * time.Hour
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "sid"
	}
	store := session.New(session.Config{
		Expiration:     cfg.Expiration,
		Storage:        cfg.Storage,
		KeyLookup:      "cookie:" + cfg.CookieName,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		CookieSecure:   cfg.CookieSecure,
		KeyGenerator:   utils.UUIDv4,
	})
	return &SessionManager{store: store}
}

// Login regenera el id de sesión (evita fijación) y guarda el usuario.
func (m *SessionManager) Login(c *fiber.Ctx, userID string) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return fmt.Errorf("obtener sesión: %w", err)
	}
	if err := sess.Regenerate(); err != nil {
		return fmt.Errorf("regenerar sesión: %w", err)
	}
	sess.Set(sessionUserKey, userID)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// UserID devuelve el usuario de la sesión o "" si no hay sesión válida.
func (m *SessionManager) UserID(c *fiber.Ctx) (string, error) {
	sess, err := m.store.Get(c)
	if err != nil {
		return "", fmt.Errorf("obtener sesión: %w", err)
	}
	if sess.Fresh() {
		return "", nil
	}
	userID, _ := sess.Get(sessionUserKey).(string)
	return userID, nil
}

// Destroy elimina la sesión del almacén y expira la cookie.
func (m *SessionManager) Destroy(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return fmt.Errorf("obtener sesión: %w", err)
	}
	if sess.Fresh() {
		return nil
	}
	return sess.Destroy()
}

// CookieKeyFromSecret deriva la clave AES-256 (base64) de encryptcookie a partir de SESSION_SECRET.
func CookieKeyFromSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}
