package entity

import "time"

// DefaultAdminUsername usuario creado en el arranque si no existe.
const DefaultAdminUsername = "admin"

// User administrador del panel.
type User struct {
	ID                 string // UUID
	Username           string // único, comparación exacta (sensible a mayúsculas)
	PasswordHash       string // bcrypt, nunca en claro
	MustChangePassword bool   // obliga a cambiar la contraseña antes de usar el panel
	CreatedAt          time.Time
}
