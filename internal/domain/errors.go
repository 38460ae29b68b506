package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrUserNotFound           = errors.New("usuario no encontrado")
	ErrInvalidCredentials     = errors.New("usuario o contraseña incorrectos")
	ErrInvalidCurrentPassword = errors.New("la contraseña actual es incorrecta")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrFileTooLarge           = errors.New("el fichero supera el tamaño máximo")
	ErrNotPDF                 = errors.New("el fichero no es un PDF")
	ErrInvalidExtension       = errors.New("extensión de fichero no permitida")
)

// ValidationError error de validación con mensaje legible para el cliente.
// errors.Is(err, ErrInvalidInput) es true para cualquier ValidationError.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is permite comparar contra ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid construye un ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
