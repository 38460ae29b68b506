// Package password encapsula el hash bcrypt de contraseñas de administradores.
package password

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// Costes bcrypt. El alta fuera de banda (cmd/create_admin) usa un coste mayor
// porque no corre en el camino de una petición.
const (
	DefaultCost = 10
	AdminCost   = 12
)

// MinLength longitud mínima aceptada para contraseñas nuevas.
const MinLength = 6

// ErrTooShort la contraseña no alcanza MinLength.
var ErrTooShort = fmt.Errorf("la contraseña debe tener al menos %d caracteres", MinLength)

// Hash genera el hash bcrypt con el coste indicado (mínimo DefaultCost).
func Hash(plain string, cost int) (string, error) {
	if cost < DefaultCost {
		cost = DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(h), nil
}

// Verify compara la contraseña en claro contra el hash. Un hash corrupto cuenta como no coincidente.
func Verify(hash, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}

// Validate aplica la política mínima de longitud, contada en caracteres y no en bytes.
func Validate(plain string) error {
	if utf8.RuneCountInString(plain) < MinLength {
		return ErrTooShort
	}
	return nil
}

// Cost devuelve el coste con el que se generó un hash.
func Cost(hash string) (int, error) {
	c, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return 0, errors.Join(errors.New("hash bcrypt inválido"), err)
	}
	return c, nil
}
