package entity

import "time"

// Límites y valor por defecto de la valoración.
const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

// Review opinión de un cliente.
type Review struct {
	ID         int64
	AuthorName string
	Company    string
	Text       string
	Rating     int
	IsActive   bool
	CreatedAt  time.Time
}
