package entity

// Staff contacto del equipo; solo visible en el panel.
type Staff struct {
	ID         int64
	Name       string
	Position   string
	Phone      string
	Email      string
	Department string
	IsActive   bool
}
