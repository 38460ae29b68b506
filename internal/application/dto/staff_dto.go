package dto

// CreateStaffRequest entrada para crear un contacto del equipo.
type CreateStaffRequest struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Department string `json:"department"`
	IsActive   *bool  `json:"isActive"`
}

// UpdateStaffRequest actualización parcial (PATCH).
type UpdateStaffRequest struct {
	Name       *string `json:"name"`
	Position   *string `json:"position"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	IsActive   *bool   `json:"isActive"`
}

// StaffResponse salida de un contacto del equipo.
type StaffResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Department string `json:"department"`
	IsActive   bool   `json:"isActive"`
}
