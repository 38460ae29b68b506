package dto

import "time"

// CreateInquiryRequest formulario público de contacto.
type CreateInquiryRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// UpdateInquiryStatusRequest cambio de estado desde el panel.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status"`
}

// InquiryResponse salida de una solicitud.
type InquiryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
