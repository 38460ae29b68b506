package entity

import "time"

// Estados de una solicitud.
const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusClosed     = "closed"
)

// Inquiry solicitud enviada desde el formulario público. Tras crearse solo cambia Status.
type Inquiry struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	Company   string
	Message   string
	Status    string
	CreatedAt time.Time
}

// ValidInquiryStatus indica si s es un estado conocido.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusNew, InquiryStatusInProgress, InquiryStatusClosed:
		return true
	}
	return false
}
