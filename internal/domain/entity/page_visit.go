package entity

import "time"

// Clases de dispositivo derivadas del User-Agent.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"
)

// PageVisit evento de visita; solo se inserta, nunca se modifica ni borra.
type PageVisit struct {
	ID        int64
	Page      string
	Referrer  string
	UserAgent string
	IP        string
	Device    string
	CreatedAt time.Time
}
