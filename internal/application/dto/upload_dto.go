package dto

import "time"

// PriceUploadResponse resultado de subir la lista de precios.
type PriceUploadResponse struct {
	OK   bool  `json:"ok"`
	Size int64 `json:"size"`
}

// LogoUploadResponse resultado de subir el logo de un partner.
type LogoUploadResponse struct {
	OK      bool   `json:"ok"`
	LogoURL string `json:"logoUrl"`
}

// PriceInfoResponse estado del fichero de precios publicado.
type PriceInfoResponse struct {
	Exists   bool       `json:"exists"`
	Size     int64      `json:"size,omitempty"`
	Modified *time.Time `json:"modified,omitempty"`
}
