package dto

// CreatePartnerRequest entrada para crear un partner.
type CreatePartnerRequest struct {
	Name       string `json:"name"`
	LogoURL    string `json:"logoUrl"`
	BrandColor string `json:"brandColor"`
	IsActive   *bool  `json:"isActive"`
	SortOrder  int    `json:"sortOrder"`
}

// UpdatePartnerRequest actualización parcial (PATCH).
type UpdatePartnerRequest struct {
	Name       *string `json:"name"`
	LogoURL    *string `json:"logoUrl"`
	BrandColor *string `json:"brandColor"`
	IsActive   *bool   `json:"isActive"`
	SortOrder  *int    `json:"sortOrder"`
}

// PartnerResponse salida de un partner.
type PartnerResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LogoURL    string `json:"logoUrl"`
	BrandColor string `json:"brandColor"`
	IsActive   bool   `json:"isActive"`
	SortOrder  int    `json:"sortOrder"`
}
