package entity

// Partner cliente/marca con logo en la sección de partners.
type Partner struct {
	ID         int64
	Name       string
	LogoURL    string
	BrandColor string
	IsActive   bool
	SortOrder  int
}
