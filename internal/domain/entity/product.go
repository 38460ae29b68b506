package entity

// Product producto del catálogo mostrado en la landing.
// Price es texto libre ("от 120 ₽/шт", "по запросу").
type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Price       string
	ImageURL    string
	IsActive    bool // solo los activos son visibles al público
	SortOrder   int  // orden ascendente de presentación
}
