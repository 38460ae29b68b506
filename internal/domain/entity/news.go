package entity

import "time"

// Categorías de noticias.
const (
	NewsCategoryNews  = "news"
	NewsCategoryPromo = "promo"
	NewsCategoryOffer = "offer"
)

// News noticia, promoción u oferta. Las no publicadas no aparecen en el feed público.
type News struct {
	ID          int64
	Title       string
	Content     string
	Category    string
	IsPublished bool
	CreatedAt   time.Time
}

// ValidNewsCategory indica si c es una categoría conocida.
func ValidNewsCategory(c string) bool {
	switch c {
	case NewsCategoryNews, NewsCategoryPromo, NewsCategoryOffer:
		return true
	}
	return false
}
