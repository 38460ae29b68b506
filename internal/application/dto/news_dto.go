package dto

import "time"

// CreateNewsRequest entrada para crear una noticia. Category vacío = "news".
type CreateNewsRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	IsPublished bool   `json:"isPublished"`
}

// UpdateNewsRequest actualización parcial (PATCH).
type UpdateNewsRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	IsPublished *bool   `json:"isPublished"`
}

// NewsResponse salida de una noticia.
type NewsResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}
