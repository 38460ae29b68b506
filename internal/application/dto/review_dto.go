package dto

import "time"

// CreateReviewRequest entrada para crear una opinión. Rating nil = 5.
type CreateReviewRequest struct {
	AuthorName string `json:"authorName"`
	Company    string `json:"company"`
	Text       string `json:"text"`
	Rating     *int   `json:"rating"`
	IsActive   *bool  `json:"isActive"`
}

// UpdateReviewRequest actualización parcial (PATCH).
type UpdateReviewRequest struct {
	AuthorName *string `json:"authorName"`
	Company    *string `json:"company"`
	Text       *string `json:"text"`
	Rating     *int    `json:"rating"`
	IsActive   *bool   `json:"isActive"`
}

// ReviewResponse salida de una opinión.
type ReviewResponse struct {
	ID         int64     `json:"id"`
	AuthorName string    `json:"authorName"`
	Company    string    `json:"company"`
	Text       string    `json:"text"`
	Rating     int       `json:"rating"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}
