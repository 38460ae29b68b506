package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

// ReviewUseCase opiniones de clientes.
type ReviewUseCase struct {
	repo repository.ReviewRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(repo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo}
}

// Create crea una opinión. Rating por defecto 5, IsActive por defecto true.
func (uc *ReviewUseCase) Create(ctx context.Context, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	review := &entity.Review{
		AuthorName: plainText(in.AuthorName),
		Company:    plainText(in.Company),
		Text:       plainText(in.Text),
		Rating:     entity.DefaultRating,
		IsActive:   boolOr(in.IsActive, true),
	}
	if in.Rating != nil {
		review.Rating = *in.Rating
	}
	if err := validateReview(review); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return toReviewResponse(review), nil
}

// List devuelve las opiniones, la más reciente primero.
func (uc *ReviewUseCase) List(ctx context.Context, onlyVisible bool) ([]dto.ReviewResponse, error) {
	list, err := uc.repo.List(ctx, onlyVisible)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toReviewResponse(r))
	}
	return out, nil
}

// Update aplica los campos presentes en la petición.
func (uc *ReviewUseCase) Update(ctx context.Context, id int64, in dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, domain.ErrNotFound
	}
	if in.AuthorName != nil {
		review.AuthorName = plainText(*in.AuthorName)
	}
	if in.Company != nil {
		review.Company = plainText(*in.Company)
	}
	if in.Text != nil {
		review.Text = plainText(*in.Text)
	}
	if in.Rating != nil {
		review.Rating = *in.Rating
	}
	if in.IsActive != nil {
		review.IsActive = *in.IsActive
	}
	if err := validateReview(review); err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, review)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toReviewResponse(updated), nil
}

// Delete elimina una opinión.
func (uc *ReviewUseCase) Delete(ctx context.Context, id int64) error {
	return deleted(uc.repo.Delete(ctx, id))
}

func validateReview(r *entity.Review) error {
	if r.AuthorName == "" {
		return domain.Invalid("authorName", "el autor es obligatorio")
	}
	if r.Text == "" {
		return domain.Invalid("text", "el texto es obligatorio")
	}
	if r.Rating < entity.MinRating || r.Rating > entity.MaxRating {
		return domain.Invalid("rating", fmt.Sprintf("debe estar entre %d y %d", entity.MinRating, entity.MaxRating))
	}
	return nil
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:         r.ID,
		AuthorName: r.AuthorName,
		Company:    r.Company,
		Text:       r.Text,
		Rating:     r.Rating,
		IsActive:   r.IsActive,
		CreatedAt:  r.CreatedAt,
	}
}
