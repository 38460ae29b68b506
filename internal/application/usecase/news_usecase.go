package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

// NewsUseCase noticias, promociones y ofertas.
type NewsUseCase struct {
	repo repository.NewsRepository
}

// NewNewsUseCase construye el caso de uso.
func NewNewsUseCase(repo repository.NewsRepository) *NewsUseCase {
	return &NewsUseCase{repo: repo}
}

// Create crea una noticia. Category vacía = "news"; el contenido conserva el formato seguro.
func (uc *NewsUseCase) Create(ctx context.Context, in dto.CreateNewsRequest) (*dto.NewsResponse, error) {
	item := &entity.News{
		Title:       plainText(in.Title),
		Content:     richText(in.Content),
		Category:    strings.TrimSpace(in.Category),
		IsPublished: in.IsPublished,
	}
	if item.Category == "" {
		item.Category = entity.NewsCategoryNews
	}
	if err := validateNews(item); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toNewsResponse(item), nil
}

// GetByID obtiene una noticia. Con onlyVisible un borrador cuenta como inexistente.
func (uc *NewsUseCase) GetByID(ctx context.Context, id int64, onlyVisible bool) (*dto.NewsResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil || (onlyVisible && !item.IsPublished) {
		return nil, domain.ErrNotFound
	}
	return toNewsResponse(item), nil
}

// List devuelve las noticias, la más reciente primero.
func (uc *NewsUseCase) List(ctx context.Context, onlyVisible bool) ([]dto.NewsResponse, error) {
	list, err := uc.repo.List(ctx, onlyVisible)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NewsResponse, 0, len(list))
	for _, n := range list {
		out = append(out, *toNewsResponse(n))
	}
	return out, nil
}

// Update aplica los campos presentes en la petición.
func (uc *NewsUseCase) Update(ctx context.Context, id int64, in dto.UpdateNewsRequest) (*dto.NewsResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		item.Title = plainText(*in.Title)
	}
	if in.Content != nil {
		item.Content = richText(*in.Content)
	}
	if in.Category != nil {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.IsPublished != nil {
		item.IsPublished = *in.IsPublished
	}
	if err := validateNews(item); err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toNewsResponse(updated), nil
}

// Delete elimina una noticia.
func (uc *NewsUseCase) Delete(ctx context.Context, id int64) error {
	return deleted(uc.repo.Delete(ctx, id))
}

func validateNews(n *entity.News) error {
	if n.Title == "" {
		return domain.Invalid("title", "el título es obligatorio")
	}
	if n.Content == "" {
		return domain.Invalid("content", "el contenido es obligatorio")
	}
	if !entity.ValidNewsCategory(n.Category) {
		return domain.Invalid("category", "categoría desconocida: "+n.Category)
	}
	return nil
}

func toNewsResponse(n *entity.News) *dto.NewsResponse {
	return &dto.NewsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		Category:    n.Category,
		IsPublished: n.IsPublished,
		CreatedAt:   n.CreatedAt,
	}
}
