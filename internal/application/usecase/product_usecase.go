package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo. Price es texto libre ("от 1200 ₽/м²").
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. IsActive por defecto true.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Price:       strings.TrimSpace(in.Price),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		IsActive:    boolOr(in.IsActive, true),
		SortOrder:   in.SortOrder,
	}
	if product.Name == "" {
		return nil, domain.Invalid("name", "el nombre es obligatorio")
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto. Con onlyVisible un producto inactivo cuenta como inexistente.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64, onlyVisible bool) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || (onlyVisible && !product.IsActive) {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo ordenado por SortOrder.
func (uc *ProductUseCase) List(ctx context.Context, onlyVisible bool) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, onlyVisible)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update aplica los campos presentes en la petición.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.Invalid("name", "el nombre es obligatorio")
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.Price != nil {
		product.Price = strings.TrimSpace(*in.Price)
	}
	if in.ImageURL != nil {
		product.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		product.SortOrder = *in.SortOrder
	}
	updated, err := uc.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(updated), nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return deleted(uc.repo.Delete(ctx, id))
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		SortOrder:   p.SortOrder,
	}
}
