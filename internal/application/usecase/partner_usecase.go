package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

// PartnerUseCase marcas asociadas que se muestran en la landing.
type PartnerUseCase struct {
	repo repository.PartnerRepository
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(repo repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{repo: repo}
}

// Create crea un partner. IsActive por defecto true.
func (uc *PartnerUseCase) Create(ctx context.Context, in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	partner := &entity.Partner{
		Name:       strings.TrimSpace(in.Name),
		LogoURL:    strings.TrimSpace(in.LogoURL),
		BrandColor: strings.TrimSpace(in.BrandColor),
		IsActive:   boolOr(in.IsActive, true),
		SortOrder:  in.SortOrder,
	}
	if partner.Name == "" {
		return nil, domain.Invalid("name", "el nombre es obligatorio")
	}
	if err := uc.repo.Create(ctx, partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// List devuelve los partners ordenados por SortOrder.
func (uc *PartnerUseCase) List(ctx context.Context, onlyVisible bool) ([]dto.PartnerResponse, error) {
	list, err := uc.repo.List(ctx, onlyVisible)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartnerResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPartnerResponse(p))
	}
	return out, nil
}

// Update aplica los campos presentes en la petición.
func (uc *PartnerUseCase) Update(ctx context.Context, id int64, in dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	partner, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.Invalid("name", "el nombre es obligatorio")
		}
		partner.Name = name
	}
	if in.LogoURL != nil {
		partner.LogoURL = strings.TrimSpace(*in.LogoURL)
	}
	if in.BrandColor != nil {
		partner.BrandColor = strings.TrimSpace(*in.BrandColor)
	}
	if in.IsActive != nil {
		partner.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		partner.SortOrder = *in.SortOrder
	}
	updated, err := uc.repo.Update(ctx, partner)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toPartnerResponse(updated), nil
}

// Delete elimina un partner. El fichero de logo, si lo hay, queda en disco.
func (uc *PartnerUseCase) Delete(ctx context.Context, id int64) error {
	return deleted(uc.repo.Delete(ctx, id))
}

func toPartnerResponse(p *entity.Partner) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID:         p.ID,
		Name:       p.Name,
		LogoURL:    p.LogoURL,
		BrandColor: p.BrandColor,
		IsActive:   p.IsActive,
		SortOrder:  p.SortOrder,
	}
}
