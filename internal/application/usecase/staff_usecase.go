package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

// StaffUseCase directorio interno del equipo; solo accesible con sesión.
type StaffUseCase struct {
	repo repository.StaffRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

// Create crea un contacto del equipo.
func (uc *StaffUseCase) Create(ctx context.Context, in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	member := &entity.Staff{
		Name:       strings.TrimSpace(in.Name),
		Position:   strings.TrimSpace(in.Position),
		Phone:      strings.TrimSpace(in.Phone),
		Email:      strings.TrimSpace(in.Email),
		Department: strings.TrimSpace(in.Department),
		IsActive:   boolOr(in.IsActive, true),
	}
	if member.Name == "" {
		return nil, domain.Invalid("name", "el nombre es obligatorio")
	}
	if err := uc.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return toStaffResponse(member), nil
}

// List devuelve todo el equipo.
func (uc *StaffUseCase) List(ctx context.Context) ([]dto.StaffResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StaffResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStaffResponse(s))
	}
	return out, nil
}

// Update aplica los campos presentes en la petición.
func (uc *StaffUseCase) Update(ctx context.Context, id int64, in dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	member, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.Invalid("name", "el nombre es obligatorio")
		}
		member.Name = name
	}
	if in.Position != nil {
		member.Position = strings.TrimSpace(*in.Position)
	}
	if in.Phone != nil {
		member.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		member.Email = strings.TrimSpace(*in.Email)
	}
	if in.Department != nil {
		member.Department = strings.TrimSpace(*in.Department)
	}
	if in.IsActive != nil {
		member.IsActive = *in.IsActive
	}
	updated, err := uc.repo.Update(ctx, member)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toStaffResponse(updated), nil
}

// Delete elimina un contacto del equipo.
func (uc *StaffUseCase) Delete(ctx context.Context, id int64) error {
	return deleted(uc.repo.Delete(ctx, id))
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:         s.ID,
		Name:       s.Name,
		Position:   s.Position,
		Phone:      s.Phone,
		Email:      s.Email,
		Department: s.Department,
		IsActive:   s.IsActive,
	}
}
