package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

// InquiryUseCase solicitudes del formulario de contacto.
type InquiryUseCase struct {
	repo repository.InquiryRepository
}

// NewInquiryUseCase construye el caso de uso.
func NewInquiryUseCase(repo repository.InquiryRepository) *InquiryUseCase {
	return &InquiryUseCase{repo: repo}
}

// Create guarda una solicitud pública. El estado inicial es siempre "new".
func (uc *InquiryUseCase) Create(ctx context.Context, in dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	inq := &entity.Inquiry{
		Name:    plainText(in.Name),
		Phone:   plainText(in.Phone),
		Email:   plainText(in.Email),
		Company: plainText(in.Company),
		Message: plainText(in.Message),
		Status:  entity.InquiryStatusNew,
	}
	if inq.Name == "" {
		return nil, domain.Invalid("name", "el nombre es obligatorio")
	}
	if err := uc.repo.Create(ctx, inq); err != nil {
		return nil, err
	}
	return toInquiryResponse(inq), nil
}

// GetByID obtiene una solicitud; ErrNotFound si no existe.
func (uc *InquiryUseCase) GetByID(ctx context.Context, id int64) (*dto.InquiryResponse, error) {
	inq, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inq == nil {
		return nil, domain.ErrNotFound
	}
	return toInquiryResponse(inq), nil
}

// List devuelve todas las solicitudes, la más reciente primero.
func (uc *InquiryUseCase) List(ctx context.Context) ([]dto.InquiryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InquiryResponse, 0, len(list))
	for _, inq := range list {
		out = append(out, *toInquiryResponse(inq))
	}
	return out, nil
}

// UpdateStatus cambia solo el estado.
func (uc *InquiryUseCase) UpdateStatus(ctx context.Context, id int64, status string) (*dto.InquiryResponse, error) {
	status = strings.TrimSpace(status)
	if !entity.ValidInquiryStatus(status) {
		return nil, domain.Invalid("status", "estado desconocido: "+status)
	}
	inq, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if inq == nil {
		return nil, domain.ErrNotFound
	}
	return toInquiryResponse(inq), nil
}

// Delete elimina una solicitud.
func (uc *InquiryUseCase) Delete(ctx context.Context, id int64) error {
	return deleted(uc.repo.Delete(ctx, id))
}

func toInquiryResponse(i *entity.Inquiry) *dto.InquiryResponse {
	return &dto.InquiryResponse{
		ID:        i.ID,
		Name:      i.Name,
		Phone:     i.Phone,
		Email:     i.Email,
		Company:   i.Company,
		Message:   i.Message,
		Status:    i.Status,
		CreatedAt: i.CreatedAt,
	}
}

// deleted traduce el resultado (existía, error) de los repositorios a ErrNotFound.
func deleted(ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
