// Package settings implementa el registro clave/valor del sitio: contactos, SEO
// y secciones de contenido editables, todo sobre la misma tabla site_settings.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/entity"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

// SettingsUseCase lectura y upsert del registro de ajustes.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// GetAll devuelve todas las filas (solo panel).
func (uc *SettingsUseCase) GetAll(ctx context.Context) ([]dto.SettingResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSettingResponses(rows), nil
}

// GetByKey devuelve una fila o ErrNotFound.
func (uc *SettingsUseCase) GetByKey(ctx context.Context, key string) (*dto.SettingResponse, error) {
	row, err := uc.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	out := toSettingResponse(row)
	return &out, nil
}

// GetPublic devuelve solo las categorías contacts y seo (landing pública).
func (uc *SettingsUseCase) GetPublic(ctx context.Context) ([]dto.SettingResponse, error) {
	rows, err := uc.repo.ListByCategory(ctx, entity.SettingCategoryContacts, entity.SettingCategorySEO)
	if err != nil {
		return nil, err
	}
	return toSettingResponses(rows), nil
}

// GetContent devuelve las secciones de la categoría content con su valor JSON decodificado.
// Un valor que no es JSON válido se devuelve como texto tal cual.
func (uc *SettingsUseCase) GetContent(ctx context.Context) (dto.ContentResponse, error) {
	rows, err := uc.repo.ListByCategory(ctx, entity.SettingCategoryContent)
	if err != nil {
		return nil, err
	}
	out := make(dto.ContentResponse, len(rows))
	for _, s := range rows {
		out[s.Key] = decodeContent(s.Value)
	}
	return out, nil
}

// GetContentSection devuelve una sección concreta ("hero", "stats"...) o ErrNotFound.
func (uc *SettingsUseCase) GetContentSection(ctx context.Context, section string) (any, error) {
	row, err := uc.repo.GetByKey(ctx, section)
	if err != nil {
		return nil, err
	}
	if row == nil || row.Category != entity.SettingCategoryContent {
		return nil, domain.ErrNotFound
	}
	return decodeContent(row.Value), nil
}

// Upsert actualiza value si la clave existe (category no cambia nunca tras la primera
// inserción) o inserta la fila con la categoría dada ("general" si viene vacía).
func (uc *SettingsUseCase) Upsert(ctx context.Context, key, value, category string) (*dto.SettingResponse, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, domain.Invalid("key", "es requerida")
	}
	if category == "" {
		category = entity.SettingCategoryGeneral
	}

	existing, err := uc.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		row := &entity.SiteSetting{Key: key, Value: value, Category: category}
		err = uc.repo.Create(ctx, row)
		if err == nil {
			out := toSettingResponse(row)
			return &out, nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		// Carrera con otra escritura de la misma clave: gana la fila existente y su categoría.
	}

	row, err := uc.repo.UpdateValue(ctx, key, value)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	out := toSettingResponse(row)
	return &out, nil
}

func decodeContent(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func toSettingResponses(rows []*entity.SiteSetting) []dto.SettingResponse {
	out := make([]dto.SettingResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, toSettingResponse(s))
	}
	return out
}

func toSettingResponse(s *entity.SiteSetting) dto.SettingResponse {
	return dto.SettingResponse{
		ID:       s.ID,
		Key:      s.Key,
		Value:    s.Value,
		Category: s.Category,
	}
}
