// Package upload recibe los ficheros que el panel publica en la landing: la lista de
// precios en PDF y los logos de partners.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/woodini-site/internal/application/dto"
	"github.com/jhoicas/woodini-site/internal/application/ports"
	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/domain/repository"
)

// Límites de tamaño por tipo de fichero.
const (
	MaxPriceSize = 10 << 20
	MaxLogoSize  = 2 << 20
)

// DefaultLogoExt se usa cuando el cliente no indica extensión.
const DefaultLogoExt = "png"

var pdfMagic = []byte("%PDF")

var allowedLogoExt = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "webp": true, "svg": true,
}

var extPattern = regexp.MustCompile(`^[a-z0-9]{1,5}$`)

// UploadUseCase escribe ficheros en los almacenes públicos.
type UploadUseCase struct {
	partners  repository.PartnerRepository
	public    ports.FileStore // raíz pública: lista de precios
	uploads   ports.FileStore // servido bajo /uploads
	priceFile string
	now       func() time.Time
}

// NewUploadUseCase construye el caso de uso. priceFile es el nombre dentro de public.
func NewUploadUseCase(partners repository.PartnerRepository, public, uploads ports.FileStore, priceFile string) *UploadUseCase {
	return &UploadUseCase{
		partners:  partners,
		public:    public,
		uploads:   uploads,
		priceFile: priceFile,
		now:       time.Now,
	}
}

// UploadPrice guarda la lista de precios. El contenido debe empezar por %PDF y no superar
// MaxPriceSize; en cualquier rechazo no se escribe nada.
func (uc *UploadUseCase) UploadPrice(ctx context.Context, body io.Reader) (*dto.PriceUploadResponse, error) {
	data, err := readLimited(body, MaxPriceSize)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, domain.ErrNotPDF
	}
	if err := uc.public.WriteFile(uc.priceFile, data); err != nil {
		return nil, fmt.Errorf("guardar lista de precios: %w", err)
	}
	return &dto.PriceUploadResponse{OK: true, Size: int64(len(data))}, nil
}

// UploadPartnerLogo guarda partner-<id>.<ext> y actualiza LogoURL con un parámetro
// anti-caché. El partner debe existir antes de leer el cuerpo.
func (uc *UploadUseCase) UploadPartnerLogo(ctx context.Context, partnerID int64, ext string, body io.Reader) (*dto.LogoUploadResponse, error) {
	ext, err := normalizeExt(ext)
	if err != nil {
		return nil, err
	}
	partner, err := uc.partners.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	data, err := readLimited(body, MaxLogoSize)
	if err != nil {
		return nil, err
	}
	filename := fmt.Sprintf("partner-%d.%s", partnerID, ext)
	if err := uc.uploads.WriteFile(filename, data); err != nil {
		return nil, fmt.Errorf("guardar logo: %w", err)
	}
	logoURL := fmt.Sprintf("/uploads/%s?t=%d", filename, uc.now().UnixMilli())
	updated, err := uc.partners.UpdateLogo(ctx, partnerID, logoURL)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.LogoUploadResponse{OK: true, LogoURL: logoURL}, nil
}

// PriceInfo describe la lista de precios publicada; Exists=false si aún no se subió.
func (uc *UploadUseCase) PriceInfo(ctx context.Context) (*dto.PriceInfoResponse, error) {
	info, err := uc.public.Stat(uc.priceFile)
	if errors.Is(err, fs.ErrNotExist) {
		return &dto.PriceInfoResponse{Exists: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("consultar lista de precios: %w", err)
	}
	modified := info.ModTime()
	return &dto.PriceInfoResponse{Exists: true, Size: info.Size(), Modified: &modified}, nil
}

// readLimited lee como máximo max bytes; un byte más basta para saber que el cuerpo sobra.
func readLimited(r io.Reader, max int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, fmt.Errorf("leer cuerpo: %w", err)
	}
	if int64(len(data)) > max {
		return nil, domain.ErrFileTooLarge
	}
	return data, nil
}

func normalizeExt(ext string) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if ext == "" {
		return DefaultLogoExt, nil
	}
	if !extPattern.MatchString(ext) || !allowedLogoExt[ext] {
		return "", domain.ErrInvalidExtension
	}
	return ext, nil
}
