package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/woodini-site/internal/domain/entity"
)

// Claves conocidas de la categoría seo.
const (
	KeySEOTitle       = "seo_title"
	KeySEODescription = "seo_description"
	KeySEOKeywords    = "seo_keywords"
	KeyOGTitle        = "og_title"
	KeyOGDescription  = "og_description"
	KeyOGImage        = "og_image"
)

// Claves conocidas de la categoría contacts.
const (
	KeyPhone        = "phone"
	KeyMobile       = "mobile"
	KeyEmail        = "email"
	KeyAddress      = "address"
	KeyTelegram     = "telegram"
	KeyMaxMessenger = "max_messenger"
	KeyWhatsApp     = "whatsapp"
	KeyVK           = "vk"
	KeyInstagram    = "instagram"
	KeyWorkHours    = "work_hours"
)

// SeoSettings vista tipada de la categoría seo.
type SeoSettings struct {
	Title         string
	Description   string
	Keywords      string
	OGTitle       string
	OGDescription string
	OGImage       string
}

// ContactsSettings vista tipada de la categoría contacts.
type ContactsSettings struct {
	Phone        string
	Mobile       string
	Email        string
	Address      string
	Telegram     string
	MaxMessenger string
	WhatsApp     string
	VK           string
	Instagram    string
	WorkHours    string
}

// Seo lee las claves SEO; las ausentes quedan vacías.
func (uc *SettingsUseCase) Seo(ctx context.Context) (SeoSettings, error) {
	m, err := uc.categoryMap(ctx, entity.SettingCategorySEO)
	if err != nil {
		return SeoSettings{}, err
	}
	return SeoSettings{
		Title:         m[KeySEOTitle],
		Description:   m[KeySEODescription],
		Keywords:      m[KeySEOKeywords],
		OGTitle:       m[KeyOGTitle],
		OGDescription: m[KeyOGDescription],
		OGImage:       m[KeyOGImage],
	}, nil
}

// Contacts lee las claves de contacto; las ausentes quedan vacías.
func (uc *SettingsUseCase) Contacts(ctx context.Context) (ContactsSettings, error) {
	m, err := uc.categoryMap(ctx, entity.SettingCategoryContacts)
	if err != nil {
		return ContactsSettings{}, err
	}
	return ContactsSettings{
		Phone:        m[KeyPhone],
		Mobile:       m[KeyMobile],
		Email:        m[KeyEmail],
		Address:      m[KeyAddress],
		Telegram:     m[KeyTelegram],
		MaxMessenger: m[KeyMaxMessenger],
		WhatsApp:     m[KeyWhatsApp],
		VK:           m[KeyVK],
		Instagram:    m[KeyInstagram],
		WorkHours:    m[KeyWorkHours],
	}, nil
}

// SaveContentSection serializa section a JSON y la guarda con categoría content.
func (uc *SettingsUseCase) SaveContentSection(ctx context.Context, name string, section any) error {
	raw, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("serializar sección %q: %w", name, err)
	}
	_, err = uc.Upsert(ctx, name, string(raw), entity.SettingCategoryContent)
	return err
}

func (uc *SettingsUseCase) categoryMap(ctx context.Context, category string) (map[string]string, error) {
	rows, err := uc.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(rows))
	for _, s := range rows {
		m[s.Key] = s.Value
	}
	return m, nil
}
