package entity

// Categorías (particiones) del registro de ajustes.
const (
	SettingCategoryGeneral  = "general"
	SettingCategoryContacts = "contacts"
	SettingCategorySEO      = "seo"
	SettingCategoryContent  = "content"
)

// SiteSetting fila clave/valor. Value es opaco; en la categoría "content" suele ser JSON.
// Category queda fijada en la primera inserción.
type SiteSetting struct {
	ID       int64
	Key      string
	Value    string
	Category string
}

// IsPublic indica si la fila se expone sin sesión (contactos y SEO).
func (s *SiteSetting) IsPublic() bool {
	return s.Category == SettingCategoryContacts || s.Category == SettingCategorySEO
}
