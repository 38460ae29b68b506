package dto

// UpsertSettingRequest cuerpo de PUT /api/settings/:key. Category vacío = "general";
// se ignora si la clave ya existe.
type UpsertSettingRequest struct {
	Value    *string `json:"value"`
	Category string  `json:"category"`
}

// SettingResponse fila del registro de ajustes.
type SettingResponse struct {
	ID       int64  `json:"id"`
	Key      string `json:"key"`
	Value    string `json:"value"`
	Category string `json:"category"`
}

// ContentResponse secciones de la página: clave -> objeto JSON (o texto si el JSON es inválido).
type ContentResponse map[string]any
