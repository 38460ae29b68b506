package usecase

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// textPolicy elimina todo el marcado: campos de texto plano enviados por el público.
	textPolicy = bluemonday.StrictPolicy()
	// richPolicy deja el formato seguro del contenido de noticias.
	richPolicy = bluemonday.UGCPolicy()
)

// plainText quita etiquetas y devuelve el texto sin escapar; la vista escapa al renderizar.
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

func richText(s string) string {
	return strings.TrimSpace(richPolicy.Sanitize(s))
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
