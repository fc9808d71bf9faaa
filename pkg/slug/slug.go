package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
// Convierte "Malargüe" en "Malargue" y "Pérez" en "Perez".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldAccents elimina tildes y diéresis de un texto. Si la transformación
// falla devuelve el texto original sin modificar.
func FoldAccents(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// Make genera un slug apto para nombres de archivo: minúsculas, sin tildes,
// separadores no alfanuméricos colapsados en guiones bajos.
func Make(s string) string {
	folded := strings.ToLower(FoldAccents(s))
	var b strings.Builder
	lastUnderscore := true // evita guion bajo inicial
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimRight(b.String(), "_")
}
