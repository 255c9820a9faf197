package onboarding

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9-]+$`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	invalidChars   = regexp.MustCompile(`[^a-z0-9-]`)

	// Descompone y elimina marcas diacríticas ("Café" -> "Cafe") antes de
	// filtrar, para no perder letras acentuadas del nombre del negocio.
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// DeriveSlug deriva un slug a partir del nombre del negocio: minúsculas,
// espacios a guiones y se descarta todo lo que quede fuera de [a-z0-9-].
// Es solo una conveniencia de presentación: el valor derivado pasa por la
// misma validación y chequeo de unicidad que un slug escrito a mano.
func DeriveSlug(name string) string {
	folded, _, err := transform.String(deaccent, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(strings.TrimSpace(folded))
	folded = whitespaceRuns.ReplaceAllString(folded, "-")
	return invalidChars.ReplaceAllString(folded, "")
}
