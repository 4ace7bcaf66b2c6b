package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizarTexto remove acentos e caixa para comparação de rótulos
// Exemplo: "Uíge" -> "uige", "Conta própria" -> "conta propria"
func NormalizarTexto(texto string) string {
	if texto == "" {
		return texto
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, texto)

	return strings.ToLower(strings.TrimSpace(normalized))
}

// ContemNormalizado indica se termo aparece em texto, ignorando acentos e caixa
func ContemNormalizado(texto, termo string) bool {
	termo = NormalizarTexto(termo)
	if termo == "" {
		return true
	}
	return strings.Contains(NormalizarTexto(texto), termo)
}
