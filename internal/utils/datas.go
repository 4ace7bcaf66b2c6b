package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos de data devolvidos pela API da seguradora, do mais ao menos comum
var apiDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// ParseDataAPI interpreta uma data em qualquer dos formatos conhecidos da API
func ParseDataAPI(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range apiDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var mesesAbreviados = [...]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// FormatarDataCurta formata como na tabela de ocorrências: "24 de Jan, 2023"
func FormatarDataCurta(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d de %s, %d", t.Day(), mesesAbreviados[t.Month()-1], t.Year())
}
