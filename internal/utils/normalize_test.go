package utils

import (
	"testing"
)

func TestNormalizarTexto(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Uíge", "uige"},
		{"Conta própria", "conta propria"},
		{"Engenheiro(a)", "engenheiro(a)"},
		{"  LUANDA ", "luanda"},
		{"Cuanza-Sul", "cuanza-sul"},
		{"", ""},
	}

	for _, test := range tests {
		result := NormalizarTexto(test.input)
		if result != test.expected {
			t.Errorf("NormalizarTexto(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestContemNormalizado(t *testing.T) {
	tests := []struct {
		texto    string
		termo    string
		expected bool
	}{
		{"Huíla", "huila", true},
		{"Benguela", "GUEL", true},
		{"Namibe", "luanda", false},
		{"Qualquer", "", true},
	}

	for _, test := range tests {
		result := ContemNormalizado(test.texto, test.termo)
		if result != test.expected {
			t.Errorf("ContemNormalizado(%q, %q) = %v; expected %v", test.texto, test.termo, result, test.expected)
		}
	}
}
