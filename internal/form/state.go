package form

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// FormState guarda o valor bruto de cada campo e se ele já foi tocado.
// Pertence a uma única instância de formulário e não é seguro para uso
// concorrente sem o lock do dono.
type FormState struct {
	values  map[string]any
	touched map[string]bool
}

// NewState cria um estado com os valores iniciais, nenhum campo tocado
func NewState(initial map[string]any) *FormState {
	s := &FormState{
		values:  make(map[string]any, len(initial)),
		touched: make(map[string]bool),
	}
	for k, v := range initial {
		s.values[k] = normalize(v)
	}
	return s
}

func (s *FormState) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Set grava o valor e marca o campo como tocado
func (s *FormState) Set(name string, value any) {
	s.values[name] = normalize(value)
	s.touched[name] = true
}

// Apply aplica um lote de edições
func (s *FormState) Apply(edits map[string]any) {
	for name, value := range edits {
		s.Set(name, value)
	}
}

func (s *FormState) Touch(name string) {
	s.touched[name] = true
}

func (s *FormState) Touched(name string) bool {
	return s.touched[name]
}

// TouchedFields lista os campos tocados em ordem alfabética
func (s *FormState) TouchedFields() []string {
	fields := make([]string, 0, len(s.touched))
	for name, touched := range s.touched {
		if touched {
			fields = append(fields, name)
		}
	}
	sort.Strings(fields)
	return fields
}

// Values devolve uma cópia dos valores
func (s *FormState) Values() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s *FormState) Clone() *FormState {
	c := NewState(s.values)
	for k, v := range s.touched {
		c.touched[k] = v
	}
	return c
}

// Reset descarta edições e volta aos valores dados
func (s *FormState) Reset(initial map[string]any) {
	s.values = make(map[string]any, len(initial))
	s.touched = make(map[string]bool)
	for k, v := range initial {
		s.values[k] = normalize(v)
	}
}

// normalize reduz os valores aos tipos brutos do formulário: string, float64, bool ou nil
func normalize(v any) any {
	switch val := v.(type) {
	case nil, string, bool, float64:
		return val
	case int:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case float32:
		return float64(val)
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}

// IsEmpty indica valor ausente: nil, texto em branco ou NaN
func IsEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case float64:
		return math.IsNaN(val)
	default:
		return false
	}
}

// AsText devolve o valor como texto
func AsText(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		return "", false
	}
}

// AsNumber aceita números e textos numéricos
func AsNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, false
		}
		return val, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// AsBool aceita booleanos e os textos enviados por checkboxes
func AsBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "on", "1":
			return true, true
		case "false", "off", "0", "":
			return false, true
		}
	}
	return false, false
}
