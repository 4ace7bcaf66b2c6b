// Package form descreve formulários de forma declarativa (FieldSchema e
// FormSchema), guarda o estado bruto de cada formulário aberto (FormState) e
// valida esse estado contra o schema.
package form

import (
	"errors"
	"fmt"
)

// Kind é o tipo de entrada de um campo
type Kind string

const (
	KindText      Kind = "text"
	KindNumber    Kind = "number"
	KindDate      Kind = "date"
	KindBoolean   Kind = "boolean"
	KindReference Kind = "enum-reference"
)

// DateLayout é o formato dos campos de data (input type="date")
const DateLayout = "2006-01-02"

// Rule identifica uma restrição de formato ou intervalo
type Rule string

const (
	RuleNonNegative    Rule = "non_negative"
	RuleEmail          Rule = "email"
	RuleNotBeforeToday Rule = "not_before_today"
	RuleNotBeforeField Rule = "not_before_field"
	RuleOneOf          Rule = "one_of"
	RuleMaxLength      Rule = "max_length"
)

// Constraint é uma restrição aplicada depois da checagem de tipo
type Constraint struct {
	Rule    Rule     `json:"rule"`
	Field   string   `json:"field,omitempty"`
	Values  []string `json:"values,omitempty"`
	Max     int      `json:"max,omitempty"`
	Message string   `json:"message"`
}

func NonNegative(message string) Constraint {
	return Constraint{Rule: RuleNonNegative, Message: message}
}

func Email(message string) Constraint {
	return Constraint{Rule: RuleEmail, Message: message}
}

func NotBeforeToday(message string) Constraint {
	return Constraint{Rule: RuleNotBeforeToday, Message: message}
}

// NotBefore exige que a data não seja anterior à data de outro campo
func NotBefore(field, message string) Constraint {
	return Constraint{Rule: RuleNotBeforeField, Field: field, Message: message}
}

func OneOf(message string, values ...string) Constraint {
	return Constraint{Rule: RuleOneOf, Values: values, Message: message}
}

func MaxLength(max int, message string) Constraint {
	return Constraint{Rule: RuleMaxLength, Max: max, Message: message}
}

// FieldSchema descreve um campo. Reference nomeia a lista auxiliar de um campo
// enum-reference; Composite indica que o valor é um token de compositekey e
// não o id puro.
type FieldSchema struct {
	Name            string       `json:"name"`
	Label           string       `json:"label"`
	Kind            Kind         `json:"kind"`
	Required        bool         `json:"required"`
	Constraints     []Constraint `json:"constraints,omitempty"`
	RequiredMessage string       `json:"requiredMessage,omitempty"`
	TypeMessage     string       `json:"typeMessage,omitempty"`
	Reference       string       `json:"reference,omitempty"`
	Composite       bool         `json:"composite,omitempty"`
	Default         any          `json:"default,omitempty"`
}

var (
	ErrDuplicateField   = errors.New("campo duplicado no schema")
	ErrMissingReference = errors.New("campo enum-reference sem lista de referência")
	ErrUnknownKind      = errors.New("tipo de campo desconhecido")
	ErrUnknownField     = errors.New("campo desconhecido")
)

// FormSchema é a lista ordenada de campos de um tipo de formulário
type FormSchema struct {
	name   string
	fields []FieldSchema
	index  map[string]int
}

// NewSchema monta um schema preservando a ordem de declaração
func NewSchema(name string, fields ...FieldSchema) (*FormSchema, error) {
	s := &FormSchema{
		name:   name,
		fields: make([]FieldSchema, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if _, exists := s.index[f.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		switch f.Kind {
		case KindText, KindNumber, KindDate, KindBoolean:
		case KindReference:
			if f.Reference == "" {
				return nil, fmt.Errorf("%w: %s", ErrMissingReference, f.Name)
			}
		default:
			return nil, fmt.Errorf("%w: %s (%s)", ErrUnknownKind, f.Name, f.Kind)
		}
		for _, c := range f.Constraints {
			if c.Rule == RuleNotBeforeField && c.Field == f.Name {
				return nil, fmt.Errorf("campo %s não pode ser comparado consigo mesmo", f.Name)
			}
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s, nil
}

// MustSchema é NewSchema para schemas estáticos
func MustSchema(name string, fields ...FieldSchema) *FormSchema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *FormSchema) Name() string { return s.name }

// Fields retorna uma cópia dos campos na ordem de declaração
func (s *FormSchema) Fields() []FieldSchema {
	out := make([]FieldSchema, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *FormSchema) Field(name string) (FieldSchema, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSchema{}, false
	}
	return s.fields[i], true
}

func (s *FormSchema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// References lista os nomes das listas auxiliares usadas pelo schema, sem repetição
func (s *FormSchema) References() []string {
	var refs []string
	seen := make(map[string]bool)
	for _, f := range s.fields {
		if f.Reference != "" && !seen[f.Reference] {
			seen[f.Reference] = true
			refs = append(refs, f.Reference)
		}
	}
	return refs
}

// Defaults devolve os valores iniciais declarados nos campos
func (s *FormSchema) Defaults() map[string]any {
	defaults := make(map[string]any)
	for _, f := range s.fields {
		if f.Default != nil {
			defaults[f.Name] = normalize(f.Default)
		}
	}
	return defaults
}
