package form

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/giant-seguros/app-backoffice/internal/compositekey"
	"github.com/go-playground/validator/v10"
)

// References é o instantâneo imutável das listas auxiliares de um formulário,
// indexado pelo nome da lista (FieldSchema.Reference)
type References map[string][]compositekey.Candidate

// ValidationResult mapeia campo para mensagem de erro
type ValidationResult struct {
	Errors  map[string]string `json:"errors"`
	IsValid bool              `json:"isValid"`
}

// Error devolve a mensagem do campo, ou "" se ele é válido
func (r ValidationResult) Error(field string) string {
	return r.Errors[field]
}

// Visible filtra os erros dos campos já tocados
func (r ValidationResult) Visible(state *FormState) map[string]string {
	visible := make(map[string]string)
	for field, msg := range r.Errors {
		if state.Touched(field) {
			visible[field] = msg
		}
	}
	return visible
}

// Validator avalia um FormState contra um FormSchema. O relógio e as listas
// auxiliares são explícitos para que o resultado dependa só das entradas.
type Validator struct {
	now      func() time.Time
	location *time.Location
	refs     References
	validate *validator.Validate
}

type Option func(*Validator)

// WithClock define a fonte de "hoje" usada nas regras de data
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// WithLocation define o fuso usado para calcular o dia corrente
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		v.location = loc
	}
}

// WithReferences liga as listas auxiliares. Sem elas a pertinência dos campos
// enum-reference não é verificada.
func WithReferences(refs References) Option {
	return func(v *Validator) {
		v.refs = refs
	}
}

func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		now:      time.Now,
		location: time.Local,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = NewValidator()

// Validate usa o relógio do sistema e não verifica pertinência às listas
func Validate(schema *FormSchema, state *FormState) ValidationResult {
	return defaultValidator.Validate(schema, state)
}

// Validate percorre os campos na ordem de declaração. Para cada campo:
// obrigatoriedade, tipo e restrições, parando na primeira falha.
func (v *Validator) Validate(schema *FormSchema, state *FormState) ValidationResult {
	result := ValidationResult{Errors: make(map[string]string)}

	for _, field := range schema.fields {
		if msg := v.validateField(field, state); msg != "" {
			result.Errors[field.Name] = msg
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

func (v *Validator) validateField(field FieldSchema, state *FormState) string {
	raw, _ := state.Get(field.Name)

	if IsEmpty(raw) {
		if field.Required {
			return firstNonEmpty(field.RequiredMessage, MsgRequired)
		}
		return ""
	}

	if msg := v.checkKind(field, raw); msg != "" {
		return msg
	}

	for _, c := range field.Constraints {
		if msg := v.checkConstraint(c, field, raw, state); msg != "" {
			return msg
		}
	}

	return ""
}

func (v *Validator) checkKind(field FieldSchema, raw any) string {
	switch field.Kind {
	case KindText:
		if _, ok := AsText(raw); !ok {
			return firstNonEmpty(field.TypeMessage, MsgInvalidText)
		}
	case KindNumber:
		if _, ok := AsNumber(raw); !ok {
			return firstNonEmpty(field.TypeMessage, MsgNotNumber)
		}
	case KindDate:
		if _, ok := parseDate(raw); !ok {
			return firstNonEmpty(field.TypeMessage, MsgInvalidDate)
		}
	case KindBoolean:
		if _, ok := AsBool(raw); !ok {
			return firstNonEmpty(field.TypeMessage, MsgInvalidBoolean)
		}
	case KindReference:
		return v.checkReference(field, raw)
	}
	return ""
}

func (v *Validator) checkReference(field FieldSchema, raw any) string {
	value, ok := AsText(raw)
	if !ok {
		return firstNonEmpty(field.TypeMessage, MsgInvalidOption)
	}
	if v.refs == nil {
		return ""
	}

	candidates, ok := v.refs[field.Reference]
	if !ok {
		return MsgOptionsUnavailable
	}

	if field.Composite {
		if _, err := compositekey.Decode(value, candidates); err != nil {
			return firstNonEmpty(field.TypeMessage, MsgInvalidOption)
		}
		return ""
	}

	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || !compositekey.Contains(candidates, id) {
		return firstNonEmpty(field.TypeMessage, MsgInvalidOption)
	}
	return ""
}

func (v *Validator) checkConstraint(c Constraint, field FieldSchema, raw any, state *FormState) string {
	fail := func(fallback string) string {
		return firstNonEmpty(c.Message, fallback)
	}

	switch c.Rule {
	case RuleNonNegative:
		if n, ok := AsNumber(raw); !ok || n < 0 {
			return fail(MsgNegative)
		}
	case RuleEmail:
		text, _ := AsText(raw)
		if err := v.validate.Var(strings.TrimSpace(text), "email"); err != nil {
			return fail(MsgInvalidEmail)
		}
	case RuleNotBeforeToday:
		date, ok := parseDate(raw)
		if !ok || date.Before(v.today()) {
			return fail(MsgDateBeforeToday)
		}
	case RuleNotBeforeField:
		date, ok := parseDate(raw)
		if !ok {
			return fail(MsgInvalidDate)
		}
		otherRaw, _ := state.Get(c.Field)
		other, ok := parseDate(otherRaw)
		if ok && date.Before(other) {
			return fail(MsgInvalidDate)
		}
	case RuleOneOf:
		text, _ := AsText(raw)
		for _, allowed := range c.Values {
			if text == allowed {
				return ""
			}
		}
		return fail(MsgInvalidOption)
	case RuleMaxLength:
		text, _ := AsText(raw)
		if utf8.RuneCountInString(text) > c.Max {
			return fail(MsgTooLong)
		}
	}
	return ""
}

// today é a data corrente à meia-noite UTC, comparável com parseDate
func (v *Validator) today() time.Time {
	now := v.now().In(v.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDate aceita a data do input ("2006-01-02") ou um timestamp RFC 3339
func parseDate(raw any) (time.Time, bool) {
	text, ok := raw.(string)
	if !ok {
		return time.Time{}, false
	}
	text = strings.TrimSpace(text)

	if d, err := time.Parse(DateLayout, text); err == nil {
		return d, true
	}
	if ts, err := time.Parse(time.RFC3339, text); err == nil {
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// ParseDate expõe a leitura de datas do formulário para o transformador
func ParseDate(raw any) (time.Time, bool) {
	return parseDate(raw)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
