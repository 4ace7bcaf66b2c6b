// Package payload transforma o estado de um formulário válido no corpo
// aninhado enviado à API da seguradora. Cada formulário é descrito por um
// Mapping (lista de regras campo -> caminho), sem código específico por tipo.
package payload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/giant-seguros/app-backoffice/internal/form"
)

var ErrPathConflict = errors.New("conflito de caminho no payload")

// Rule liga um campo de origem a um caminho pontuado no payload
// (ex.: "documentacao.pessoal.numero")
type Rule struct {
	Source   string
	Target   string
	Coercion Coercion
	// Optional omite o destino quando o campo está vazio
	Optional bool
}

// Mapping é o conjunto ordenado de regras de um formulário. Root, quando
// definido, envolve o resultado (ex.: {"apolices": {...}}).
type Mapping struct {
	Root  string
	Rules []Rule
}

// Builder monta um Mapping de forma fluente
type Builder struct {
	root  string
	rules []Rule
}

func NewMapping(root string) *Builder {
	return &Builder{root: root}
}

// Map copia o campo sem conversão
func (b *Builder) Map(source, target string) *Builder {
	return b.MapWith(source, target, Verbatim())
}

func (b *Builder) MapWith(source, target string, c Coercion) *Builder {
	b.rules = append(b.rules, Rule{Source: source, Target: target, Coercion: c})
	return b
}

// Optional é MapWith que omite o destino quando o campo está vazio
func (b *Builder) Optional(source, target string, c Coercion) *Builder {
	b.rules = append(b.rules, Rule{Source: source, Target: target, Coercion: c, Optional: true})
	return b
}

func (b *Builder) Constant(target string, value any) *Builder {
	b.rules = append(b.rules, Rule{Target: target, Coercion: Constant(value)})
	return b
}

func (b *Builder) Build() Mapping {
	rules := make([]Rule, len(b.rules))
	copy(rules, b.rules)
	return Mapping{Root: b.root, Rules: rules}
}

// Sources lista os campos lidos pelo mapping
func (m Mapping) Sources() []string {
	var sources []string
	for _, r := range m.Rules {
		if r.Source != "" {
			sources = append(sources, r.Source)
		}
	}
	return sources
}

// RuleError indica a regra que falhou
type RuleError struct {
	Source string
	Target string
	Err    error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("campo %q -> %q: %v", e.Source, e.Target, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// Transform aplica as regras ao estado. Só deve ser chamado com um estado
// válido; entradas inválidas resultam em erro, nunca em pânico. O resultado
// depende apenas do estado e das referências.
func Transform(m Mapping, state *form.FormState, refs form.References) (map[string]any, error) {
	body := make(map[string]any)

	for _, rule := range m.Rules {
		var raw any
		if rule.Source != "" {
			raw, _ = state.Get(rule.Source)
		}

		if rule.Optional && form.IsEmpty(raw) {
			continue
		}

		coercion := rule.Coercion
		if coercion == nil {
			coercion = Verbatim()
		}

		value, err := coercion.Coerce(raw, refs)
		if err != nil {
			return nil, &RuleError{Source: rule.Source, Target: rule.Target, Err: err}
		}

		if err := setPath(body, rule.Target, value); err != nil {
			return nil, &RuleError{Source: rule.Source, Target: rule.Target, Err: err}
		}
	}

	if m.Root == "" {
		return body, nil
	}
	return map[string]any{m.Root: body}, nil
}

// setPath grava value no caminho pontuado, criando os mapas intermediários
func setPath(data map[string]any, path string, value any) error {
	if path == "" {
		return fmt.Errorf("%w: caminho vazio", ErrPathConflict)
	}

	segments := strings.Split(path, ".")
	current := data

	for i, key := range segments {
		if key == "" {
			return fmt.Errorf("%w: segmento vazio em %q", ErrPathConflict, path)
		}

		if i == len(segments)-1 {
			if _, isMap := current[key].(map[string]any); isMap {
				return fmt.Errorf("%w: %q já é um objeto", ErrPathConflict, path)
			}
			current[key] = value
			return nil
		}

		next, exists := current[key]
		if !exists {
			nested := make(map[string]any)
			current[key] = nested
			current = nested
			continue
		}

		nested, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q não é um objeto", ErrPathConflict, strings.Join(segments[:i+1], "."))
		}
		current = nested
	}

	return nil
}
