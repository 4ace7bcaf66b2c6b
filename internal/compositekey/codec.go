// Package compositekey codifica a identidade de uma opção de lista pesquisável
// (id da entidade + partes do rótulo) num único token textual, no formato
// usado pelos seletores do back-office: "<id>-<parte1>/<parte2>/...".
//
// A decodificação não interpreta o token: procura, na lista de candidatos, a
// entidade cuja recodificação é igual ao token. Delimitadores dentro dos
// rótulos (ex.: matrícula "LD-12-34-AA") são por isso tolerados enquanto a
// lista for a mesma do momento da codificação.
//
// O id decimal vem sempre antes do primeiro "-", então ids diferentes nunca
// produzem o mesmo token. Só há colisão quando a própria lista repete uma
// entidade, e isso é reportado por Collisions.
package compositekey

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	idSeparator    = "-"
	labelSeparator = "/"
)

var (
	ErrTokenNotFound = errors.New("opção não encontrada na lista")
	ErrDuplicateKey  = errors.New("lista com opções repetidas")
	ErrEmptyToken    = errors.New("token vazio")
)

// Candidate é uma entidade selecionável
type Candidate struct {
	ID      int64
	Labels  []string
	Display string
}

// Option é a forma enviada para o seletor: o id segue direto no campo ID e o
// token fica disponível para componentes de valor único.
type Option struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// Encode junta o id e as partes do rótulo em minúsculas
func Encode(id int64, labelParts ...string) string {
	lower := cases.Lower(language.Portuguese)

	var b strings.Builder
	b.WriteString(strconv.FormatInt(id, 10))
	b.WriteString(idSeparator)
	for i, part := range labelParts {
		if i > 0 {
			b.WriteString(labelSeparator)
		}
		b.WriteString(lower.String(part))
	}
	return b.String()
}

// Token retorna a codificação do candidato
func (c Candidate) Token() string {
	return Encode(c.ID, c.Labels...)
}

// Decode devolve o id do candidato cuja codificação é igual ao token
func Decode(token string, candidates []Candidate) (int64, error) {
	if token == "" {
		return 0, ErrEmptyToken
	}

	for _, c := range candidates {
		if c.Token() == token {
			return c.ID, nil
		}
	}
	return 0, ErrTokenNotFound
}

// Collisions conta os tokens que aparecem em mais de um candidato
func Collisions(candidates []Candidate) map[string]int {
	counts := make(map[string]int, len(candidates))
	for _, c := range candidates {
		counts[c.Token()]++
	}

	collisions := make(map[string]int)
	for token, n := range counts {
		if n > 1 {
			collisions[token] = n
		}
	}
	return collisions
}

// CheckInjective falha se dois candidatos da lista produzem o mesmo token
func CheckInjective(candidates []Candidate) error {
	collisions := Collisions(candidates)
	if len(collisions) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(collisions))
	for token := range collisions {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return fmt.Errorf("%w: %s", ErrDuplicateKey, strings.Join(tokens, ", "))
}

// Dedupe remove candidatos cujo token já apareceu, mantendo o primeiro
func Dedupe(candidates []Candidate) []Candidate {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		token := c.Token()
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Options converte candidatos em opções de seletor, na mesma ordem
func Options(candidates []Candidate) []Option {
	options := make([]Option, 0, len(candidates))
	for _, c := range candidates {
		label := c.Display
		if label == "" {
			label = strings.Join(c.Labels, " / ")
		}
		options = append(options, Option{
			ID:    c.ID,
			Value: c.Token(),
			Label: label,
		})
	}
	return options
}

// Contains verifica se o id pertence à lista
func Contains(candidates []Candidate, id int64) bool {
	for _, c := range candidates {
		if c.ID == id {
			return true
		}
	}
	return false
}
