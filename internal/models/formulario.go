package models

import (
	"github.com/giant-seguros/app-backoffice/internal/compositekey"
	"github.com/giant-seguros/app-backoffice/internal/form"
)

// CampoResponse descreve um campo para o front-end montar o formulário
type CampoResponse struct {
	Nome        string            `json:"nome"`
	Rotulo      string            `json:"rotulo"`
	Tipo        form.Kind         `json:"tipo"`
	Obrigatorio bool              `json:"obrigatorio"`
	Referencia  string            `json:"referencia,omitempty"`
	Composto    bool              `json:"composto,omitempty"`
	Restricoes  []form.Constraint `json:"restricoes,omitempty"`
}

// FormularioResponse é o estado de uma instância de formulário aberta
type FormularioResponse struct {
	ID      string                           `json:"id"`
	Tipo    string                           `json:"tipo"`
	Titulo  string                           `json:"titulo"`
	Estado  string                           `json:"estado"`
	Campos  []CampoResponse                  `json:"campos"`
	Valores map[string]any                   `json:"valores"`
	Erros   map[string]string                `json:"erros"`
	Valido  bool                             `json:"valido"`
	Opcoes  map[string][]compositekey.Option `json:"opcoes,omitempty"`
	Falhas  map[string]string                `json:"falhas,omitempty"`
}

// EdicaoRequest são os valores editados de um formulário
type EdicaoRequest struct {
	Valores map[string]any `json:"valores" binding:"required"`
}

// ValidacaoResponse é o resultado da validação depois de uma edição
type ValidacaoResponse struct {
	Erros         map[string]string `json:"erros"`
	ErrosVisiveis map[string]string `json:"erros_visiveis"`
	Valido        bool              `json:"valido"`
}

// OpcoesResponse são as opções de seletor de uma lista auxiliar
type OpcoesResponse struct {
	Lista  string                `json:"lista"`
	Opcoes []compositekey.Option `json:"opcoes"`
	Total  int                   `json:"total"`
}

// ErrorResponse é o corpo padrão de erro da API
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
