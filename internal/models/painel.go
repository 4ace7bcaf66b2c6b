package models

import "time"

// ResumoPainel são os contadores do topo do painel
type ResumoPainel struct {
	TotalClientes      int `json:"total_clientes"`
	ApolicesEmitidas   int `json:"apolices_emitidas"`
	SinistrosPendentes int `json:"sinistros_pendentes"`
}

// Ocorrencia é uma linha da tabela de ocorrências
type Ocorrencia struct {
	ID            int64  `json:"id"`
	Cliente       string `json:"cliente"`
	DataRegistro  string `json:"data_registro"`
	DataFormatada string `json:"data_formatada"`
	Estado        string `json:"estado"`
	Resumo        string `json:"resumo,omitempty"`
}

// Periodo filtra ocorrências por dia de registro, com limites inclusivos.
// Um limite zero fica em aberto.
type Periodo struct {
	De  time.Time
	Ate time.Time
}

// Aberto indica que nenhum limite foi informado
func (p Periodo) Aberto() bool {
	return p.De.IsZero() && p.Ate.IsZero()
}

// Contem indica se o dia de t cai no período. Datas desconhecidas só
// passam quando o período está em aberto.
func (p Periodo) Contem(t time.Time) bool {
	if p.Aberto() {
		return true
	}
	if t.IsZero() {
		return false
	}
	dia := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if !p.De.IsZero() && dia.Before(p.De) {
		return false
	}
	if !p.Ate.IsZero() && dia.After(p.Ate) {
		return false
	}
	return true
}

type OcorrenciasResponse struct {
	Ocorrencias []Ocorrencia `json:"ocorrencias"`
	Total       int          `json:"total"`
}

// ApoliceAVencer é uma apólice em final de contrato
type ApoliceAVencer struct {
	ID         int64  `json:"id"`
	Numero     string `json:"numero"`
	Cliente    string `json:"cliente"`
	DataFim    string `json:"data_fim"`
	DiasRestam int    `json:"dias_restantes"`
}

type ApolicesAVencerResponse struct {
	Apolices   []ApoliceAVencer `json:"apolices"`
	JanelaDias int              `json:"janela_dias"`
}
