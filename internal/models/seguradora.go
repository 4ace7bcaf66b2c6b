package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/giant-seguros/app-backoffice/internal/utils"
)

// DataAPI aceita as várias representações de data da API da seguradora
// ("2023-07-08 13:07:12", "2023-07-08", RFC 3339 ou null)
type DataAPI struct {
	time.Time
}

func (d *DataAPI) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, ok := utils.ParseDataAPI(raw)
	if !ok {
		d.Time = time.Time{}
		return nil
	}
	d.Time = t
	return nil
}

func (d DataAPI) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02 15:04:05"))
}

// TextoAPI aceita texto ou número (a API devolve alguns campos de um jeito ou de outro)
type TextoAPI string

func (t *TextoAPI) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TextoAPI(s)
		return nil
	}
	*t = TextoAPI(strings.TrimSpace(string(data)))
	return nil
}

func (t TextoAPI) String() string { return string(t) }

// Auditoria são as colunas de auditoria comuns às tabelas da API
type Auditoria struct {
	InseridoPor      *int64   `json:"INSERIDO_POR,omitempty"`
	ActualizadoPor   *int64   `json:"ACTUALIZADO_POR,omitempty"`
	RemovidoPor      *int64   `json:"REMOVIDO_POR,omitempty"`
	DataInsercao     *DataAPI `json:"DATA_INSERCAO,omitempty"`
	DataActualizacao *DataAPI `json:"DATA_ACTUALIZACAO,omitempty"`
	DataRemocao      *DataAPI `json:"DATA_REMOCAO,omitempty"`
}

// Removido indica registros apagados logicamente
func (a Auditoria) Removido() bool {
	return a.DataRemocao != nil && !a.DataRemocao.IsZero()
}

type Cliente struct {
	ID   int64  `json:"ID"`
	Nome string `json:"NOME"`
	NIF  string `json:"NIF,omitempty"`
	Auditoria
}

type Veiculo struct {
	ID        int64  `json:"ID"`
	Matricula string `json:"MATRICULA"`
	Marca     string `json:"MARCA"`
	Modelo    string `json:"MODELO"`
	Auditoria
}

type TipoApolice struct {
	ID   int64  `json:"ID"`
	Nome string `json:"NOME"`
	Auditoria
}

type Tipologia struct {
	ID        int64  `json:"ID"`
	Tipologia string `json:"TIPOLOGIA"`
	Auditoria
}

type Cidade struct {
	ID   int64  `json:"ID"`
	Nome string `json:"NOME"`
	Auditoria
}

type EstadoCivil struct {
	ID   int64  `json:"ID"`
	Nome string `json:"NOME"`
	Auditoria
}

type Profissao struct {
	ID   int64  `json:"ID"`
	Nome string `json:"NOME"`
	Auditoria
}

// TipoDocumento é o documento de identificação pessoal
type TipoDocumento struct {
	ID   int64  `json:"ID"`
	Nome string `json:"NOME"`
}

// Apolice é a apólice como listada pela API; CLIENTE é o nome do tomador
type Apolice struct {
	ID         int64    `json:"ID"`
	Numero     string   `json:"NUMERO"`
	Cliente    TextoAPI `json:"CLIENTE"`
	Valor      TextoAPI `json:"VALOR,omitempty"`
	DataInicio *DataAPI `json:"DATA_INICIO,omitempty"`
	DataFim    *DataAPI `json:"DATA_FIM,omitempty"`
	Auditoria
}

// Sinistro é o registro de ocorrência listado no painel
type Sinistro struct {
	ID        int64    `json:"ID"`
	Cliente   TextoAPI `json:"CLIENTE"`
	Apolice   TextoAPI `json:"APOLICE,omitempty"`
	Estado    TextoAPI `json:"ESTADO"`
	Data      *DataAPI `json:"DATA,omitempty"`
	Descricao string   `json:"DESCRICAO,omitempty"`
	Auditoria
}

// DataRegistro é a data de inserção, ou a data da ocorrência se não houver
func (s Sinistro) DataRegistro() time.Time {
	if s.DataInsercao != nil && !s.DataInsercao.IsZero() {
		return s.DataInsercao.Time
	}
	if s.Data != nil {
		return s.Data.Time
	}
	return time.Time{}
}

// Estados de sinistro conhecidos. A API devolve texto ou o código numérico.
const (
	EstadoPendente  = "Pendente"
	EstadoResolvido = "Resolvida"
	EstadoCancelado = "Cancelada"
)

var estadosPorCodigo = map[int]string{
	1: EstadoPendente,
	2: EstadoResolvido,
	3: EstadoCancelado,
}

// EstadoNormalizado traduz códigos numéricos e uniformiza a caixa
func (s Sinistro) EstadoNormalizado() string {
	raw := strings.TrimSpace(s.Estado.String())
	if code, err := strconv.Atoi(raw); err == nil {
		if nome, ok := estadosPorCodigo[code]; ok {
			return nome
		}
	}
	switch utils.NormalizarTexto(raw) {
	case "", "pendente", "aberto", "aberta", "em analise":
		return EstadoPendente
	case "resolvida", "resolvido", "fechado", "fechada":
		return EstadoResolvido
	case "cancelada", "cancelado":
		return EstadoCancelado
	}
	return raw
}

// RespostaCriacao é o corpo devolvido pelos endpoints de criação.
// Status "200" indica sucesso; qualquer outro texto é a mensagem de rejeição.
type RespostaCriacao struct {
	Status StatusAPI `json:"status"`
}

// StatusAPI é o status de aplicação de uma criação. Só um texto JSON conta
// como status; números e outros valores ficam guardados crus e nunca
// equivalem a sucesso.
type StatusAPI struct {
	texto  string
	bruto  string
	ehText bool
}

// NewStatusAPI cria um status textual
func NewStatusAPI(s string) StatusAPI {
	return StatusAPI{texto: s, bruto: s, ehText: true}
}

func (s *StatusAPI) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*s = StatusAPI{}
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*s = NewStatusAPI(text)
		return nil
	}
	*s = StatusAPI{bruto: string(trimmed)}
	return nil
}

// Is indica se o status é exatamente o texto code
func (s StatusAPI) Is(code string) bool {
	return s.ehText && s.texto == code
}

// String devolve o valor recebido, textual ou cru
func (s StatusAPI) String() string { return s.bruto }
