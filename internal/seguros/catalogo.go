// Package seguros define os formulários do back-office (apólice, cliente e
// sinistro) como dados: schema, regras de payload, endpoint e mensagens.
package seguros

import (
	"errors"
	"sort"

	"github.com/giant-seguros/app-backoffice/internal/submission"
)

// Nomes das listas auxiliares usadas pelos campos enum-reference
const (
	RefClientes       = "clientes"
	RefVeiculos       = "veiculos"
	RefTiposApolice   = "tipos_apolice"
	RefTipologias     = "tipologias"
	RefCidades        = "cidades"
	RefEstadosCivis   = "estados_civis"
	RefProfissoes     = "profissoes"
	RefTiposDocumento = "tipos_documento"
	RefApolices       = "apolices"
)

// Tipos de formulário
const (
	TipoApolice  = "apolice"
	TipoCliente  = "cliente"
	TipoSinistro = "sinistro"
)

var ErrTipoDesconhecido = errors.New("tipo de formulário desconhecido")

// Options ajusta os valores gerados nas definições
type Options struct {
	PrefixoApolice string
}

// Catalogo indexa as definições por tipo
type Catalogo struct {
	defs map[string]submission.Definition
}

func NewCatalogo(opts Options) *Catalogo {
	if opts.PrefixoApolice == "" {
		opts.PrefixoApolice = "AUP-"
	}
	c := &Catalogo{defs: make(map[string]submission.Definition)}
	for _, def := range []submission.Definition{
		Apolice(opts.PrefixoApolice),
		Cliente(),
		Sinistro(),
	} {
		c.defs[def.Tipo] = def
	}
	return c
}

func (c *Catalogo) Get(tipo string) (submission.Definition, error) {
	def, ok := c.defs[tipo]
	if !ok {
		return submission.Definition{}, ErrTipoDesconhecido
	}
	return def, nil
}

// Tipos lista os tipos disponíveis em ordem alfabética
func (c *Catalogo) Tipos() []string {
	tipos := make([]string, 0, len(c.defs))
	for t := range c.defs {
		tipos = append(tipos, t)
	}
	sort.Strings(tipos)
	return tipos
}
