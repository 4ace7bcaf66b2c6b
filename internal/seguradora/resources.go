package seguradora

import (
	"context"

	"github.com/giant-seguros/app-backoffice/internal/models"
)

// Caminhos das listagens da API
const (
	PathClientes     = "/clients"
	PathVeiculos     = "/vehicles"
	PathTiposApolice = "/apolicetipos"
	PathTipologias   = "/apolicevalores"
	PathCidades      = "/city"
	PathEstadosCivis = "/cstatus"
	PathApolices     = "/apolices"
	PathSinistros    = "/sinistros"
)

func (c *Client) Clientes(ctx context.Context) ([]models.Cliente, error) {
	var out []models.Cliente
	err := c.List(ctx, PathClientes, &out)
	return out, err
}

func (c *Client) Veiculos(ctx context.Context) ([]models.Veiculo, error) {
	var out []models.Veiculo
	err := c.List(ctx, PathVeiculos, &out)
	return out, err
}

func (c *Client) TiposApolice(ctx context.Context) ([]models.TipoApolice, error) {
	var out []models.TipoApolice
	err := c.List(ctx, PathTiposApolice, &out)
	return out, err
}

func (c *Client) Tipologias(ctx context.Context) ([]models.Tipologia, error) {
	var out []models.Tipologia
	err := c.List(ctx, PathTipologias, &out)
	return out, err
}

func (c *Client) Cidades(ctx context.Context) ([]models.Cidade, error) {
	var out []models.Cidade
	err := c.List(ctx, PathCidades, &out)
	return out, err
}

func (c *Client) EstadosCivis(ctx context.Context) ([]models.EstadoCivil, error) {
	var out []models.EstadoCivil
	err := c.List(ctx, PathEstadosCivis, &out)
	return out, err
}

func (c *Client) Apolices(ctx context.Context) ([]models.Apolice, error) {
	var out []models.Apolice
	err := c.List(ctx, PathApolices, &out)
	return out, err
}

func (c *Client) Sinistros(ctx context.Context) ([]models.Sinistro, error) {
	var out []models.Sinistro
	err := c.List(ctx, PathSinistros, &out)
	return out, err
}
