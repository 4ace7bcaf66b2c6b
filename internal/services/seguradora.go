package services

import (
	"context"

	"github.com/giant-seguros/app-backoffice/internal/models"
)

// SeguradoraAPI são as listagens da API remota usadas pelos serviços
type SeguradoraAPI interface {
	Clientes(ctx context.Context) ([]models.Cliente, error)
	Veiculos(ctx context.Context) ([]models.Veiculo, error)
	TiposApolice(ctx context.Context) ([]models.TipoApolice, error)
	Tipologias(ctx context.Context) ([]models.Tipologia, error)
	Cidades(ctx context.Context) ([]models.Cidade, error)
	EstadosCivis(ctx context.Context) ([]models.EstadoCivil, error)
	Apolices(ctx context.Context) ([]models.Apolice, error)
	Sinistros(ctx context.Context) ([]models.Sinistro, error)
}
