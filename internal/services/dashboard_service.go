package services

import (
	"context"
	"sort"
	"time"

	"github.com/giant-seguros/app-backoffice/internal/models"
	"github.com/giant-seguros/app-backoffice/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const tamanhoResumoDescricao = 80

// DashboardService monta os dados do painel inicial a partir das listagens da API
type DashboardService struct {
	api    SeguradoraAPI
	janela int
	now    func() time.Time
	logger *zap.Logger
}

func NewDashboardService(api SeguradoraAPI, janelaDias int, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if janelaDias <= 0 {
		janelaDias = 30
	}
	return &DashboardService{
		api:    api,
		janela: janelaDias,
		now:    time.Now,
		logger: logger.Named("painel"),
	}
}

// Resumo conta clientes, apólices emitidas e sinistros pendentes
func (s *DashboardService) Resumo(ctx context.Context) (*models.ResumoPainel, error) {
	var (
		clientes  []models.Cliente
		apolices  []models.Apolice
		sinistros []models.Sinistro
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		clientes, err = s.api.Clientes(gctx)
		return err
	})
	g.Go(func() (err error) {
		apolices, err = s.api.Apolices(gctx)
		return err
	})
	g.Go(func() (err error) {
		sinistros, err = s.api.Sinistros(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("erro ao montar resumo do painel", zap.Error(err))
		return nil, err
	}

	resumo := &models.ResumoPainel{}
	for _, c := range clientes {
		if !c.Removido() {
			resumo.TotalClientes++
		}
	}
	for _, a := range apolices {
		if !a.Removido() {
			resumo.ApolicesEmitidas++
		}
	}
	for _, sn := range sinistros {
		if !sn.Removido() && sn.EstadoNormalizado() == models.EstadoPendente {
			resumo.SinistrosPendentes++
		}
	}
	return resumo, nil
}

// Ocorrencias lista os sinistros do período, mais recentes primeiro; limit <= 0 devolve todos
func (s *DashboardService) Ocorrencias(ctx context.Context, limit int, periodo models.Periodo) (*models.OcorrenciasResponse, error) {
	sinistros, err := s.api.Sinistros(ctx)
	if err != nil {
		s.logger.Error("erro ao listar ocorrências", zap.Error(err))
		return nil, err
	}

	ativos := sinistros[:0:0]
	for _, sn := range sinistros {
		if !sn.Removido() && periodo.Contem(sn.DataRegistro()) {
			ativos = append(ativos, sn)
		}
	}

	sort.SliceStable(ativos, func(i, j int) bool {
		return ativos[i].DataRegistro().After(ativos[j].DataRegistro())
	})

	total := len(ativos)
	if limit > 0 && len(ativos) > limit {
		ativos = ativos[:limit]
	}

	ocorrencias := make([]models.Ocorrencia, 0, len(ativos))
	for _, sn := range ativos {
		data := sn.DataRegistro()
		oc := models.Ocorrencia{
			ID:            sn.ID,
			Cliente:       sn.Cliente.String(),
			DataFormatada: utils.FormatarDataCurta(data),
			Estado:        sn.EstadoNormalizado(),
			Resumo:        utils.Resumo(sn.Descricao, tamanhoResumoDescricao),
		}
		if !data.IsZero() {
			oc.DataRegistro = data.Format(time.RFC3339)
		}
		ocorrencias = append(ocorrencias, oc)
	}

	return &models.OcorrenciasResponse{Ocorrencias: ocorrencias, Total: total}, nil
}

// ApolicesAVencer lista as apólices cujo fim cai entre hoje e o fim da janela
func (s *DashboardService) ApolicesAVencer(ctx context.Context) (*models.ApolicesAVencerResponse, error) {
	apolices, err := s.api.Apolices(ctx)
	if err != nil {
		s.logger.Error("erro ao listar apólices a vencer", zap.Error(err))
		return nil, err
	}

	now := s.now()
	hoje := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	limite := hoje.AddDate(0, 0, s.janela)

	type item struct {
		fim time.Time
		out models.ApoliceAVencer
	}
	var itens []item
	for _, a := range apolices {
		if a.Removido() || a.DataFim == nil || a.DataFim.IsZero() {
			continue
		}
		fim := time.Date(a.DataFim.Year(), a.DataFim.Month(), a.DataFim.Day(), 0, 0, 0, 0, time.UTC)
		if fim.Before(hoje) || fim.After(limite) {
			continue
		}
		itens = append(itens, item{
			fim: fim,
			out: models.ApoliceAVencer{
				ID:         a.ID,
				Numero:     a.Numero,
				Cliente:    a.Cliente.String(),
				DataFim:    fim.Format("2006-01-02"),
				DiasRestam: int(fim.Sub(hoje).Hours() / 24),
			},
		})
	}

	sort.SliceStable(itens, func(i, j int) bool { return itens[i].fim.Before(itens[j].fim) })

	resp := &models.ApolicesAVencerResponse{
		Apolices:   make([]models.ApoliceAVencer, 0, len(itens)),
		JanelaDias: s.janela,
	}
	for _, it := range itens {
		resp.Apolices = append(resp.Apolices, it.out)
	}
	return resp, nil
}
