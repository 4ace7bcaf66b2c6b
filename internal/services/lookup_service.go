package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/giant-seguros/app-backoffice/internal/compositekey"
	"github.com/giant-seguros/app-backoffice/internal/form"
	"github.com/giant-seguros/app-backoffice/internal/models"
	"github.com/giant-seguros/app-backoffice/internal/seguros"
	"github.com/giant-seguros/app-backoffice/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrLookupDesconhecido = errors.New("lista auxiliar desconhecida")

// maxParallelLookups limita as chamadas simultâneas à API ao abrir um formulário
const maxParallelLookups = 4

// LookupFetcher carrega uma lista auxiliar já convertida em candidatos
type LookupFetcher func(ctx context.Context) ([]compositekey.Candidate, error)

// LookupService carrega as listas auxiliares dos formulários, com cache
type LookupService struct {
	fetchers map[string]LookupFetcher
	cache    Cache[[]compositekey.Candidate]
	logger   *zap.Logger
}

func NewLookupService(api SeguradoraAPI, cache Cache[[]compositekey.Candidate], logger *zap.Logger) *LookupService {
	if logger == nil {
		logger = zap.NewNop()
	}

	fetchers := map[string]LookupFetcher{
		seguros.RefClientes: func(ctx context.Context) ([]compositekey.Candidate, error) {
			list, err := api.Clientes(ctx)
			return seguros.CandidatosClientes(ativos(list, func(c models.Cliente) bool { return c.Removido() })), err
		},
		seguros.RefVeiculos: func(ctx context.Context) ([]compositekey.Candidate, error) {
			list, err := api.Veiculos(ctx)
			return seguros.CandidatosVeiculos(ativos(list, func(v models.Veiculo) bool { return v.Removido() })), err
		},
		seguros.RefTiposApolice: func(ctx context.Context) ([]compositekey.Candidate, error) {
			list, err := api.TiposApolice(ctx)
			return seguros.CandidatosTiposApolice(list), err
		},
		seguros.RefTipologias: func(ctx context.Context) ([]compositekey.Candidate, error) {
			list, err := api.Tipologias(ctx)
			return seguros.CandidatosTipologias(list), err
		},
		seguros.RefCidades: func(ctx context.Context) ([]compositekey.Candidate, error) {
			list, err := api.Cidades(ctx)
			return seguros.CandidatosCidades(list), err
		},
		seguros.RefEstadosCivis: func(ctx context.Context) ([]compositekey.Candidate, error) {
			list, err := api.EstadosCivis(ctx)
			return seguros.CandidatosEstadosCivis(list), err
		},
		seguros.RefApolices: func(ctx context.Context) ([]compositekey.Candidate, error) {
			list, err := api.Apolices(ctx)
			return seguros.CandidatosApolices(ativos(list, func(a models.Apolice) bool { return a.Removido() })), err
		},
		seguros.RefProfissoes: func(context.Context) ([]compositekey.Candidate, error) {
			return seguros.CandidatosItens(seguros.Profissoes()), nil
		},
		seguros.RefTiposDocumento: func(context.Context) ([]compositekey.Candidate, error) {
			return seguros.CandidatosItens(seguros.TiposDocumento()), nil
		},
	}

	return &LookupService{
		fetchers: fetchers,
		cache:    cache,
		logger:   logger.Named("lookups"),
	}
}

// ativos remove os registros apagados logicamente
func ativos[T any](list []T, removido func(T) bool) []T {
	out := list[:0:0]
	for _, item := range list {
		if !removido(item) {
			out = append(out, item)
		}
	}
	return out
}

// Names lista as listas conhecidas em ordem alfabética
func (s *LookupService) Names() []string {
	names := make([]string, 0, len(s.fetchers))
	for name := range s.fetchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get devolve a lista de candidatos, do cache ou da API. Entidades repetidas
// pela API são registradas e descartadas para manter os tokens únicos.
func (s *LookupService) Get(ctx context.Context, name string) ([]compositekey.Candidate, error) {
	fetch, ok := s.fetchers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLookupDesconhecido, name)
	}

	if cached, ok := s.cache.Get(name); ok {
		return cached, nil
	}

	candidates, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar %s: %w", name, err)
	}

	if collisions := compositekey.Collisions(candidates); len(collisions) > 0 {
		s.logger.Warn("lista com entidades repetidas",
			zap.String("lista", name),
			zap.Error(compositekey.CheckInjective(candidates)))
		candidates = compositekey.Dedupe(candidates)
	}

	s.cache.Set(name, candidates)
	return candidates, nil
}

// Snapshot carrega em paralelo as listas pedidas. Falhas não interrompem as
// outras cargas; são devolvidas por nome para que o formulário as mostre.
func (s *LookupService) Snapshot(ctx context.Context, names []string) (form.References, map[string]string) {
	refs := make(form.References, len(names))
	falhas := make(map[string]string)

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(maxParallelLookups)

	for _, name := range names {
		g.Go(func() error {
			candidates, err := s.Get(ctx, name)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Error("falha ao carregar lista auxiliar", zap.String("lista", name), zap.Error(err))
				falhas[name] = err.Error()
				return nil
			}
			refs[name] = candidates
			return nil
		})
	}
	_ = g.Wait()

	return refs, falhas
}

// Options devolve as opções de seletor, filtradas por termo ignorando acentos
func (s *LookupService) Options(ctx context.Context, name, termo string) ([]compositekey.Option, error) {
	candidates, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	options := compositekey.Options(candidates)
	if termo == "" {
		return options, nil
	}

	filtered := options[:0:0]
	for _, opt := range options {
		if utils.ContemNormalizado(opt.Label, termo) {
			filtered = append(filtered, opt)
		}
	}
	return filtered, nil
}

// Invalidate descarta listas em cache, ex.: depois de criar um cliente
func (s *LookupService) Invalidate(names ...string) {
	for _, name := range names {
		s.cache.Delete(name)
	}
}
