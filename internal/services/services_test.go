package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/giant-seguros/app-backoffice/internal/compositekey"
	"github.com/giant-seguros/app-backoffice/internal/models"
	"github.com/giant-seguros/app-backoffice/internal/seguros"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	cidadesCalls atomic.Int32

	clientes  []models.Cliente
	veiculos  []models.Veiculo
	cidades   []models.Cidade
	apolices  []models.Apolice
	sinistros []models.Sinistro
	errVeic   error
}

func (f *fakeAPI) Clientes(context.Context) ([]models.Cliente, error) { return f.clientes, nil }
func (f *fakeAPI) Veiculos(context.Context) ([]models.Veiculo, error) { return f.veiculos, f.errVeic }
func (f *fakeAPI) TiposApolice(context.Context) ([]models.TipoApolice, error) {
	return []models.TipoApolice{{ID: 1, Nome: "Automóvel"}}, nil
}
func (f *fakeAPI) Tipologias(context.Context) ([]models.Tipologia, error) {
	return []models.Tipologia{{ID: 2, Tipologia: "Terceiros"}}, nil
}
func (f *fakeAPI) Cidades(context.Context) ([]models.Cidade, error) {
	f.cidadesCalls.Add(1)
	return f.cidades, nil
}
func (f *fakeAPI) EstadosCivis(context.Context) ([]models.EstadoCivil, error) {
	return []models.EstadoCivil{{ID: 1, Nome: "Solteiro(a)"}}, nil
}
func (f *fakeAPI) Apolices(context.Context) ([]models.Apolice, error) { return f.apolices, nil }
func (f *fakeAPI) Sinistros(context.Context) ([]models.Sinistro, error) { return f.sinistros, nil }

func data(t *testing.T, raw string) *models.DataAPI {
	t.Helper()
	var d models.DataAPI
	require.NoError(t, json.Unmarshal([]byte(`"`+raw+`"`), &d))
	return &d
}

func newLookupService(api SeguradoraAPI) *LookupService {
	return NewLookupService(api, NewLRUCache[[]compositekey.Candidate](16, time.Minute), nil)
}

func TestLookupService_CachesLists(t *testing.T) {
	api := &fakeAPI{cidades: []models.Cidade{{ID: 3, Nome: "LUANDA"}}}
	svc := newLookupService(api)

	for i := 0; i < 3; i++ {
		got, err := svc.Get(context.Background(), seguros.RefCidades)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
	assert.Equal(t, int32(1), api.cidadesCalls.Load())

	svc.Invalidate(seguros.RefCidades)
	_, err := svc.Get(context.Background(), seguros.RefCidades)
	require.NoError(t, err)
	assert.Equal(t, int32(2), api.cidadesCalls.Load())
}

func TestLookupService_DropsRepeatedEntities(t *testing.T) {
	api := &fakeAPI{cidades: []models.Cidade{
		{ID: 8, Nome: "Uíge"},
		{ID: 8, Nome: "UÍGE"},
		{ID: 9, Nome: "Benguela"},
	}}
	svc := newLookupService(api)

	got, err := svc.Get(context.Background(), seguros.RefCidades)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, compositekey.CheckInjective(got))
}

func TestLookupService_SkipsRemoved(t *testing.T) {
	api := &fakeAPI{clientes: []models.Cliente{
		{ID: 1, Nome: "Ana"},
		{ID: 2, Nome: "Rui", Auditoria: models.Auditoria{DataRemocao: data(t, "2024-01-01 10:00:00")}},
	}}
	svc := newLookupService(api)

	got, err := svc.Get(context.Background(), seguros.RefClientes)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestLookupService_Snapshot(t *testing.T) {
	api := &fakeAPI{
		cidades: []models.Cidade{{ID: 3, Nome: "LUANDA"}},
		errVeic: errors.New("timeout"),
	}
	svc := newLookupService(api)

	refs, falhas := svc.Snapshot(context.Background(), []string{
		seguros.RefCidades, seguros.RefVeiculos, seguros.RefProfissoes, "inexistente",
	})

	assert.Contains(t, refs, seguros.RefCidades)
	assert.Len(t, refs[seguros.RefProfissoes], 4)
	assert.NotContains(t, refs, seguros.RefVeiculos)
	assert.Contains(t, falhas[seguros.RefVeiculos], "timeout")
	assert.Contains(t, falhas["inexistente"], ErrLookupDesconhecido.Error())
}

func TestLookupService_Options(t *testing.T) {
	api := &fakeAPI{cidades: []models.Cidade{
		{ID: 3, Nome: "LUANDA"},
		{ID: 5, Nome: "Huíla"},
		{ID: 9, Nome: "Benguela"},
	}}
	svc := newLookupService(api)

	all, err := svc.Options(context.Background(), seguros.RefCidades, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := svc.Options(context.Background(), seguros.RefCidades, "huila")
	require.NoError(t, err)
	assert.Equal(t, []compositekey.Option{{ID: 5, Value: "5-huíla", Label: "Huíla"}}, filtered)

	_, err = svc.Options(context.Background(), "marcas", "")
	assert.ErrorIs(t, err, ErrLookupDesconhecido)
}

func TestLRUCache(t *testing.T) {
	cache := NewLRUCache[int](2, time.Minute)
	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	_, ok := cache.Get("a")
	assert.False(t, ok)
	v, ok := cache.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, cache.Size())

	cache.Delete("c")
	assert.Equal(t, 1, cache.Size())
	cache.Clear()
	assert.Equal(t, 0, cache.Size())
}

func TestDashboardService_Resumo(t *testing.T) {
	api := &fakeAPI{
		clientes: []models.Cliente{{ID: 1}, {ID: 2}, {ID: 3, Auditoria: models.Auditoria{DataRemocao: data(t, "2024-01-01")}}},
		apolices: []models.Apolice{{ID: 1}, {ID: 2}},
		sinistros: []models.Sinistro{
			{ID: 1, Estado: "Pendente"},
			{ID: 2, Estado: "1"},
			{ID: 3, Estado: "Resolvida"},
			{ID: 4, Estado: "Cancelada"},
		},
	}
	svc := NewDashboardService(api, 30, nil)

	resumo, err := svc.Resumo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &models.ResumoPainel{TotalClientes: 2, ApolicesEmitidas: 2, SinistrosPendentes: 2}, resumo)
}

func TestDashboardService_Ocorrencias(t *testing.T) {
	api := &fakeAPI{sinistros: []models.Sinistro{
		{ID: 1, Cliente: "Daniel Moniz", Estado: "Cancelada", Auditoria: models.Auditoria{DataInsercao: data(t, "2023-01-24 10:00:00")}},
		{ID: 2, Cliente: "Ana Costa", Estado: "2", Descricao: "Vidro **partido**", Auditoria: models.Auditoria{DataInsercao: data(t, "2023-02-01 09:30:00")}},
		{ID: 3, Cliente: "Rui", Estado: "Pendente", Data: data(t, "2023-01-01")},
	}}
	svc := NewDashboardService(api, 30, nil)

	resp, err := svc.Ocorrencias(context.Background(), 2, models.Periodo{})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Ocorrencias, 2)
	assert.Equal(t, models.Ocorrencia{
		ID:            2,
		Cliente:       "Ana Costa",
		DataRegistro:  "2023-02-01T09:30:00Z",
		DataFormatada: "1 de Fev, 2023",
		Estado:        models.EstadoResolvido,
		Resumo:        "Vidro partido",
	}, resp.Ocorrencias[0])
	assert.Equal(t, "24 de Jan, 2023", resp.Ocorrencias[1].DataFormatada)
	assert.Equal(t, models.EstadoCancelado, resp.Ocorrencias[1].Estado)
}

func TestDashboardService_OcorrenciasPorPeriodo(t *testing.T) {
	api := &fakeAPI{sinistros: []models.Sinistro{
		{ID: 1, Cliente: "Daniel Moniz", Auditoria: models.Auditoria{DataInsercao: data(t, "2023-01-24 10:00:00")}},
		{ID: 2, Cliente: "Ana Costa", Auditoria: models.Auditoria{DataInsercao: data(t, "2023-02-01 23:30:00")}},
		{ID: 3, Cliente: "Rui", Data: data(t, "2023-01-01")},
		{ID: 4, Cliente: "Sem data"},
	}}
	svc := NewDashboardService(api, 30, nil)
	dia := func(raw string) time.Time {
		d, err := time.Parse(time.DateOnly, raw)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name     string
		periodo  models.Periodo
		expected []int64
	}{
		{"sem filtro inclui datas desconhecidas", models.Periodo{}, []int64{2, 1, 3, 4}},
		{"limites inclusivos", models.Periodo{De: dia("2023-01-24"), Ate: dia("2023-02-01")}, []int64{2, 1}},
		{"só data inicial", models.Periodo{De: dia("2023-01-25")}, []int64{2}},
		{"só data final", models.Periodo{Ate: dia("2023-01-23")}, []int64{3}},
		{"período vazio", models.Periodo{De: dia("2024-01-01")}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Ocorrencias(context.Background(), 0, tt.periodo)
			require.NoError(t, err)

			ids := []int64{}
			for _, oc := range resp.Ocorrencias {
				ids = append(ids, oc.ID)
			}
			assert.Equal(t, tt.expected, ids)
			assert.Equal(t, len(tt.expected), resp.Total)
		})
	}
}

func TestDashboardService_ApolicesAVencer(t *testing.T) {
	api := &fakeAPI{apolices: []models.Apolice{
		{ID: 1, Numero: "AUP-A", Cliente: "Ana", DataFim: data(t, "2025-03-20")},
		{ID: 2, Numero: "AUP-B", Cliente: "Rui", DataFim: data(t, "2025-03-12 00:00:00")},
		{ID: 3, Numero: "AUP-C", Cliente: "Eva", DataFim: data(t, "2025-06-01")},
		{ID: 4, Numero: "AUP-D", Cliente: "Lia", DataFim: data(t, "2025-03-01")},
		{ID: 5, Numero: "AUP-E", Cliente: "Zé"},
	}}
	svc := NewDashboardService(api, 30, nil)
	svc.now = func() time.Time { return time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC) }

	resp, err := svc.ApolicesAVencer(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 30, resp.JanelaDias)
	require.Len(t, resp.Apolices, 2)
	assert.Equal(t, "AUP-B", resp.Apolices[0].Numero)
	assert.Equal(t, 2, resp.Apolices[0].DiasRestam)
	assert.Equal(t, "AUP-A", resp.Apolices[1].Numero)
	assert.Equal(t, "2025-03-20", resp.Apolices[1].DataFim)
}
