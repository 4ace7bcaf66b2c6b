package seguradora

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/giant-seguros/app-backoffice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts Options) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts.BaseURL = srv.URL
	if opts.RetryInitialInterval == 0 {
		opts.RetryInitialInterval = time.Millisecond
	}
	return NewClient(opts)
}

func TestList_UnwrapsEnvelope(t *testing.T) {
	var auth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/city", r.URL.Path)
		auth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"": [{"ID": 3, "NOME": "LUANDA"}, {"ID": 8, "NOME": "Uíge"}]}`)
	}, Options{})

	ctx := WithToken(context.Background(), "tok-123")
	cidades, err := client.Cidades(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", auth)
	require.Len(t, cidades, 2)
	assert.Equal(t, int64(8), cidades[1].ID)
	assert.Equal(t, "Uíge", cidades[1].Nome)
}

func TestList_RetriesTemporaryFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"": [{"ID": 1, "NOME": "Solteiro(a)"}]}`)
	}, Options{MaxRetries: 3})

	estados, err := client.EstadosCivis(context.Background())

	require.NoError(t, err)
	assert.Len(t, estados, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestList_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "não encontrado", http.StatusNotFound)
	}, Options{MaxRetries: 3})

	_, err := client.Veiculos(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "não encontrado", apiErr.Message())
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreate_NeverRetries(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, Options{MaxRetries: 5})

	_, err := client.Create(context.Background(), "apolices", map[string]any{"apolices": map[string]any{}})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreate_Status(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
		sucesso  bool
	}{
		{"status texto", `{"status": "200"}`, "200", true},
		{"status numérico não é sucesso", `{"status": 200}`, "200", false},
		{"rejeição", `{"status": "Erro interno"}`, "Erro interno", false},
		{"status nulo", `{"status": null}`, "", false},
		{"corpo vazio", ``, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received map[string]any
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/sinistros", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				_, _ = io.WriteString(w, tt.body)
			}, Options{})

			resp, err := client.Create(context.Background(), "sinistros", map[string]any{"sinistros": map[string]any{"tomador": 4}})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.Status.String())
			assert.Equal(t, tt.sucesso, resp.Status.Is("200"))
			assert.Equal(t, map[string]any{"sinistros": map[string]any{"tomador": float64(4)}}, received)
		})
	}
}

func TestCreate_RootPath(t *testing.T) {
	var path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusCreated)
	}, Options{})

	_, err := client.Create(context.Background(), "", map[string]any{"clients": map[string]any{}})

	require.NoError(t, err)
	assert.Contains(t, []string{"", "/"}, path)
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, Options{MaxRetries: 1, BreakerFailures: 2, BreakerOpenTimeout: time.Minute})

	for i := 0; i < 2; i++ {
		_, err := client.Create(context.Background(), "apolices", map[string]any{})
		require.Error(t, err)
	}

	_, err := client.Create(context.Background(), "apolices", map[string]any{})

	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "open", client.BreakerState())
}

func TestBreaker_IgnoresClientErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}, Options{BreakerFailures: 1})

	for i := 0; i < 3; i++ {
		_, err := client.Create(context.Background(), "apolices", map[string]any{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
	}
	assert.Equal(t, "closed", client.BreakerState())
}

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{"envelope", `{"": [{"ID": 1}]}`, 1, false},
		{"lista direta", `[{"ID": 1}, {"ID": 2}]`, 2, false},
		{"envelope nulo", `{"": null}`, 0, false},
		{"sem chave vazia", `{"data": []}`, 0, true},
		{"vazio", ``, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out []models.Cidade
			err := decodeList([]byte(tt.body), &out)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnexpectedBody)
				return
			}
			require.NoError(t, err)
			assert.Len(t, out, tt.want)
		})
	}
}

func TestPing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, Options{})

	assert.NoError(t, client.Ping(context.Background()))
}
