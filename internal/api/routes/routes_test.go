package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/giant-seguros/app-backoffice/internal/compositekey"
	"github.com/giant-seguros/app-backoffice/internal/config"
	"github.com/giant-seguros/app-backoffice/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeSeguradora imita a API remota: listas no envelope {"": [...]} e
// criações respondendo {"status": "200"}
type fakeSeguradora struct {
	mu      sync.Mutex
	auth    []string
	posts   map[string][]map[string]any
	listing map[string]int
}

func (f *fakeSeguradora) handler() http.Handler {
	lists := map[string]string{
		"/clients":        `{"":[{"ID":3,"NOME":"Ana"}]}`,
		"/vehicles":       `{"":[{"ID":11,"MARCA":"Toyota","MODELO":"Corolla","MATRICULA":"LD-12-34"}]}`,
		"/city":           `{"":[{"ID":2,"NOME":"Luanda"}]}`,
		"/apolices":       `{"":[{"ID":7,"NUMERO":"AUP-1","CLIENTE":"Ana"}]}`,
		"/cstatus":        `{"":[{"ID":1,"NOME":"Solteiro"}]}`,
		"/apolicetipos":   `{"":[]}`,
		"/apolicevalores": `{"":[]}`,
		"/sinistros":      `{"":[]}`,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.auth = append(f.auth, r.Header.Get("Authorization"))

		if r.Method == http.MethodPost {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.posts[r.URL.Path] = append(f.posts[r.URL.Path], body)
			_, _ = io.WriteString(w, `{"status":"200"}`)
			return
		}

		body, ok := lists[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		f.listing[r.URL.Path]++
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	})
}

func setup(t *testing.T) (*gin.Engine, *fakeSeguradora) {
	t.Helper()
	fake := &fakeSeguradora{posts: map[string][]map[string]any{}, listing: map[string]int{}}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		SeguradoraAPIURL:       srv.URL,
		SeguradoraTimeout:      2 * time.Second,
		SeguradoraMaxRetries:   1,
		BreakerFailures:        5,
		BreakerOpenTimeout:     time.Second,
		SessionCookieName:      "@giant.token",
		SignInPath:             "/signin",
		CorsAllowedOrigins:     []string{"https://backoffice.giant.ao"},
		LookupCacheTTL:         time.Minute,
		LookupCacheMaxSize:     16,
		FormSessionTTL:         time.Minute,
		FormSessionMax:         10,
		PolicyNumberPrefix:     "AUP-",
		ExpiringPoliciesWindow: 30,
	}
	return SetupRouter(cfg, zap.NewNop()), fake
}

func request(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", "@giant.token=sessao-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRouter_Sinistro(t *testing.T) {
	r, fake := setup(t)

	w := request(t, r, http.MethodPost, "/api/v1/formularios/sinistro", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var aberto models.FormularioResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &aberto))
	assert.Empty(t, aberto.Falhas)

	apolice := compositekey.Candidate{ID: 7, Labels: []string{"AUP-1", "Ana"}}
	veiculo := compositekey.Candidate{ID: 11, Labels: []string{"Toyota", "Corolla", "LD-12-34"}}
	cidade := compositekey.Candidate{ID: 2, Labels: []string{"Luanda"}}

	w = request(t, r, http.MethodPatch, "/api/v1/formularios/sinistro/"+aberto.ID, models.EdicaoRequest{
		Valores: map[string]any{
			"apolice":                  apolice.Token(),
			"tomador":                  "3",
			"tomador_veiculo":          veiculo.Token(),
			"data":                     "2026-10-01",
			"descricao":                "Colisão",
			"danos_materiais_objectos": "on",
			"cidade":                   cidade.Token(),
			"morada":                   "Maianga",
			"rua":                      "Rua 1",
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = request(t, r, http.MethodPost, "/api/v1/formularios/sinistro/"+aberto.ID+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.posts["/sinistros"], 1)
	body := fake.posts["/sinistros"][0]["sinistros"].(map[string]any)
	assert.Equal(t, float64(7), body["apolice"])
	assert.Equal(t, float64(11), body["tomador_veiculo"])
	assert.Equal(t, float64(2), body["cidade"])
	assert.Equal(t, float64(1), body["danos_materiais_objectos"])
	assert.Equal(t, float64(2), body["danos_materiais_veiculos"])
	assert.Equal(t, float64(0), body["ferimentos"])

	for _, auth := range fake.auth {
		assert.Equal(t, "Bearer sessao-1", auth)
	}
}

func TestSetupRouter_LookupCache(t *testing.T) {
	r, fake := setup(t)

	for i := 0; i < 3; i++ {
		w := request(t, r, http.MethodGet, "/api/v1/lookups/cidades?q=luan", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, 1, fake.listing["/city"])
}

func TestSetupRouter_SessionGuard(t *testing.T) {
	r, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/painel/resumo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/liveness", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCorsPreflight(t *testing.T) {
	r, _ := setup(t)

	tests := []struct {
		name        string
		origin      string
		status      int
		allowOrigin string
	}{
		{"origem configurada", "https://backoffice.giant.ao", http.StatusNoContent, "https://backoffice.giant.ao"},
		{"origem desconhecida", "https://evil.example", http.StatusForbidden, ""},
		{"sem origem", "", http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/formularios/cliente", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.allowOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.allowOrigin != "" {
				assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}

func TestCors_OrigemDesconhecidaSemCredenciais(t *testing.T) {
	r, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/painel/resumo", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Cookie", "@giant.token=sessao-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}
