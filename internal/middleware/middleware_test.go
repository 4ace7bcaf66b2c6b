package middlewares

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giant-seguros/app-backoffice/internal/seguradora"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/api/v1/painel/resumo", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"token":   seguradora.TokenFromContext(c.Request.Context()),
			"usuario": GetUserName(c),
		})
	})
	r.GET("/falha", func(c *gin.Context) {
		c.AbortWithStatus(http.StatusBadGateway)
	})
	return r
}

func TestSessionGuard(t *testing.T) {
	r := newRouter(SessionGuard("@giant.token", "/signin"))

	t.Run("sem cookie em navegação HTML redireciona", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/painel/resumo", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/signin", w.Header().Get("Location"))
	})

	t.Run("sem cookie em chamada de API retorna 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/painel/resumo", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"signin":"/signin"`)
	})

	t.Run("cookie vazio conta como ausente", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/painel/resumo", nil)
		req.AddCookie(&http.Cookie{Name: "@giant.token", Value: ""})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("cookie presente repassa o token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/painel/resumo", nil)
		req.AddCookie(&http.Cookie{Name: "@giant.token", Value: "abc123"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"abc123"`)
		assert.Contains(t, w.Body.String(), `"usuario":""`)
	})

	t.Run("token JWT preenche o usuário", func(t *testing.T) {
		payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"42","name":"Ana Souza"}`))
		token := "eyJhbGciOiJIUzI1NiJ9." + payload + ".assinatura"

		req := httptest.NewRequest(http.MethodGet, "/api/v1/painel/resumo", nil)
		req.AddCookie(&http.Cookie{Name: "@giant.token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"usuario":"Ana Souza"`)
	})
}

func TestReadCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", `outro=1; @giant.token="xyz"`)
	assert.Equal(t, "xyz", readCookie(req, "@giant.token"))
	assert.Equal(t, "1", readCookie(req, "outro"))
	assert.Empty(t, readCookie(req, "ausente"))
}

func TestParseSessionClaims(t *testing.T) {
	_, err := parseSessionClaims("opaco")
	assert.ErrorIs(t, err, errNotJWT)

	_, err = parseSessionClaims("a.!!!.c")
	assert.Error(t, err)

	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"email":"ana@giant.pt"}`))
	claims, err := parseSessionClaims("h." + payload + ".s")
	require.NoError(t, err)
	assert.Equal(t, "ana@giant.pt", claims.Email)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newRouter(RequestLogger(zap.New(core)), RequestTiming())

	t.Run("gera X-Request-ID quando ausente", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/painel/resumo", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("preserva X-Request-ID recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/painel/resumo", nil)
		req.Header.Set(RequestIDHeader, "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
	})

	t.Run("erros 5xx são logados como error", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/falha", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		entries := logs.FilterMessage("request").FilterField(zap.Int("status", http.StatusBadGateway)).All()
		require.Len(t, entries, 1)
		assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	})

	assert.Equal(t, 3, logs.FilterMessage("request").Len())
}
