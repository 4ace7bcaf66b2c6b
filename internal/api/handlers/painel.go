package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/giant-seguros/app-backoffice/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Painel são as consultas do painel inicial
type Painel interface {
	Resumo(ctx context.Context) (*models.ResumoPainel, error)
	Ocorrencias(ctx context.Context, limit int, periodo models.Periodo) (*models.OcorrenciasResponse, error)
	ApolicesAVencer(ctx context.Context) (*models.ApolicesAVencerResponse, error)
}

// PainelHandler gerencia os endpoints do painel
type PainelHandler struct {
	painel Painel
	logger *zap.Logger
}

// NewPainelHandler cria um novo handler do painel
func NewPainelHandler(painel Painel, logger *zap.Logger) *PainelHandler {
	return &PainelHandler{
		painel: painel,
		logger: logger,
	}
}

// Resumo godoc
// @Summary Contadores do painel
// @Description Total de clientes, apólices emitidas e sinistros pendentes.
// @Tags painel
// @Produce json
// @Success 200 {object} models.ResumoPainel
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/painel/resumo [get]
func (h *PainelHandler) Resumo(c *gin.Context) {
	resumo, err := h.painel.Resumo(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "Erro ao carregar o resumo", err)
		return
	}
	c.JSON(http.StatusOK, resumo)
}

// Ocorrencias godoc
// @Summary Tabela de ocorrências
// @Description Sinistros mais recentes primeiro, com cliente, data de registro e estado.
// @Tags painel
// @Produce json
// @Param limite query int false "Quantidade máxima de linhas" minimum(1) maximum(100) default(20)
// @Param de query string false "Data inicial (AAAA-MM-DD), inclusiva" format(date)
// @Param ate query string false "Data final (AAAA-MM-DD), inclusiva" format(date)
// @Success 200 {object} models.OcorrenciasResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/painel/ocorrencias [get]
func (h *PainelHandler) Ocorrencias(c *gin.Context) {
	limite := parseIntQuery(c, "limite", 20)
	if limite < 1 || limite > 100 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Parâmetro limite inválido",
			Details: "limite deve estar entre 1 e 100",
		})
		return
	}

	periodo, err := parsePeriodo(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Período inválido",
			Details: err.Error(),
		})
		return
	}

	ocorrencias, err := h.painel.Ocorrencias(c.Request.Context(), limite, periodo)
	if err != nil {
		h.upstreamError(c, "Erro ao carregar ocorrências", err)
		return
	}
	c.JSON(http.StatusOK, ocorrencias)
}

// ApolicesAVencer godoc
// @Summary Apólices a vencer
// @Description Apólices cujo fim cai dentro da janela configurada.
// @Tags painel
// @Produce json
// @Success 200 {object} models.ApolicesAVencerResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/painel/apolices-a-vencer [get]
func (h *PainelHandler) ApolicesAVencer(c *gin.Context) {
	apolices, err := h.painel.ApolicesAVencer(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "Erro ao carregar apólices a vencer", err)
		return
	}
	c.JSON(http.StatusOK, apolices)
}

func (h *PainelHandler) upstreamError(c *gin.Context, message string, err error) {
	h.logger.Error(message, zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: message, Details: err.Error()})
}

// parsePeriodo lê os filtros de e ate no formato AAAA-MM-DD
func parsePeriodo(c *gin.Context) (models.Periodo, error) {
	var periodo models.Periodo
	for _, q := range []struct {
		param  string
		target *time.Time
	}{{"de", &periodo.De}, {"ate", &periodo.Ate}} {
		raw := c.Query(q.param)
		if raw == "" {
			continue
		}
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return models.Periodo{}, fmt.Errorf("%s deve estar no formato AAAA-MM-DD", q.param)
		}
		*q.target = d
	}
	if !periodo.De.IsZero() && !periodo.Ate.IsZero() && periodo.Ate.Before(periodo.De) {
		return models.Periodo{}, errors.New("ate não pode ser anterior a de")
	}
	return periodo, nil
}

// parseIntQuery faz parse de query parameter inteiro com valor default
func parseIntQuery(c *gin.Context, param string, defaultValue int) int {
	valueStr := c.Query(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
