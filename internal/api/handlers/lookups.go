package handlers

import (
	"errors"
	"net/http"

	"github.com/giant-seguros/app-backoffice/internal/models"
	"github.com/giant-seguros/app-backoffice/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LookupHandler expõe as listas auxiliares para os seletores
type LookupHandler struct {
	lookups LookupProvider
	logger  *zap.Logger
}

// NewLookupHandler cria um novo handler de listas auxiliares
func NewLookupHandler(lookups LookupProvider, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{
		lookups: lookups,
		logger:  logger,
	}
}

// Opcoes godoc
// @Summary Opções de uma lista auxiliar
// @Description Devolve as opções do seletor. Em listas compostas o valor é a chave "id-rótulos" e o id segue à parte.
// @Description O filtro `q` ignora acentos e maiúsculas.
// @Tags lookups
// @Produce json
// @Param nome path string true "Nome da lista" Enums(clientes, veiculos, tipos_apolice, tipologias, cidades, estados_civis, profissoes, tipos_documento, apolices)
// @Param q query string false "Filtro pelo rótulo"
// @Success 200 {object} models.OpcoesResponse
// @Failure 404 {object} models.ErrorResponse "Lista desconhecida"
// @Failure 502 {object} models.ErrorResponse "Falha ao consultar a API da seguradora"
// @Router /api/v1/lookups/{nome} [get]
func (h *LookupHandler) Opcoes(c *gin.Context) {
	nome := c.Param("nome")

	opcoes, err := h.lookups.Options(c.Request.Context(), nome, c.Query("q"))
	if err != nil {
		if errors.Is(err, services.ErrLookupDesconhecido) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Lista desconhecida", Details: nome})
			return
		}
		h.logger.Error("erro ao carregar lista auxiliar", zap.String("lista", nome), zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "Erro ao carregar lista auxiliar", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.OpcoesResponse{
		Lista:  nome,
		Opcoes: opcoes,
		Total:  len(opcoes),
	})
}
