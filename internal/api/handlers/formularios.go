package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/giant-seguros/app-backoffice/internal/compositekey"
	"github.com/giant-seguros/app-backoffice/internal/form"
	"github.com/giant-seguros/app-backoffice/internal/models"
	"github.com/giant-seguros/app-backoffice/internal/seguros"
	"github.com/giant-seguros/app-backoffice/internal/submission"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LookupProvider carrega e invalida as listas auxiliares dos formulários
type LookupProvider interface {
	Snapshot(ctx context.Context, names []string) (form.References, map[string]string)
	Options(ctx context.Context, name, termo string) ([]compositekey.Option, error)
	Invalidate(names ...string)
}

// FormularioHandler gerencia o ciclo de vida dos formulários abertos
type FormularioHandler struct {
	catalogo *seguros.Catalogo
	lookups  LookupProvider
	sender   submission.Sender
	registry *submission.Registry
	timeout  time.Duration
	logger   *zap.Logger
}

// NewFormularioHandler cria um novo handler de formulários
func NewFormularioHandler(
	catalogo *seguros.Catalogo,
	lookups LookupProvider,
	sender submission.Sender,
	registry *submission.Registry,
	timeout time.Duration,
	logger *zap.Logger,
) *FormularioHandler {
	return &FormularioHandler{
		catalogo: catalogo,
		lookups:  lookups,
		sender:   sender,
		registry: registry,
		timeout:  timeout,
		logger:   logger,
	}
}

// Montar godoc
// @Summary Abre um formulário
// @Description Carrega as listas auxiliares do formulário e devolve uma instância com os valores iniciais.
// @Description Listas que falharem aparecem em `falhas` e os campos que dependem delas ficam inválidos.
// @Tags formularios
// @Produce json
// @Param tipo path string true "Tipo de formulário" Enums(apolice, cliente, sinistro)
// @Success 201 {object} models.FormularioResponse
// @Failure 404 {object} models.ErrorResponse "Tipo desconhecido"
// @Router /api/v1/formularios/{tipo} [post]
func (h *FormularioHandler) Montar(c *gin.Context) {
	def, ok := h.definition(c)
	if !ok {
		return
	}

	refs, falhas := h.lookups.Snapshot(c.Request.Context(), def.References())
	controller := submission.NewController(def, refs, h.sender,
		submission.WithLogger(h.logger),
		submission.WithTimeout(h.timeout),
	)
	inst := h.registry.Open(def.Tipo, controller, falhas)

	h.logger.Info("formulário aberto",
		zap.String("tipo", def.Tipo),
		zap.String("id", inst.ID),
		zap.Int("falhas", len(falhas)))

	c.JSON(http.StatusCreated, formularioResponse(inst, refs))
}

// Obter godoc
// @Summary Estado de um formulário aberto
// @Tags formularios
// @Produce json
// @Param tipo path string true "Tipo de formulário"
// @Param id path string true "ID da instância"
// @Success 200 {object} models.FormularioResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/formularios/{tipo}/{id} [get]
func (h *FormularioHandler) Obter(c *gin.Context) {
	inst, ok := h.instance(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, formularioResponse(inst, nil))
}

// Editar godoc
// @Summary Edita campos de um formulário aberto
// @Description Aplica os valores, marca os campos como tocados e devolve a validação recalculada.
// @Tags formularios
// @Accept json
// @Produce json
// @Param tipo path string true "Tipo de formulário"
// @Param id path string true "ID da instância"
// @Param edicao body models.EdicaoRequest true "Valores editados"
// @Success 200 {object} models.ValidacaoResponse
// @Failure 400 {object} models.ErrorResponse "Corpo inválido ou campo desconhecido"
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Envio em andamento"
// @Router /api/v1/formularios/{tipo}/{id} [patch]
func (h *FormularioHandler) Editar(c *gin.Context) {
	inst, ok := h.instance(c)
	if !ok {
		return
	}

	var req models.EdicaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Corpo inválido", Details: err.Error()})
		return
	}

	if _, err := inst.Controller.Edit(req.Valores); err != nil {
		if errors.Is(err, submission.ErrSubmissionInFlight) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Envio em andamento", Details: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Campo desconhecido", Details: err.Error()})
		return
	}

	snap := inst.Controller.Snapshot()
	c.JSON(http.StatusOK, validacaoResponse(snap.Validation, snap.Touched))
}

// Submeter godoc
// @Summary Envia um formulário à API da seguradora
// @Description Valida todos os campos e, se válido, faz um único envio. Em caso de sucesso o formulário volta aos valores iniciais.
// @Tags formularios
// @Produce json
// @Param tipo path string true "Tipo de formulário"
// @Param id path string true "ID da instância"
// @Success 200 {object} submission.Outcome "Enviado com sucesso"
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Envio em andamento"
// @Failure 422 {object} submission.Outcome "Campos inválidos"
// @Failure 500 {object} models.ErrorResponse "Erro ao montar o payload"
// @Failure 502 {object} submission.Outcome "Falha de transporte ou rejeição da API"
// @Router /api/v1/formularios/{tipo}/{id}/submit [post]
func (h *FormularioHandler) Submeter(c *gin.Context) {
	inst, ok := h.instance(c)
	if !ok {
		return
	}

	outcome, err := inst.Controller.Submit(c.Request.Context())
	switch {
	case errors.Is(err, submission.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Envio em andamento", Details: err.Error()})
		return
	case err != nil:
		h.logger.Error("erro ao montar payload", zap.String("id", inst.ID), zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Erro ao montar o payload", Details: err.Error()})
		return
	}

	switch outcome.Status {
	case submission.StatusSuccess:
		h.lookups.Invalidate(inst.Controller.Definition().Invalidates...)
		c.JSON(http.StatusOK, outcome)
	case submission.StatusFailed:
		c.JSON(http.StatusBadGateway, outcome)
	default:
		c.JSON(http.StatusUnprocessableEntity, outcome)
	}
}

// Fechar godoc
// @Summary Fecha um formulário aberto
// @Tags formularios
// @Param tipo path string true "Tipo de formulário"
// @Param id path string true "ID da instância"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/formularios/{tipo}/{id} [delete]
func (h *FormularioHandler) Fechar(c *gin.Context) {
	if _, ok := h.instance(c); !ok {
		return
	}
	h.registry.Close(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Validar godoc
// @Summary Valida um estado completo sem abrir um formulário
// @Description Todos os campos são considerados tocados.
// @Tags formularios
// @Accept json
// @Produce json
// @Param tipo path string true "Tipo de formulário"
// @Param edicao body models.EdicaoRequest true "Valores do formulário"
// @Success 200 {object} models.ValidacaoResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ValidacaoResponse
// @Router /api/v1/formularios/{tipo}/validar [post]
func (h *FormularioHandler) Validar(c *gin.Context) {
	def, ok := h.definition(c)
	if !ok {
		return
	}

	var req models.EdicaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Corpo inválido", Details: err.Error()})
		return
	}
	for name := range req.Valores {
		if !def.Schema.Has(name) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Campo desconhecido", Details: name})
			return
		}
	}

	refs, _ := h.lookups.Snapshot(c.Request.Context(), def.References())
	state := form.NewState(def.InitialValues())
	state.Apply(req.Valores)
	for _, f := range def.Schema.Fields() {
		state.Touch(f.Name)
	}

	result := form.NewValidator(form.WithReferences(refs)).Validate(def.Schema, state)
	status := http.StatusOK
	if !result.IsValid {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, validacaoResponse(result, state.TouchedFields()))
}

func (h *FormularioHandler) definition(c *gin.Context) (submission.Definition, bool) {
	def, err := h.catalogo.Get(c.Param("tipo"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "Tipo de formulário desconhecido",
			Details: "Valores válidos: " + strings.Join(h.catalogo.Tipos(), ", "),
		})
		return submission.Definition{}, false
	}
	return def, true
}

func (h *FormularioHandler) instance(c *gin.Context) (*submission.Instance, bool) {
	inst, ok := h.registry.Get(c.Param("id"))
	if !ok || inst.Tipo != c.Param("tipo") {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Formulário não encontrado"})
		return nil, false
	}
	return inst, true
}

func formularioResponse(inst *submission.Instance, refs form.References) models.FormularioResponse {
	def := inst.Controller.Definition()
	snap := inst.Controller.Snapshot()

	fields := def.Schema.Fields()
	campos := make([]models.CampoResponse, 0, len(fields))
	for _, f := range fields {
		campos = append(campos, models.CampoResponse{
			Nome:        f.Name,
			Rotulo:      f.Label,
			Tipo:        f.Kind,
			Obrigatorio: f.Required,
			Referencia:  f.Reference,
			Composto:    f.Composite,
			Restricoes:  f.Constraints,
		})
	}

	var opcoes map[string][]compositekey.Option
	if refs != nil {
		opcoes = make(map[string][]compositekey.Option, len(refs))
		for name, candidates := range refs {
			opcoes[name] = compositekey.Options(candidates)
		}
	}

	return models.FormularioResponse{
		ID:      inst.ID,
		Tipo:    def.Tipo,
		Titulo:  def.Titulo,
		Estado:  string(snap.Status),
		Campos:  campos,
		Valores: snap.Values,
		Erros:   visible(snap.Validation, snap.Touched),
		Valido:  snap.Validation.IsValid,
		Opcoes:  opcoes,
		Falhas:  inst.Falhas,
	}
}

func validacaoResponse(result form.ValidationResult, touched []string) models.ValidacaoResponse {
	return models.ValidacaoResponse{
		Erros:         result.Errors,
		ErrosVisiveis: visible(result, touched),
		Valido:        result.IsValid,
	}
}

func visible(result form.ValidationResult, touched []string) map[string]string {
	out := make(map[string]string)
	for _, name := range touched {
		if msg := result.Error(name); msg != "" {
			out[name] = msg
		}
	}
	return out
}
