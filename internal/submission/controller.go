package submission

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/giant-seguros/app-backoffice/internal/form"
	"github.com/giant-seguros/app-backoffice/internal/models"
	"github.com/giant-seguros/app-backoffice/internal/payload"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// StatusSucesso é o status de aplicação que indica criação bem-sucedida
const StatusSucesso = "200"

var (
	ErrSubmissionInFlight = errors.New("já existe um envio em andamento para este formulário")
	ErrTransform          = errors.New("erro ao montar o payload")
)

// Status é o estado do controlador
type Status string

const (
	StatusIdle       Status = "idle"
	StatusValidating Status = "validating"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
)

// Sender envia o payload à API remota
type Sender interface {
	Create(ctx context.Context, path string, payload any) (*models.RespostaCriacao, error)
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification é o aviso mostrado ao operador depois do envio
type Notification struct {
	Kind    NotificationKind `json:"tipo"`
	Message string           `json:"mensagem"`
}

// Outcome é o resultado de um Submit
type Outcome struct {
	Status       Status                `json:"estado"`
	Validation   form.ValidationResult `json:"validacao"`
	Notification *Notification         `json:"notificacao,omitempty"`
	Redirect     string                `json:"redirecionar,omitempty"`
}

// Controller é dono exclusivo do estado de uma instância de formulário. O
// lock nunca é mantido durante a chamada remota.
type Controller struct {
	mu        sync.Mutex
	def       Definition
	state     *form.FormState
	refs      form.References
	status    Status
	sender    Sender
	validator *form.Validator
	timeout   time.Duration
	logger    *zap.Logger
}

type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	logger  *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

func WithLogger(logger *zap.Logger) ControllerOption {
	return func(o *controllerOptions) { o.logger = logger }
}

// WithTimeout limita a duração do envio, independente da requisição de origem
func WithTimeout(d time.Duration) ControllerOption {
	return func(o *controllerOptions) { o.timeout = d }
}

func WithClock(now func() time.Time) ControllerOption {
	return func(o *controllerOptions) { o.now = now }
}

// NewController abre uma instância com os valores iniciais da definição e o
// instantâneo das listas auxiliares
func NewController(def Definition, refs form.References, sender Sender, opts ...ControllerOption) *Controller {
	o := controllerOptions{
		logger:  zap.NewNop(),
		timeout: 15 * time.Second,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Controller{
		def:       def,
		state:     form.NewState(def.InitialValues()),
		refs:      refs,
		status:    StatusIdle,
		sender:    sender,
		validator: form.NewValidator(form.WithClock(o.now), form.WithReferences(refs)),
		timeout:   o.timeout,
		logger:    o.logger.With(zap.String("formulario", def.Tipo)),
	}
}

func (c *Controller) Definition() Definition {
	return c.def
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Snapshot é uma cópia consistente do estado atual
type Snapshot struct {
	Values     map[string]any
	Touched    []string
	Validation form.ValidationResult
	Status     Status
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Values:     c.state.Values(),
		Touched:    c.state.TouchedFields(),
		Validation: c.validator.Validate(c.def.Schema, c.state),
		Status:     c.status,
	}
}

// Edit aplica edições de campos e devolve a validação recalculada. Campos
// fora do schema são rejeitados sem alterar nada. Durante um envio a edição
// devolve ErrSubmissionInFlight, já que o sucesso reinicia o estado.
func (c *Controller) Edit(values map[string]any) (form.ValidationResult, error) {
	for name := range values {
		if !c.def.Schema.Has(name) {
			return form.ValidationResult{}, fmt.Errorf("%w: %s", form.ErrUnknownField, name)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == StatusSubmitting {
		return form.ValidationResult{}, ErrSubmissionInFlight
	}
	c.state.Apply(values)
	return c.validator.Validate(c.def.Schema, c.state), nil
}

// Reset descarta as edições e volta aos valores iniciais
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Reset(c.def.InitialValues())
}

// Submit valida o estado e, se válido, faz exatamente um envio. Um Submit
// concorrente com outro em andamento devolve ErrSubmissionInFlight sem
// nenhum efeito.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return Outcome{Status: StatusSubmitting}, ErrSubmissionInFlight
	}

	c.status = StatusValidating
	for _, f := range c.def.Schema.Fields() {
		c.state.Touch(f.Name)
	}
	result := c.validator.Validate(c.def.Schema, c.state)
	if !result.IsValid {
		c.status = StatusIdle
		c.mu.Unlock()
		return Outcome{Status: StatusIdle, Validation: result}, nil
	}

	body, err := payload.Transform(c.def.Mapping, c.state, c.refs)
	if err != nil {
		c.status = StatusIdle
		c.mu.Unlock()
		return Outcome{Status: StatusIdle, Validation: result}, fmt.Errorf("%w: %v", ErrTransform, err)
	}

	c.status = StatusSubmitting
	c.mu.Unlock()

	outcome := c.send(ctx, body)
	outcome.Validation = result

	c.mu.Lock()
	defer c.mu.Unlock()
	if outcome.Status == StatusSuccess {
		c.state.Reset(c.def.InitialValues())
	}
	c.status = StatusIdle

	return outcome, nil
}

func (c *Controller) send(ctx context.Context, body map[string]any) Outcome {
	// o envio não é cancelado se o navegador desistir da requisição
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	sendCtx, span := otel.Tracer("github.com/giant-seguros/app-backoffice/internal/submission").
		Start(sendCtx, "submission.Submit")
	defer span.End()
	span.SetAttributes(
		attribute.String("formulario.tipo", c.def.Tipo),
		attribute.String("formulario.endpoint", c.def.Endpoint),
	)

	resp, err := c.sender.Create(sendCtx, c.def.Endpoint, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error("falha ao enviar formulário", zap.String("endpoint", c.def.Endpoint), zap.Error(err))
		return Outcome{
			Status:       StatusFailed,
			Notification: &Notification{Kind: NotificationError, Message: c.def.FailureMessage},
		}
	}

	if c.def.RequireStatus {
		status := resp.Status.String()
		if !resp.Status.Is(StatusSucesso) {
			message := status
			if message == "" {
				message = c.def.FailureMessage
			}
			span.SetStatus(codes.Error, message)
			c.logger.Warn("API rejeitou o formulário", zap.String("status", status))
			return Outcome{
				Status:       StatusFailed,
				Notification: &Notification{Kind: NotificationError, Message: message},
			}
		}
	}

	c.logger.Info("formulário enviado com sucesso")
	return Outcome{
		Status:       StatusSuccess,
		Notification: &Notification{Kind: NotificationSuccess, Message: c.def.SuccessMessage},
		Redirect:     c.def.Redirect,
	}
}
