package submission

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/giant-seguros/app-backoffice/internal/form"
	"github.com/giant-seguros/app-backoffice/internal/models"
	"github.com/giant-seguros/app-backoffice/internal/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls    atomic.Int32
	status   string
	response string
	err      error
	block    chan struct{}
	started  chan struct{}

	mu       sync.Mutex
	path     string
	payloads []any
	ctxErr   error
}

func (f *fakeSender) Create(ctx context.Context, path string, body any) (*models.RespostaCriacao, error) {
	f.calls.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.path = path
	f.payloads = append(f.payloads, body)
	f.ctxErr = ctx.Err()
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.response != "" {
		resp := &models.RespostaCriacao{}
		if err := json.Unmarshal([]byte(f.response), resp); err != nil {
			return nil, err
		}
		return resp, nil
	}
	return &models.RespostaCriacao{Status: models.NewStatusAPI(f.status)}, nil
}

func testDefinition() Definition {
	schema := form.MustSchema("apolice",
		form.FieldSchema{Name: "cliente", Kind: form.KindReference, Reference: "clientes", Required: true},
		form.FieldSchema{Name: "numero", Kind: form.KindText},
		form.FieldSchema{Name: "valor", Kind: form.KindNumber, Required: true, RequiredMessage: "O valor é obrigatório"},
	)
	mapping := payload.NewMapping("apolices").
		MapWith("cliente", "cliente", payload.Int()).
		MapWith("numero", "numero", payload.Text()).
		MapWith("valor", "valor", payload.FixedDecimal(2)).
		Build()

	return Definition{
		Tipo:           "apolice",
		Schema:         schema,
		Mapping:        mapping,
		Endpoint:       "apolices",
		RequireStatus:  true,
		SuccessMessage: "Apólice criada com sucesso",
		FailureMessage: "Não foi possível Registar a apólice",
		Redirect:       "/apolices",
		Initial: func() map[string]any {
			return map[string]any{"numero": "AUP-TESTE1"}
		},
	}
}

var testRefs = form.References{
	"clientes": {{ID: 4, Labels: []string{"Ana Costa"}}},
}

func TestSubmit_Invalid(t *testing.T) {
	sender := &fakeSender{status: "200"}
	c := NewController(testDefinition(), testRefs, sender)

	outcome, err := c.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StatusIdle, outcome.Status)
	assert.False(t, outcome.Validation.IsValid)
	assert.Equal(t, "O valor é obrigatório", outcome.Validation.Error("valor"))
	assert.Equal(t, form.MsgRequired, outcome.Validation.Error("cliente"))
	assert.Nil(t, outcome.Notification)
	assert.Equal(t, int32(0), sender.calls.Load())
	assert.Equal(t, StatusIdle, c.Status())
}

func TestSubmit_Success(t *testing.T) {
	sender := &fakeSender{status: "200"}
	c := NewController(testDefinition(), testRefs, sender)
	_, err := c.Edit(map[string]any{"cliente": "4", "valor": "150.5"})
	require.NoError(t, err)

	outcome, err := c.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, outcome.Status)
	require.NotNil(t, outcome.Notification)
	assert.Equal(t, NotificationSuccess, outcome.Notification.Kind)
	assert.Equal(t, "Apólice criada com sucesso", outcome.Notification.Message)
	assert.Equal(t, "/apolices", outcome.Redirect)

	assert.Equal(t, "apolices", sender.path)
	assert.Equal(t, []any{map[string]any{
		"apolices": map[string]any{
			"cliente": int64(4),
			"numero":  "AUP-TESTE1",
			"valor":   "150.50",
		},
	}}, sender.payloads)

	snap := c.Snapshot()
	assert.Equal(t, map[string]any{"numero": "AUP-TESTE1"}, snap.Values)
	assert.Empty(t, snap.Touched)
	assert.Equal(t, StatusIdle, snap.Status)
}

func TestSubmit_ApplicationRejection(t *testing.T) {
	sender := &fakeSender{status: "Erro interno"}
	c := NewController(testDefinition(), testRefs, sender)
	_, err := c.Edit(map[string]any{"cliente": "4", "valor": "10"})
	require.NoError(t, err)

	outcome, err := c.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StatusFailed, outcome.Status)
	require.NotNil(t, outcome.Notification)
	assert.Equal(t, NotificationError, outcome.Notification.Kind)
	assert.Equal(t, "Erro interno", outcome.Notification.Message)
	assert.Empty(t, outcome.Redirect)

	snap := c.Snapshot()
	assert.Equal(t, "10", snap.Values["valor"])
	assert.Equal(t, StatusIdle, snap.Status)
}

func TestSubmit_StatusNumericoNaoESucesso(t *testing.T) {
	sender := &fakeSender{response: `{"status": 200}`}
	c := NewController(testDefinition(), testRefs, sender)
	_, err := c.Edit(map[string]any{"cliente": "4", "valor": "10"})
	require.NoError(t, err)

	outcome, err := c.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StatusFailed, outcome.Status)
	require.NotNil(t, outcome.Notification)
	assert.Equal(t, "200", outcome.Notification.Message)
	assert.Equal(t, "10", c.Snapshot().Values["valor"])
}

func TestSubmit_TransportError(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	c := NewController(testDefinition(), testRefs, sender)
	_, err := c.Edit(map[string]any{"cliente": "4", "valor": "10"})
	require.NoError(t, err)

	outcome, err := c.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StatusFailed, outcome.Status)
	assert.Equal(t, "Não foi possível Registar a apólice", outcome.Notification.Message)
	assert.Equal(t, "4", c.Snapshot().Values["cliente"])
}

func TestSubmit_WithoutStatusCheck(t *testing.T) {
	def := testDefinition()
	def.RequireStatus = false
	sender := &fakeSender{}
	c := NewController(def, testRefs, sender)
	_, err := c.Edit(map[string]any{"cliente": "4", "valor": "10"})
	require.NoError(t, err)

	outcome, err := c.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, outcome.Status)
}

func TestSubmit_NoSecondRequestInFlight(t *testing.T) {
	sender := &fakeSender{status: "200", block: make(chan struct{}), started: make(chan struct{}, 1)}
	c := NewController(testDefinition(), testRefs, sender)
	_, err := c.Edit(map[string]any{"cliente": "4", "valor": "10"})
	require.NoError(t, err)

	done := make(chan Outcome)
	go func() {
		outcome, _ := c.Submit(context.Background())
		done <- outcome
	}()

	<-sender.started
	assert.Equal(t, StatusSubmitting, c.Status())

	outcome, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Equal(t, StatusSubmitting, outcome.Status)

	close(sender.block)
	first := <-done

	assert.Equal(t, StatusSuccess, first.Status)
	assert.Equal(t, int32(1), sender.calls.Load())
}

func TestEdit_RejeitadoDuranteEnvio(t *testing.T) {
	sender := &fakeSender{status: "200", block: make(chan struct{}), started: make(chan struct{}, 1)}
	c := NewController(testDefinition(), testRefs, sender)
	_, err := c.Edit(map[string]any{"cliente": "4", "valor": "10"})
	require.NoError(t, err)

	done := make(chan Outcome)
	go func() {
		outcome, _ := c.Submit(context.Background())
		done <- outcome
	}()

	<-sender.started
	_, err = c.Edit(map[string]any{"valor": "99"})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Equal(t, "10", c.Snapshot().Values["valor"])

	close(sender.block)
	assert.Equal(t, StatusSuccess, (<-done).Status)

	_, err = c.Edit(map[string]any{"valor": "99"})
	require.NoError(t, err)
	assert.Equal(t, "99", c.Snapshot().Values["valor"])
}

func TestSubmit_DetachedFromCallerContext(t *testing.T) {
	sender := &fakeSender{status: "200"}
	c := NewController(testDefinition(), testRefs, sender, WithTimeout(time.Second))
	_, err := c.Edit(map[string]any{"cliente": "4", "valor": "10"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := c.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.NoError(t, sender.ctxErr)
}

func TestSubmit_TransformError(t *testing.T) {
	def := testDefinition()
	def.Mapping = payload.NewMapping("apolices").
		MapWith("numero", "numero", payload.Int()).
		Build()
	sender := &fakeSender{status: "200"}
	c := NewController(def, testRefs, sender)
	_, err := c.Edit(map[string]any{"cliente": "4", "valor": "10"})
	require.NoError(t, err)

	_, err = c.Submit(context.Background())

	assert.ErrorIs(t, err, ErrTransform)
	assert.Equal(t, int32(0), sender.calls.Load())
	assert.Equal(t, StatusIdle, c.Status())
}

func TestEdit(t *testing.T) {
	c := NewController(testDefinition(), testRefs, &fakeSender{})

	result, err := c.Edit(map[string]any{"cliente": "9"})
	require.NoError(t, err)
	assert.Equal(t, form.MsgInvalidOption, result.Error("cliente"))
	assert.Equal(t, []string{"cliente"}, c.Snapshot().Touched)

	_, err = c.Edit(map[string]any{"inexistente": "x"})
	assert.ErrorIs(t, err, form.ErrUnknownField)

	c.Reset()
	assert.Empty(t, c.Snapshot().Touched)
}
