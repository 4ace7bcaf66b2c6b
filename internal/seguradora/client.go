// Package seguradora é o cliente HTTP da API remota da seguradora. Listagens
// (GET) são repetidas com backoff exponencial; criações (POST) nunca são
// repetidas. Todas as chamadas passam por um circuit breaker.
package seguradora

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/giant-seguros/app-backoffice/internal/config"
	"github.com/giant-seguros/app-backoffice/internal/models"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const maxErrorBody = 4 << 10

// Options configura o cliente
type Options struct {
	BaseURL              string
	Timeout              time.Duration
	MaxRetries           int
	RetryInitialInterval time.Duration
	BreakerFailures      int
	BreakerOpenTimeout   time.Duration
	HTTPClient           *http.Client
	Logger               *zap.Logger
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryStart time.Duration
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
	tracer     trace.Tracer
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 1
	}
	if opts.RetryInitialInterval <= 0 {
		opts.RetryInitialInterval = 200 * time.Millisecond
	}
	if opts.BreakerFailures <= 0 {
		opts.BreakerFailures = 5
	}
	if opts.BreakerOpenTimeout <= 0 {
		opts.BreakerOpenTimeout = 30 * time.Second
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: opts.HTTPClient,
		maxRetries: opts.MaxRetries,
		retryStart: opts.RetryInitialInterval,
		logger:     opts.Logger.Named("seguradora"),
		tracer:     otel.Tracer("github.com/giant-seguros/app-backoffice/internal/seguradora"),
	}

	failures := uint32(opts.BreakerFailures)
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "seguradora",
		MaxRequests: 1,
		Timeout:     opts.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker mudou de estado",
				zap.String("breaker", name),
				zap.String("de", from.String()),
				zap.String("para", to.String()))
		},
	})

	return c
}

// NewFromConfig cria o cliente a partir da configuração da aplicação
func NewFromConfig(cfg *config.Config, logger *zap.Logger) *Client {
	return NewClient(Options{
		BaseURL:            cfg.SeguradoraAPIURL,
		Timeout:            cfg.SeguradoraTimeout,
		MaxRetries:         cfg.SeguradoraMaxRetries,
		BreakerFailures:    cfg.BreakerFailures,
		BreakerOpenTimeout: cfg.BreakerOpenTimeout,
		Logger:             logger,
	})
}

// isSuccessful decide o que conta como falha para o breaker: rejeições 4xx e
// cancelamentos do chamador não indicam API degradada
func isSuccessful(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return !apiErr.Temporary()
	}
	return false
}

// BreakerState expõe o estado do circuit breaker (closed, half-open, open)
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// List faz GET em path e decodifica a lista envelopada em {"": [...]} em out
func (c *Client) List(ctx context.Context, path string, out any) error {
	ctx, span := c.tracer.Start(ctx, "seguradora.List", trace.WithAttributes(attribute.String("seguradora.path", path)))
	defer span.End()

	attempt := 0
	operation := func() ([]byte, error) {
		attempt++
		body, err := c.do(ctx, http.MethodGet, path, nil)
		if err == nil {
			return body, nil
		}
		if !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		c.logger.Warn("falha ao consultar API da seguradora, tentando novamente",
			zap.String("path", path),
			zap.Int("tentativa", attempt),
			zap.Error(err))
		return nil, err
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.retryStart

	body, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(uint(c.maxRetries)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := decodeList(body, out); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return nil
}

// Create faz um único POST em path. Uma resposta 2xx devolve o status de
// aplicação do corpo; não há nova tentativa.
func (c *Client) Create(ctx context.Context, path string, payload any) (*models.RespostaCriacao, error) {
	ctx, span := c.tracer.Start(ctx, "seguradora.Create", trace.WithAttributes(attribute.String("seguradora.path", path)))
	defer span.End()

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar payload: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, path, encoded)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	resp := &models.RespostaCriacao{}
	if len(bytes.TrimSpace(body)) == 0 {
		return resp, nil
	}
	if err := json.Unmarshal(body, resp); err != nil {
		c.logger.Debug("resposta de criação sem JSON", zap.String("path", path), zap.ByteString("body", body))
		return &models.RespostaCriacao{}, nil
	}
	span.SetAttributes(attribute.String("seguradora.status", resp.Status.String()))
	return resp, nil
}

// Ping verifica se a API responde. Qualquer resposta HTTP conta como viva.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(""), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.roundTrip(ctx, method, path, payload)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		return nil, err
	}
	body, _ := result.([]byte)
	return body, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reqBody)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: erro ao ler resposta: %w", method, path, err)
	}

	c.logger.Debug("chamada à API da seguradora",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duracao", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return body, nil
}

func (c *Client) url(path string) string {
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return c.baseURL
	}
	return c.baseURL + "/" + path
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrCircuitOpen) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	return true
}

// decodeList aceita o envelope {"": [...]} da API ou uma lista direta
func decodeList(body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ErrUnexpectedBody
	}

	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedBody, err)
	}
	list, ok := envelope[""]
	if !ok {
		return fmt.Errorf("%w: envelope sem a chave vazia", ErrUnexpectedBody)
	}
	if bytes.Equal(bytes.TrimSpace(list), []byte("null")) {
		list = []byte("[]")
	}
	return json.Unmarshal(list, out)
}
