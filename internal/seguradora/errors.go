package seguradora

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrCircuitOpen    = errors.New("API da seguradora indisponível (circuito aberto)")
	ErrUnexpectedBody = errors.New("resposta inesperada da API da seguradora")
)

// APIError é uma resposta HTTP fora da faixa 2xx
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Temporary indica respostas em que vale a pena tentar de novo
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Message é o texto mostrado ao operador: o corpo, ou o texto padrão do status
func (e *APIError) Message() string {
	if e.Body != "" {
		return e.Body
	}
	return http.StatusText(e.StatusCode)
}
