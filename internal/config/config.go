// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP do BFF (default: 8080)
//   - LOG_LEVEL: Nível de log do zap: debug, info, warn, error (default: info)
//
// ## API da seguradora
//   - SEGURADORA_API_URL: URL base da API remota (obrigatória)
//   - SEGURADORA_API_TIMEOUT_SECONDS: Timeout por requisição (default: 15)
//   - SEGURADORA_MAX_RETRIES: Tentativas para leituras (GET) (default: 3)
//   - SEGURADORA_BREAKER_FAILURES: Falhas consecutivas até abrir o circuito (default: 5)
//   - SEGURADORA_BREAKER_TIMEOUT_SECONDS: Tempo com o circuito aberto (default: 30)
//
// ## Sessão
//   - SESSION_COOKIE_NAME: Cookie que indica sessão autenticada (default: @giant.token)
//   - SIGNIN_PATH: Rota de login para onde sessões anônimas são enviadas (default: /signin)
//   - CORS_ALLOWED_ORIGINS: Origens aceitas com credenciais, separadas por vírgula (default: nenhuma)
//
// ## Formulários
//   - LOOKUP_CACHE_TTL_MINUTES: TTL das listas auxiliares em cache (default: 5)
//   - LOOKUP_CACHE_MAX_SIZE: Número máximo de listas em cache (default: 64)
//   - FORM_SESSION_TTL_MINUTES: Tempo de vida de um formulário aberto sem uso (default: 60)
//   - FORM_SESSION_MAX: Número máximo de formulários abertos (default: 1000)
//   - POLICY_NUMBER_PREFIX: Prefixo do número gerado para novas apólices (default: AUP-)
//   - EXPIRING_POLICIES_WINDOW_DAYS: Janela do painel "apólices a vencer" (default: 30)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita OpenTelemetry (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
package config

import (
	"errors"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIURL indica que a URL da API da seguradora não foi configurada
var ErrMissingAPIURL = errors.New("SEGURADORA_API_URL é obrigatória")

type Config struct {
	ServerPort string
	LogLevel   string

	// API da seguradora
	SeguradoraAPIURL     string
	SeguradoraTimeout    time.Duration
	SeguradoraMaxRetries int
	BreakerFailures      int
	BreakerOpenTimeout   time.Duration

	// Sessão
	SessionCookieName  string
	SignInPath         string
	CorsAllowedOrigins []string

	// Formulários
	LookupCacheTTL         time.Duration
	LookupCacheMaxSize     int
	FormSessionTTL         time.Duration
	FormSessionMax         int
	PolicyNumberPrefix     string
	ExpiringPoliciesWindow int

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

// Load lê o ambiente (e um .env opcional) e valida a configuração
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		SeguradoraAPIURL:     strings.TrimRight(getEnv("SEGURADORA_API_URL", ""), "/"),
		SeguradoraTimeout:    time.Duration(getEnvInt("SEGURADORA_API_TIMEOUT_SECONDS", 15)) * time.Second,
		SeguradoraMaxRetries: getEnvInt("SEGURADORA_MAX_RETRIES", 3),
		BreakerFailures:      getEnvInt("SEGURADORA_BREAKER_FAILURES", 5),
		BreakerOpenTimeout:   time.Duration(getEnvInt("SEGURADORA_BREAKER_TIMEOUT_SECONDS", 30)) * time.Second,

		SessionCookieName:  getEnv("SESSION_COOKIE_NAME", "@giant.token"),
		SignInPath:         getEnv("SIGNIN_PATH", "/signin"),
		CorsAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),

		LookupCacheTTL:         time.Duration(getEnvInt("LOOKUP_CACHE_TTL_MINUTES", 5)) * time.Minute,
		LookupCacheMaxSize:     getEnvInt("LOOKUP_CACHE_MAX_SIZE", 64),
		FormSessionTTL:         time.Duration(getEnvInt("FORM_SESSION_TTL_MINUTES", 60)) * time.Minute,
		FormSessionMax:         getEnvInt("FORM_SESSION_MAX", 1000),
		PolicyNumberPrefix:     getEnv("POLICY_NUMBER_PREFIX", "AUP-"),
		ExpiringPoliciesWindow: getEnvInt("EXPIRING_POLICIES_WINDOW_DAYS", 30),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	if cfg.SeguradoraAPIURL == "" {
		return nil, ErrMissingAPIURL
	}
	if _, err := url.ParseRequestURI(cfg.SeguradoraAPIURL); err != nil {
		return nil, errors.New("SEGURADORA_API_URL inválida: " + err.Error())
	}

	return cfg, nil
}

// LoadConfig carrega a configuração e encerra o processo se ela for inválida
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvList separa uma lista por vírgulas, descartando itens vazios
func getEnvList(key string) []string {
	var items []string
	for _, item := range strings.Split(getEnv(key, ""), ",") {
		if item = strings.TrimRight(strings.TrimSpace(item), "/"); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
