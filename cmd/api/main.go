package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/giant-seguros/app-backoffice/docs"
	"github.com/giant-seguros/app-backoffice/internal/api/routes"
	"github.com/giant-seguros/app-backoffice/internal/config"
	"github.com/giant-seguros/app-backoffice/internal/observability"
	"go.uber.org/zap"
)

// @title           Back-office de Seguros API
// @version         1.0
// @description     BFF dos formulários do back-office: apólices, clientes e sinistros enviados à API da seguradora
// @termsOfService  http://swagger.io/terms/

// @contact.name   Giant Seguros

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {
	cfg := config.LoadConfig()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	observability.InitTracer(cfg, logger)
	defer observability.ShutdownTracer(logger)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           routes.SetupRouter(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Servidor iniciado", zap.String("porta", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Erro ao iniciar servidor", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Encerrando servidor")

	// envios em andamento rodam desacoplados da requisição; o prazo cobre o timeout da API
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.SeguradoraTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Erro ao encerrar servidor", zap.Error(err))
	}
}
