package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/gwr-marine/ops-analytics/internal/api/handler"
	"github.com/gwr-marine/ops-analytics/internal/api/handler/router"
	"github.com/gwr-marine/ops-analytics/internal/config"
	"github.com/gwr-marine/ops-analytics/internal/usecases/insighting"
	"github.com/gwr-marine/ops-analytics/pkg/log"
	"github.com/gwr-marine/ops-analytics/pkg/middleware"
)

const defaultShutdownTimeout = 15 * time.Second

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(
	config *config.Config,
	insightService insighting.Insighter,
	inventoryAlertsService handler.InventoryAlertsJob,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		InventoryAlertsService: inventoryAlertsService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(insightService)...),
		router.WithRoutes(handler.Clients(insightService)...),
		router.WithRoutes(handler.Inventory(insightService)...),
		router.WithRoutes(handler.Consumption(insightService)...),
		router.WithRoutes(handler.Accounts(insightService)...),
		router.WithRoutes(handler.InventoryAlerts(inventoryAlertsService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	shutdownTimeout := config.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
