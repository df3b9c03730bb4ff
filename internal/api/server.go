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
	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/internal/api/handler"
	"github.com/osrsclan/event-manager-api/internal/api/handler/router"
	"github.com/osrsclan/event-manager-api/internal/config"
	"github.com/osrsclan/event-manager-api/internal/scheduler"
	"github.com/osrsclan/event-manager-api/internal/usecases/authenticating"
	"github.com/osrsclan/event-manager-api/internal/usecases/eventing"
	"github.com/osrsclan/event-manager-api/internal/usecases/hiscoring"
	"github.com/osrsclan/event-manager-api/internal/usecases/milestoning"
	"github.com/osrsclan/event-manager-api/internal/usecases/pricing"
	"github.com/osrsclan/event-manager-api/internal/usecases/submitting"
	"github.com/osrsclan/event-manager-api/internal/usecases/teaming"
	"github.com/osrsclan/event-manager-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	eventService eventing.Service,
	teamService teaming.Service,
	submissionService submitting.Service,
	milestoneService milestoning.Service,
	hiscoreService hiscoring.Service,
	priceService pricing.Service,
	snapshotSyncService *scheduler.HiscoreSnapshotSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		HiscoreSnapshotSyncService: snapshotSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Events(eventService)...),
		router.WithRoutes(handler.Teams(teamService)...),
		router.WithRoutes(handler.Submissions(submissionService)...),
		router.WithRoutes(handler.Milestones(milestoneService)...),
		router.WithRoutes(handler.Hiscore(hiscoreService)...),
		router.WithRoutes(handler.Prices(priceService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
