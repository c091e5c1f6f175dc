package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brassertech/vendas-api/internal/api/handler"
	"github.com/brassertech/vendas-api/internal/api/handler/router"
	"github.com/brassertech/vendas-api/internal/config"
	"github.com/brassertech/vendas-api/internal/scheduler"
	"github.com/brassertech/vendas-api/internal/usecases/authenticating"
	"github.com/brassertech/vendas-api/internal/usecases/cataloging"
	"github.com/brassertech/vendas-api/internal/usecases/dashboarding"
	"github.com/brassertech/vendas-api/internal/usecases/ranking"
	"github.com/brassertech/vendas-api/internal/usecases/registering"
	"github.com/brassertech/vendas-api/internal/usecases/selling"
	"github.com/brassertech/vendas-api/internal/usecases/suggesting"
	"github.com/brassertech/vendas-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	clientService registering.ClientService,
	productService cataloging.ProductService,
	saleService selling.SaleService,
	ideaService suggesting.IdeaService,
	rankingService ranking.RankingService,
	dashboardService dashboarding.Dashboarder,
	sellerTotalsSyncService *scheduler.SellerTotalsSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SellerTotalsSyncService: sellerTotalsSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Users(authenticator)...),
		router.WithRoutes(handler.Sellers(authenticator)...),
		router.WithRoutes(handler.Clients(clientService)...),
		router.WithRoutes(handler.Products(productService)...),
		router.WithRoutes(handler.Sales(saleService)...),
		router.WithRoutes(handler.Ideas(ideaService)...),
		router.WithRoutes(handler.SellerRanking(rankingService)...),
		router.WithRoutes(handler.Dashboard(dashboardService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
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

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

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
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
