package main

import (
	"context"
	"time"

	"github.com/brassertech/vendas-api/infrastructure/database/postgres"
	"github.com/brassertech/vendas-api/infrastructure/repository"
	"github.com/brassertech/vendas-api/internal/api"
	"github.com/brassertech/vendas-api/internal/config"
	"github.com/brassertech/vendas-api/internal/scheduler"
	"github.com/brassertech/vendas-api/internal/usecases/authenticating"
	"github.com/brassertech/vendas-api/internal/usecases/cataloging"
	"github.com/brassertech/vendas-api/internal/usecases/dashboarding"
	"github.com/brassertech/vendas-api/internal/usecases/ranking"
	"github.com/brassertech/vendas-api/internal/usecases/registering"
	"github.com/brassertech/vendas-api/internal/usecases/selling"
	"github.com/brassertech/vendas-api/internal/usecases/suggesting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	sellerRepo := repository.NewSellerRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	ideaRepo := repository.NewIdeaRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, sellerRepo, cfg)
	clientService := registering.NewService(clientRepo)
	productService := cataloging.NewService(productRepo)
	saleService := selling.NewService(saleRepo, clientRepo, productRepo)
	ideaService := suggesting.NewService(ideaRepo)
	rankingService := ranking.NewService(saleRepo)
	dashboardService := dashboarding.NewService(saleRepo)

	sellerTotalsSyncService := scheduler.NewSellerTotalsSyncService(saleRepo, sellerRepo, cfg)

	if err := sellerTotalsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de totais por vendedor")
	} else {
		logrus.Info("Agendador de totais por vendedor iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		clientService,
		productService,
		saleService,
		ideaService,
		rankingService,
		dashboardService,
		sellerTotalsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
