package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gwr-marine/ops-analytics/infrastructure/database/postgres"
	"github.com/gwr-marine/ops-analytics/infrastructure/repository"
	"github.com/gwr-marine/ops-analytics/internal/api"
	"github.com/gwr-marine/ops-analytics/internal/config"
	"github.com/gwr-marine/ops-analytics/internal/scheduler"
	"github.com/gwr-marine/ops-analytics/internal/usecases/insighting"
	"github.com/gwr-marine/ops-analytics/internal/usecases/normalizing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	aliases, err := config.LoadAliases(cfg.Aliases)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar tabela de apelidos")
	}
	logrus.WithField("entities", len(aliases)).Info("Tabela de apelidos carregada")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	datasetRepo := repository.NewDatasetRepository(pgConn)
	snapshotRepo := repository.NewInventorySnapshotRepository(pgConn)

	normalizer := normalizing.NewNormalizer(aliases)

	insightService, err := insighting.NewService(cfg.Analytics, datasetRepo, normalizer)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar serviço de insights")
	}

	inventoryAlertsService := scheduler.NewInventoryAlertsService(insightService, snapshotRepo, cfg)

	if err := inventoryAlertsService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de alertas de estoque")
	} else {
		logrus.Info("Agendador de alertas de estoque iniciado com sucesso")
	}

	server, err := api.New(cfg, insightService, inventoryAlertsService)
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

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
