package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-server-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-server-api/infrastructure/repository"
	"github.com/vfg2006/ad-server-api/internal/api"
	"github.com/vfg2006/ad-server-api/internal/config"
	"github.com/vfg2006/ad-server-api/internal/usecases/delivering"
	"github.com/vfg2006/ad-server-api/internal/usecases/reporting"
	"github.com/vfg2006/ad-server-api/internal/usecases/tracking"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	clickEventRepo := repository.NewClickEventRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)

	deliveryService := delivering.NewService(cfg)
	trackingService := tracking.NewService(clickEventRepo)
	reportingService := reporting.NewService(reportRepo)

	server, err := api.New(
		cfg,
		deliveryService,
		trackingService,
		reportingService,
		pgConn,
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

// pgconn cria a conexão com o banco e segura a inicialização até o banco
// responder. Esgotadas as tentativas, o processo termina.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	retryDelay := time.Duration(dbConfig.ConnectRetryDelay) * time.Second
	if err := conn.WaitForDatabase(ctx, dbConfig.ConnectMaxAttempts, retryDelay); err != nil {
		logrus.WithError(err).Fatal("Banco de dados indisponível após todas as tentativas")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
