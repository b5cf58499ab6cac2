package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/appstore-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/appstore-ranking-api/infrastructure/integrator/appstore"
	"github.com/vfg2006/appstore-ranking-api/infrastructure/integrator/appstore/appstoreclient"
	"github.com/vfg2006/appstore-ranking-api/infrastructure/repository"
	"github.com/vfg2006/appstore-ranking-api/internal/api"
	"github.com/vfg2006/appstore-ranking-api/internal/config"
	"github.com/vfg2006/appstore-ranking-api/internal/scheduler"
	"github.com/vfg2006/appstore-ranking-api/internal/usecases/ingesting"
	"github.com/vfg2006/appstore-ranking-api/internal/usecases/ranking"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewRankingSnapshotRepository(pgConn)

	appStoreClient := appstoreclient.NewClient(cfg)
	appStoreIntegrator := appstore.New(cfg, appStoreClient)

	ingestService := ingesting.NewService(appStoreIntegrator, snapshotRepo, cfg)
	rankingService := ranking.NewSnapshotRankingService(snapshotRepo)

	// Inicializa o agendador de ingestão diária de rankings
	rankingSyncService := scheduler.NewRankingSyncService(ingestService, cfg)

	if err := rankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de ingestão de rankings")
	} else {
		logrus.Info("Agendador de ingestão de rankings iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		rankingService,
		ingestService,
		rankingSyncService,
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
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

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
