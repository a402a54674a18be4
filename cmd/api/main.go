package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/working-capital-api/infrastructure/database/postgres"
	"github.com/vfg2006/working-capital-api/infrastructure/importer"
	"github.com/vfg2006/working-capital-api/infrastructure/integrator/openai"
	"github.com/vfg2006/working-capital-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/working-capital-api/infrastructure/integrator/warehouse"
	"github.com/vfg2006/working-capital-api/infrastructure/integrator/warehouse/warehouseclient"
	"github.com/vfg2006/working-capital-api/infrastructure/repository"
	"github.com/vfg2006/working-capital-api/internal/api"
	"github.com/vfg2006/working-capital-api/internal/config"
	"github.com/vfg2006/working-capital-api/internal/scheduler"
	"github.com/vfg2006/working-capital-api/internal/usecases/analyzing"
	"github.com/vfg2006/working-capital-api/internal/usecases/authenticating"
	"github.com/vfg2006/working-capital-api/internal/usecases/narrating"
	"github.com/vfg2006/working-capital-api/internal/usecases/prioritizing"
	"github.com/vfg2006/working-capital-api/internal/usecases/turnover"
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

	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	narrativeCacheRepo := repository.NewNarrativeCacheRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	calculator := turnover.NewCalculatorWithRatio(cfg.Turnover.CostRatio)
	scorer := prioritizing.NewScorer()

	datasetCache := analyzing.NewDatasetCache(cfg.DatasetCache.TTL)
	analyzer := analyzing.NewService(snapshotRepo, calculator, datasetCache)

	openaiClient := openaiclient.NewClient(cfg)
	openaiIntegrator := openai.New(cfg, openaiClient)

	warehouseClient := warehouseclient.NewClient(cfg)
	warehouseIntegrator := warehouse.New(cfg, warehouseClient)

	narrator := narrating.NewService(analyzer, scorer, narrativeCacheRepo, openaiIntegrator)

	snapshotImporter := importer.NewSnapshotImporter()

	// Inicializa o agendador de sincronização com o warehouse
	warehouseSyncService := scheduler.NewWarehouseSyncService(
		snapshotRepo,
		warehouseIntegrator,
		analyzer,
		cfg,
	)

	// Inicia o agendador em background
	if err := warehouseSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização com o warehouse")
	} else {
		logrus.Info("Agendador de sincronização com o warehouse iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		narrator,
		authenticator,
		snapshotImporter,
		snapshotRepo,
		warehouseSyncService,
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
