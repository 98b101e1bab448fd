package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/missiaspietro/pshot-report-api/infrastructure/database/postgres"
	"github.com/missiaspietro/pshot-report-api/infrastructure/repository"
	"github.com/missiaspietro/pshot-report-api/internal/api"
	"github.com/missiaspietro/pshot-report-api/internal/config"
	"github.com/missiaspietro/pshot-report-api/internal/scheduler"
	"github.com/missiaspietro/pshot-report-api/internal/usecases/authenticating"
	"github.com/missiaspietro/pshot-report-api/internal/usecases/customreport"
	"github.com/missiaspietro/pshot-report-api/internal/usecases/reporting"
	"github.com/missiaspietro/pshot-report-api/pkg/cache"
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
	birthdayRepo := repository.NewBirthdayReportRepository(pgConn)
	cashbackRepo := repository.NewCashbackReportRepository(pgConn)
	surveyRepo := repository.NewSurveyReportRepository(pgConn)
	promotionRepo := repository.NewPromotionReportRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	cacheStore := cache.New(cfg.Cache.TTL)

	chartService := reporting.NewService(
		cfg,
		birthdayRepo,
		cashbackRepo,
		surveyRepo,
		promotionRepo,
		cacheStore,
	)

	reportService := customreport.NewService(
		birthdayRepo,
		cashbackRepo,
		surveyRepo,
		promotionRepo,
	)

	cacheSweeper := scheduler.NewCacheSweeperService(cacheStore, cfg)
	if err := cacheSweeper.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura de cache")
	} else {
		logrus.Info("Agendador de varredura de cache iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		chartService,
		reportService,
		authenticator,
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

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
