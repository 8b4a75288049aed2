package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/permits-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/permits-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/permits-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/permits-dashboard-api/infrastructure/integrator/workbook"
	"github.com/vfg2006/permits-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/permits-dashboard-api/internal/api"
	"github.com/vfg2006/permits-dashboard-api/internal/api/handler"
	"github.com/vfg2006/permits-dashboard-api/internal/config"
	"github.com/vfg2006/permits-dashboard-api/internal/scheduler"
	"github.com/vfg2006/permits-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/permits-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/permits-dashboard-api/internal/usecases/snapshotting"
	"github.com/vfg2006/permits-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, err := dataSource(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a origem da planilha")
	}

	cacheOptions := []snapshotting.Option{}
	if cfg.SnapshotHistory.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		err := pgConn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			return repository.NewSnapshotHistoryRepository(tx).Migrate(ctx)
		})
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar o histórico de snapshots")
		}

		historyRepo := repository.NewSnapshotHistoryRepository(pgConn)
		cacheOptions = append(cacheOptions, snapshotting.WithHistory(historyRepo, cfg.SnapshotHistory.Limit))
	}

	cache := snapshotting.NewCache(source, cfg.Cache.TTL, cacheOptions...)
	reporter := reporting.NewService(cache, cfg.Report)
	authenticator := authenticating.NewService(cfg.Auth.Secret)
	if !authenticator.Enabled() {
		logrus.Warn("AUTH_SECRET vazio: a API está aberta sem autenticação")
	}

	snapshotWarmupService := scheduler.NewSnapshotWarmupService(cache, cfg)
	if err := snapshotWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do snapshot")
	} else {
		logrus.Info("Agendador de aquecimento do snapshot iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reporter,
		cache,
		authenticator,
		handler.CronJobServices{SnapshotWarmupService: snapshotWarmupService},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dataSource escolhe de onde a planilha é lida
func dataSource(ctx context.Context, cfg *config.Config) (snapshotting.DataSource, error) {
	switch cfg.Sheet.Source {
	case config.SheetSourceXLSX:
		logrus.WithField("path", cfg.Sheet.XLSXPath).Info("Lendo planilha de arquivo xlsx")
		return workbook.New(cfg), nil
	case config.SheetSourceGoogle:
		client, err := sheetsclient.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"spreadsheet_id": cfg.Sheet.SpreadsheetID,
			"worksheet":      cfg.Sheet.Worksheet,
		}).Info("Lendo planilha do Google Sheets")
		return sheets.New(cfg, client), nil
	default:
		return nil, fmt.Errorf("origem de planilha desconhecida: %q", cfg.Sheet.Source)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) postgres.Conn {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
