package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/database/postgres"
	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/migration"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/api"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/app"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/config"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/authenticating"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if !log.Setup(cfg.App.LogLevel) {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Up(pgConn.DB); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	application, err := app.New(ctx, cfg, pgConn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar os serviços")
	}

	// Inicia os agendadores em background
	if err := application.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar os agendadores de sincronização")
	} else {
		logrus.WithField("sources", application.SourceNames()).Info("Agendadores de sincronização iniciados com sucesso")
	}

	authenticator := authenticating.NewService(cfg.TokenSecret())

	server, err := api.New(
		cfg,
		pgConn,
		application.Reporter,
		application.Stocker,
		authenticator,
		application.Jobs,
		application.Runners(),
		application.Metrics.Handler(),
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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
