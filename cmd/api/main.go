package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/pontogestor/admin-api/infrastructure/database/postgres"
	"github.com/pontogestor/admin-api/infrastructure/integrator/advisor"
	"github.com/pontogestor/admin-api/infrastructure/integrator/facilitaponto"
	"github.com/pontogestor/admin-api/infrastructure/integrator/facilitaponto/fpclient"
	"github.com/pontogestor/admin-api/infrastructure/repository"
	"github.com/pontogestor/admin-api/internal/api"
	"github.com/pontogestor/admin-api/internal/config"
	"github.com/pontogestor/admin-api/internal/scheduler"
	"github.com/pontogestor/admin-api/internal/usecases/authenticating"
	"github.com/pontogestor/admin-api/internal/usecases/billing"
	"github.com/pontogestor/admin-api/internal/usecases/company"
	"github.com/pontogestor/admin-api/internal/usecases/reporting"
	"github.com/pontogestor/admin-api/internal/usecases/syncing"
	"github.com/sirupsen/logrus"
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

	companyRepo := repository.NewCompanyRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	systemLogRepo := repository.NewSystemLogRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	fpClient := fpclient.NewClient(cfg)
	fpIntegrator := facilitaponto.New(cfg, fpClient)

	advisorIntegrator := advisor.New(cfg)

	companyService := company.NewService(companyRepo, systemLogRepo)
	billingService := billing.NewService(invoiceRepo, companyRepo, systemLogRepo, cfg)
	syncService := syncing.NewService(companyRepo, systemLogRepo, fpIntegrator)
	reportingService := reporting.NewService(companyRepo, invoiceRepo, systemLogRepo, advisorIntegrator)

	// Inicializa os agendadores das rotinas de cobrança
	overdueSweepService := scheduler.NewOverdueSweepService(billingService, cfg)
	headcountSyncService := scheduler.NewHeadcountSyncService(userRepo, syncService, cfg)

	// Inicia os agendadores em background
	if err := overdueSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da varredura de vencimento")
	} else {
		logrus.Info("Agendador da varredura de vencimento iniciado com sucesso")
	}

	if err := headcountSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de quadro")
	} else {
		logrus.Info("Agendador de sincronização de quadro iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		companyService,
		billingService,
		reportingService,
		syncService,
		authenticator,
		overdueSweepService,
		headcountSyncService,
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
