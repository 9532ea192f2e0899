package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/sheets/v4"

	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/database/postgres"
	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/integrator/dashboard"
	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/integrator/spreadsheet"
	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/repository"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/api/handler"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/config"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/mapper"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/metrics"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/normalizer"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/scheduler"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/ingesting"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/reporting"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/stocking"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/syncing"
)

const DailyReportJob = "daily-report"

// App reúne os serviços montados a partir da configuração e da conexão com o banco
type App struct {
	Config   *config.Config
	Conn     *postgres.Connection
	Metrics  *metrics.Recorder
	Syncer   *syncing.Service
	Reporter *reporting.Service
	Stocker  *stocking.Service
	Goals    repository.GoalRepository
	Sources  map[string]syncing.Source
	Jobs     scheduler.Jobs

	syncServices map[string]*scheduler.SourceSyncService
}

func New(ctx context.Context, cfg *config.Config, conn *postgres.Connection) (*App, error) {
	mlSales := repository.NewMLSalesRepository(conn)
	magaluSales := repository.NewMagaluSalesRepository(conn)
	stockRepo := repository.NewStockRepository(conn, repository.SalesMLTable, repository.SalesMagaluTable)
	goalRepo := repository.NewGoalRepository(conn)

	recorder := metrics.New()
	stocker := stocking.NewService(stockRepo)
	ingester := ingesting.NewService(stocker)
	syncer := syncing.NewService(ingester, dashboard.NewClient(cfg.Dashboard), recorder)

	stores := map[domain.Source]repository.RecordStore{
		domain.SourceML:     mlSales,
		domain.SourceMagalu: magaluSales,
		domain.SourceStock:  stockRepo,
	}

	sources, err := BuildSources(ctx, cfg, stores, LazyGoogleSheets(cfg.GoogleAPI.CredentialsFile))
	if err != nil {
		return nil, err
	}

	// o relatório diário considera apenas as vendas do Mercado Livre, que têm metas
	reporter := reporting.NewService(mlSales, goalRepo, nil).WithMarketplaces(map[domain.Source]reporting.SalesReader{
		domain.SourceML:     mlSales,
		domain.SourceMagalu: magaluSales,
	})

	a := &App{
		Config:       cfg,
		Conn:         conn,
		Metrics:      recorder,
		Syncer:       syncer,
		Reporter:     reporter,
		Stocker:      stocker,
		Goals:        goalRepo,
		Sources:      sources,
		syncServices: map[string]*scheduler.SourceSyncService{},
	}
	a.Jobs = a.buildJobs()

	return a, nil
}

func (a *App) buildJobs() scheduler.Jobs {
	schedules := map[string]scheduler.SyncConfig{
		domain.SourceML.String():     {CronSchedule: a.Config.MLSync.CronSchedule, SyncEnabled: a.Config.MLSync.Enabled},
		domain.SourceMagalu.String(): {CronSchedule: a.Config.MagaluSync.CronSchedule, SyncEnabled: a.Config.MagaluSync.Enabled},
		domain.SourceStock.String():  {CronSchedule: a.Config.StockSync.CronSchedule, SyncEnabled: a.Config.StockSync.Enabled},
	}

	jobs := scheduler.Jobs{}
	for name, source := range a.Sources {
		service := scheduler.NewSourceSyncService(a.Syncer, source, schedules[name])
		a.syncServices[name] = service
		jobs[name] = service
	}

	jobs[DailyReportJob] = scheduler.NewDailyReportService(a.Reporter, scheduler.SyncConfig{
		CronSchedule: a.Config.DailyReport.CronSchedule,
		SyncEnabled:  a.Config.DailyReport.Enabled,
	})

	return jobs
}

// Start inicia os agendadores e o consumo dos erros de notificação
func (a *App) Start(ctx context.Context) error {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case err := <-a.Syncer.NotifyErrors():
				logrus.WithError(err).Warn("Falha ao notificar o dashboard")
			}
		}
	}()

	return a.Jobs.StartAll(ctx)
}

// Runners expõe a sincronização síncrona de cada fonte para a API
func (a *App) Runners() map[string]handler.SourceRunner {
	runners := make(map[string]handler.SourceRunner, len(a.syncServices))
	for name, service := range a.syncServices {
		runners[name] = service
	}
	return runners
}

// SourceNames devolve as fontes configuradas em ordem alfabética
func (a *App) SourceNames() []string {
	names := make([]string, 0, len(a.Sources))
	for name := range a.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SyncSource sincroniza uma fonte pelo nome e devolve o relatório do lote
func (a *App) SyncSource(ctx context.Context, name string) (*domain.BatchReport, error) {
	service, ok := a.syncServices[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", syncing.ErrUnknownSource, name)
	}
	return service.SyncNow(ctx)
}

// BuildSources monta as fontes configuradas. Fontes sem planilha são ignoradas com aviso;
// a política de gravação é fixa por fonte.
func BuildSources(
	ctx context.Context,
	cfg *config.Config,
	stores map[domain.Source]repository.RecordStore,
	google func(context.Context) (*sheets.Service, error),
) (map[string]syncing.Source, error) {
	sources := map[string]syncing.Source{}

	for name, settings := range cfg.Sources() {
		source := domain.Source(name)

		schema, ok := mapper.SchemaFor(source)
		if !ok {
			return nil, fmt.Errorf("%w: %s", syncing.ErrUnknownSource, name)
		}

		store, ok := stores[source]
		if !ok {
			return nil, fmt.Errorf("nenhum repositório para a fonte %s", name)
		}

		policy, err := ingesting.PolicyFor(source)
		if err != nil {
			return nil, fmt.Errorf("fonte %s: %w", name, err)
		}

		rows, err := spreadsheet.NewRowSource(ctx, name, settings, google)
		if errors.Is(err, spreadsheet.ErrNoSource) {
			logrus.WithField("source", name).Warn("Fonte sem planilha configurada, sincronização desativada")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao preparar a planilha de %s: %w", name, err)
		}

		sources[name] = syncing.Source{
			Name:       source,
			Rows:       rows,
			Schema:     schema,
			Store:      store,
			Policy:     policy,
			Normalizer: normalizer.New(name, Convention(settings)),
		}
	}

	return sources, nil
}

// Convention converte a configuração da planilha nas regras de conversão de valores
func Convention(settings config.SourceSettings) normalizer.Convention {
	numeric := normalizer.BrazilianNumeric
	if settings.ThousandsSeparator != "" {
		numeric.ThousandsSeparator = settings.ThousandsSeparator
	}
	if settings.DecimalSeparator != "" {
		numeric.DecimalSeparator = settings.DecimalSeparator
	}
	numeric.PercentAsFraction = settings.PercentAsFraction
	numeric.CurrencyPreScaledBy100 = settings.CurrencyPreScaled

	return normalizer.Convention{
		Numeric: numeric,
		Date: normalizer.DateConvention{
			Layouts:   settings.DateLayouts,
			DayOffset: settings.DateDayOffset,
		},
	}
}

// LazyGoogleSheets cria o cliente do Google Sheets na primeira fonte que precisar dele
func LazyGoogleSheets(credentialsFile string) func(context.Context) (*sheets.Service, error) {
	var (
		once    sync.Once
		service *sheets.Service
		err     error
	)

	return func(ctx context.Context) (*sheets.Service, error) {
		once.Do(func() {
			service, err = spreadsheet.NewGoogleSheetsService(ctx, credentialsFile)
		})
		return service, err
	}
}
