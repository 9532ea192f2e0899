package syncing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/repository"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/mapper"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/normalizer"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/ingesting"
)

const notifyTimeout = 10 * time.Second

// RowSource devolve todas as linhas da planilha; a primeira é o cabeçalho
type RowSource interface {
	FetchRows(ctx context.Context) ([][]string, error)
}

// Notifier avisa o dashboard que uma fonte foi atualizada
type Notifier interface {
	Notify(ctx context.Context, source domain.Source) error
}

// BatchObserver recebe o resultado de cada sincronização (métricas)
type BatchObserver interface {
	ObserveBatch(report *domain.BatchReport)
	ObserveAbort(source domain.Source)
}

// Source reúne tudo o que é necessário para sincronizar uma planilha
type Source struct {
	Name       domain.Source
	Rows       RowSource
	Schema     mapper.Schema
	Store      repository.RecordStore
	Policy     ingesting.Policy
	Normalizer *normalizer.Normalizer
}

type Syncer interface {
	Sync(ctx context.Context, source Source) (*domain.BatchReport, error)
}

type Service struct {
	ingester     ingesting.Ingester
	notifier     Notifier
	observer     BatchObserver
	notifyErrors chan error
	pending      sync.WaitGroup
}

func NewService(ingester ingesting.Ingester, notifier Notifier, observer BatchObserver) *Service {
	return &Service{
		ingester:     ingester,
		notifier:     notifier,
		observer:     observer,
		notifyErrors: make(chan error, 16),
	}
}

// NotifyErrors expõe as falhas de notificação; elas nunca alteram o resultado do lote
func (s *Service) NotifyErrors() <-chan error {
	return s.notifyErrors
}

// Wait aguarda as notificações ainda em andamento
func (s *Service) Wait() {
	s.pending.Wait()
}

// Sync lê a planilha da fonte, converte as linhas e grava os registros.
// Falhas de conexão abortam antes de qualquer gravação e devolvem ConnectionError.
func (s *Service) Sync(ctx context.Context, source Source) (*domain.BatchReport, error) {
	logger := logrus.WithFields(logrus.Fields{
		"source": source.Name,
		"schema": source.Schema.Name,
	})

	if err := source.Store.Ping(ctx); err != nil {
		s.abort(source.Name)
		return nil, &ConnectionError{Source: source.Name, Stage: "store", Err: err}
	}

	rows, err := source.Rows.FetchRows(ctx)
	if err != nil {
		s.abort(source.Name)
		return nil, &ConnectionError{Source: source.Name, Stage: "rows", Err: err}
	}

	if len(rows) > 0 {
		rows = rows[1:]
	}

	logger.WithField("rows", len(rows)).Info("Linhas lidas da planilha")

	m := mapper.New(source.Normalizer)
	records := make([]domain.Record, 0, len(rows))
	skipped := 0
	parseErrors := 0

	for i, row := range rows {
		mapped, skip := m.Map(row, source.Schema)
		if skip != nil {
			skipped++
			logger.WithFields(logrus.Fields{
				"line":   i + 2,
				"reason": skip.Code,
			}).Debug("Linha ignorada")
			continue
		}

		parseErrors += len(mapped.Diagnostics)
		records = append(records, mapped.Record)
	}

	report := s.ingester.Ingest(ctx, ingesting.Batch{
		Source:  source.Name,
		Store:   source.Store,
		Policy:  source.Policy,
		Records: records,
	})

	report.Rows = len(rows)
	report.Skipped += skipped
	report.ParseErrors = parseErrors

	if s.observer != nil {
		s.observer.ObserveBatch(report)
	}

	logger.WithFields(logrus.Fields{
		"batch_id":     report.ID,
		"rows":         report.Rows,
		"inserted":     report.Inserted,
		"updated":      report.Updated,
		"skipped":      report.Skipped,
		"failed":       report.Failed,
		"parse_errors": report.ParseErrors,
	}).Info("Sincronização concluída")

	if !report.Interrupted {
		s.notify(source.Name)
	}

	return report, nil
}

func (s *Service) abort(source domain.Source) {
	if s.observer != nil {
		s.observer.ObserveAbort(source)
	}
}

// notify roda em segundo plano e nunca bloqueia o lote
func (s *Service) notify(source domain.Source) {
	if s.notifier == nil {
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.Notify(ctx, source); err != nil {
			err = fmt.Errorf("erro ao notificar dashboard sobre %s: %w", source, err)
			logrus.WithError(err).Warn("Notificação não enviada")

			select {
			case s.notifyErrors <- err:
			default:
			}
		}
	}()
}
