package ingesting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/repository"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/utils"
)

// Policy define o que acontece quando a chave do registro já existe
type Policy int

const (
	SkipIfExists Policy = iota
	UpsertOnConflict
)

func (p Policy) String() string {
	switch p {
	case SkipIfExists:
		return "skip-if-exists"
	case UpsertOnConflict:
		return "upsert-on-conflict"
	default:
		return "unknown"
	}
}

// PolicyFor devolve a política fixa da fonte: vendas do Mercado Livre nunca são
// sobrescritas, Magalu e estoque sempre refletem a última leitura da planilha.
func PolicyFor(source domain.Source) (Policy, error) {
	switch source {
	case domain.SourceML:
		return SkipIfExists, nil
	case domain.SourceMagalu, domain.SourceStock:
		return UpsertOnConflict, nil
	default:
		return 0, fmt.Errorf("%w: fonte %q", ErrUnknownPolicy, source)
	}
}

// Batch é um lote de registros de uma fonte a ser gravado em store
type Batch struct {
	Source  domain.Source
	Store   repository.RecordStore
	Policy  Policy
	Records []domain.Record
}

// Finalizer executa a passada derivada depois que todos os registros do lote foram processados
type Finalizer interface {
	Finalize(ctx context.Context) error
}

type Ingester interface {
	Ingest(ctx context.Context, batch Batch) *domain.BatchReport
}

type Service struct {
	finalizers []Finalizer
}

func NewService(finalizers ...Finalizer) *Service {
	return &Service{finalizers: finalizers}
}

// Ingest grava os registros um a um, cada um em sua própria transação.
// A falha de um registro é contabilizada e não interrompe o lote.
func (s *Service) Ingest(ctx context.Context, batch Batch) *domain.BatchReport {
	report := domain.NewBatchReport(utils.NewBatchID(string(batch.Source), time.Now()), batch.Source)

	logger := logrus.WithFields(logrus.Fields{
		"batch_id": report.ID,
		"source":   batch.Source,
		"policy":   batch.Policy.String(),
		"records":  len(batch.Records),
	})
	logger.Info("Iniciando gravação do lote")

	for _, record := range batch.Records {
		if ctx.Err() != nil {
			report.Interrupted = true
			logger.WithError(ctx.Err()).Warn("Lote interrompido antes do fim")
			break
		}

		outcome, err := s.ingestRecord(ctx, batch.Store, record, batch.Policy)
		if err != nil {
			report.Fail(record.BusinessKey(), err)
			logger.WithFields(logrus.Fields{
				"key":   record.BusinessKey(),
				"error": err.Error(),
			}).Error("Falha ao gravar registro")
			continue
		}

		report.Count(outcome)
	}

	if !report.Interrupted {
		s.finalize(ctx, report)
	}

	report.Finish()

	logger.WithFields(logrus.Fields{
		"inserted": report.Inserted,
		"updated":  report.Updated,
		"skipped":  report.Skipped,
		"failed":   report.Failed,
		"duration": report.Duration().String(),
	}).Info("Gravação do lote concluída")

	return report
}

func (s *Service) ingestRecord(
	ctx context.Context,
	store repository.RecordStore,
	record domain.Record,
	policy Policy,
) (outcome domain.Outcome, err error) {
	key := record.BusinessKey()

	defer func() {
		if p := recover(); p != nil {
			outcome = domain.OutcomeFailed
			err = NewIngestError(ErrPanic, key, fmt.Errorf("%v", p))
		}
	}()

	if err := record.Validate(); err != nil {
		return domain.OutcomeFailed, NewIngestError(ErrInvalidRecord, key, err)
	}

	err = store.WithinRecord(ctx, func(tx repository.RecordTx) error {
		exists, err := tx.Exists(ctx, key)
		if err != nil {
			return err
		}

		if !exists {
			if err := tx.Insert(ctx, record); err != nil {
				return err
			}
			outcome = domain.OutcomeInserted
			return nil
		}

		if policy == SkipIfExists {
			outcome = domain.OutcomeSkipped
			return nil
		}

		if err := tx.Update(ctx, record); err != nil {
			return err
		}
		outcome = domain.OutcomeUpdated
		return nil
	})
	if err != nil {
		return domain.OutcomeFailed, NewIngestError(ErrPersistence, key, err)
	}

	return outcome, nil
}

func (s *Service) finalize(ctx context.Context, report *domain.BatchReport) {
	for _, finalizer := range s.finalizers {
		if err := finalizer.Finalize(ctx); err != nil {
			report.FinalizeError = err.Error()
			logrus.WithFields(logrus.Fields{
				"batch_id": report.ID,
				"source":   report.Source,
				"error":    err.Error(),
			}).Error("Erro na atualização derivada após o lote")
		}
	}
}
