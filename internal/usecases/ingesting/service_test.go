package ingesting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/repository"
	repomocks "github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/repository/mocks"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/ingesting"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/ingesting/mocks"
)

// memoryStore grava em um mapa e só aplica as escritas quando a unidade de trabalho termina sem erro
type memoryStore struct {
	rows   map[string]domain.Record
	reject map[string]error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: map[string]domain.Record{}, reject: map[string]error{}}
}

func (m *memoryStore) Ping(ctx context.Context) error { return nil }

func (m *memoryStore) WithinRecord(ctx context.Context, fn func(tx repository.RecordTx) error) error {
	tx := &memoryTx{store: m, staged: map[string]domain.Record{}}
	if err := fn(tx); err != nil {
		return err
	}
	for k, v := range tx.staged {
		m.rows[k] = v
	}
	return nil
}

type memoryTx struct {
	store  *memoryStore
	staged map[string]domain.Record
}

func (t *memoryTx) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := t.store.rows[key]
	return ok, nil
}

func (t *memoryTx) Insert(ctx context.Context, record domain.Record) error {
	if err := t.store.reject[record.BusinessKey()]; err != nil {
		return err
	}
	t.staged[record.BusinessKey()] = copySale(record)
	return nil
}

func (t *memoryTx) Update(ctx context.Context, record domain.Record) error {
	t.staged[record.BusinessKey()] = copySale(record)
	return nil
}

func copySale(record domain.Record) domain.Record {
	if sale, ok := record.(*domain.Sale); ok {
		clone := *sale
		return &clone
	}
	return record
}

type panicRecord struct{}

func (panicRecord) BusinessKey() string { return "PANIC-1" }
func (panicRecord) Validate() error     { panic("estado inconsistente") }

func sale(orderID, sku string, value int64) *domain.Sale {
	return &domain.Sale{
		Source:    domain.SourceMagalu,
		OrderID:   orderID,
		SKU:       sku,
		Date:      time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		Units:     1,
		SaleValue: decimal.NewFromInt(value),
	}
}

func records(sales ...*domain.Sale) []domain.Record {
	out := make([]domain.Record, 0, len(sales))
	for _, s := range sales {
		out = append(out, s)
	}
	return out
}

func TestService_Ingest_SkipIfExistsIsIdempotent(t *testing.T) {
	store := newMemoryStore()
	service := ingesting.NewService()
	batch := ingesting.Batch{
		Source:  domain.SourceML,
		Store:   store,
		Policy:  ingesting.SkipIfExists,
		Records: records(sale("P-1", "A", 100), sale("P-2", "A", 200), sale("P-3", "B", 50)),
	}

	first := service.Ingest(context.Background(), batch)
	assert.Equal(t, 3, first.Inserted)
	assert.Equal(t, 0, first.Skipped)
	assert.NotEmpty(t, first.ID)

	batch.Records = records(sale("P-1", "A", 999), sale("P-2", "A", 200), sale("P-3", "B", 50))
	second := service.Ingest(context.Background(), batch)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 3, second.Skipped)

	// registro existente não é tocado
	assert.Equal(t, "100", store.rows["P-1"].(*domain.Sale).SaleValue.String())
}

func TestService_Ingest_UpsertOnConflictOverwrites(t *testing.T) {
	store := newMemoryStore()
	service := ingesting.NewService()
	batch := ingesting.Batch{
		Source:  domain.SourceMagalu,
		Store:   store,
		Policy:  ingesting.UpsertOnConflict,
		Records: records(sale("M-1", "A", 100), sale("M-2", "B", 200)),
	}

	first := service.Ingest(context.Background(), batch)
	require.Equal(t, 2, first.Inserted)
	afterFirst := *store.rows["M-1"].(*domain.Sale)

	second := service.Ingest(context.Background(), batch)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 2, second.Updated)
	assert.Equal(t, afterFirst, *store.rows["M-1"].(*domain.Sale))

	batch.Records = records(sale("M-1", "A", 150))
	third := service.Ingest(context.Background(), batch)
	assert.Equal(t, 1, third.Updated)
	assert.Equal(t, "150", store.rows["M-1"].(*domain.Sale).SaleValue.String())
}

func TestService_Ingest_InvalidRecordIsIsolated(t *testing.T) {
	store := newMemoryStore()
	invalid := sale("P-X", "", 10)

	report := ingesting.NewService().Ingest(context.Background(), ingesting.Batch{
		Source:  domain.SourceML,
		Store:   store,
		Policy:  ingesting.SkipIfExists,
		Records: records(sale("P-1", "A", 1), invalid, sale("P-2", "A", 2), sale("P-3", "A", 3)),
	})

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 3, report.Inserted)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "P-X", report.Failures[0].Key)
	assert.Contains(t, report.Failures[0].Reason, ingesting.ErrInvalidRecord.Error())
	assert.NotContains(t, store.rows, "P-X")
}

func TestService_Ingest_MixedBatchIsIdempotent(t *testing.T) {
	store := newMemoryStore()
	store.reject["P-3"] = errors.New("violação de restrição")
	service := ingesting.NewService()

	batch := ingesting.Batch{
		Source:  domain.SourceML,
		Store:   store,
		Policy:  ingesting.SkipIfExists,
		Records: records(sale("P-1", "A", 10), sale("P-2", "", 20), sale("P-3", "A", 30), sale("P-4", "B", 40)),
	}

	first := service.Ingest(context.Background(), batch)
	assert.Equal(t, 2, first.Inserted)
	assert.Equal(t, 2, first.Failed)
	assert.Len(t, store.rows, 2)

	second := service.Ingest(context.Background(), batch)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 2, second.Skipped)
	assert.Equal(t, 2, second.Failed)

	batch.Policy = ingesting.UpsertOnConflict
	third := service.Ingest(context.Background(), batch)
	assert.Equal(t, 2, third.Updated)
	assert.Equal(t, 0, third.Inserted)
	assert.Len(t, store.rows, 2)
}

func TestService_Ingest_PanicIsIsolated(t *testing.T) {
	store := newMemoryStore()

	report := ingesting.NewService().Ingest(context.Background(), ingesting.Batch{
		Source:  domain.SourceML,
		Store:   store,
		Policy:  ingesting.SkipIfExists,
		Records: []domain.Record{panicRecord{}, sale("P-1", "A", 1)},
	})

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Inserted)
	assert.Contains(t, report.Failures[0].Reason, ingesting.ErrPanic.Error())
}

func TestService_Ingest_PersistenceErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := repomocks.NewMockRecordStore(ctrl)
	tx := repomocks.NewMockRecordTx(ctrl)
	finalizer := mocks.NewMockFinalizer(ctrl)

	store.EXPECT().
		WithinRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repository.RecordTx) error) error {
			return fn(tx)
		}).
		Times(3)

	tx.EXPECT().Exists(gomock.Any(), "P-1").Return(false, nil)
	tx.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("violação de restrição"))
	tx.EXPECT().Exists(gomock.Any(), "P-2").Return(false, errors.New("conexão perdida"))
	tx.EXPECT().Exists(gomock.Any(), "P-3").Return(true, nil)
	tx.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	finalizer.EXPECT().Finalize(gomock.Any()).Return(errors.New("falha ao recalcular estoque"))

	report := ingesting.NewService(finalizer).Ingest(context.Background(), ingesting.Batch{
		Source:  domain.SourceMagalu,
		Store:   store,
		Policy:  ingesting.UpsertOnConflict,
		Records: records(sale("P-1", "A", 1), sale("P-2", "A", 2), sale("P-3", "A", 3)),
	})

	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, "falha ao recalcular estoque", report.FinalizeError)
	assert.False(t, report.FinishedAt.IsZero())
}

func TestService_Ingest_RunsFinalizerAfterEveryBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finalizer := mocks.NewMockFinalizer(ctrl)
	finalizer.EXPECT().Finalize(gomock.Any()).Return(nil).Times(2)

	service := ingesting.NewService(finalizer)
	batch := ingesting.Batch{Source: domain.SourceStock, Store: newMemoryStore(), Policy: ingesting.UpsertOnConflict}

	service.Ingest(context.Background(), batch)
	report := service.Ingest(context.Background(), batch)

	assert.Empty(t, report.FinalizeError)
	assert.Equal(t, 0, report.Processed())
}

func TestService_Ingest_CancelledContextInterruptsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finalizer := mocks.NewMockFinalizer(ctrl)
	finalizer.EXPECT().Finalize(gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := ingesting.NewService(finalizer).Ingest(ctx, ingesting.Batch{
		Source:  domain.SourceML,
		Store:   newMemoryStore(),
		Policy:  ingesting.SkipIfExists,
		Records: records(sale("P-1", "A", 1)),
	})

	assert.True(t, report.Interrupted)
	assert.Equal(t, 0, report.Processed())
}

func TestIngestError(t *testing.T) {
	cause := errors.New("chave duplicada")
	err := ingesting.NewIngestError(ingesting.ErrPersistence, "P-1", cause)

	assert.True(t, errors.Is(err, ingesting.ErrPersistence))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "erro ao gravar registro [P-1]: chave duplicada", err.Error())
}

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		source domain.Source
		want   ingesting.Policy
	}{
		{domain.SourceML, ingesting.SkipIfExists},
		{domain.SourceMagalu, ingesting.UpsertOnConflict},
		{domain.SourceStock, ingesting.UpsertOnConflict},
	}

	for _, tt := range tests {
		t.Run(tt.source.String(), func(t *testing.T) {
			got, err := ingesting.PolicyFor(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ingesting.PolicyFor(domain.Source("shopee"))
	assert.ErrorIs(t, err, ingesting.ErrUnknownPolicy)
}
