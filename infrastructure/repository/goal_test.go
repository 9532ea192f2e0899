package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
)

func TestGoalRepository_ListByMonth(t *testing.T) {
	conn, mock := newMockConnection(t)
	month := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT sku, mes_ano, COALESCE(meta_vendas, 0), COALESCE(meta_margem, 0) FROM metas_ml WHERE mes_ano = $1 ORDER BY sku ASC")).
		WithArgs("2025-03-01").
		WillReturnRows(sqlmock.NewRows([]string{"sku", "mes_ano", "meta_vendas", "meta_margem"}).
			AddRow("SKU-1", month, "1000", "15"))

	goals, err := NewGoalRepository(conn).ListByMonth(context.Background(), month.AddDate(0, 0, 14), "")

	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "1000", goals[0].SalesGoal.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepository_Save(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO metas_ml (sku,mes_ano,meta_vendas,meta_margem) VALUES ($1,$2,$3,$4)")).
		WithArgs("SKU-1", "2025-03-01", "1000", "15").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := NewGoalRepository(conn).Save(context.Background(), &domain.Goal{
		SKU:        "SKU-1",
		Month:      time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		SalesGoal:  decimal.NewFromInt(1000),
		MarginGoal: decimal.NewFromInt(15),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Error(t, NewGoalRepository(conn).Save(context.Background(), &domain.Goal{}))
}
