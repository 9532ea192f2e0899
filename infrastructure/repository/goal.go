package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/database/postgres"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
)

const goalsTable = "metas_ml"

type GoalRepository interface {
	ListByMonth(ctx context.Context, month time.Time, sku string) ([]*domain.Goal, error)
	Save(ctx context.Context, goal *domain.Goal) error
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{conn: conn}
}

func (r *goalRepository) ListByMonth(ctx context.Context, month time.Time, sku string) ([]*domain.Goal, error) {
	builder := squirrel.
		Select("sku", "mes_ano", "COALESCE(meta_vendas, 0)", "COALESCE(meta_margem, 0)").
		From(goalsTable).
		Where(squirrel.Eq{"mes_ano": domain.MonthStart(month).Format(time.DateOnly)}).
		OrderBy("sku ASC").
		PlaceholderFormat(squirrel.Dollar)

	if sku != "" {
		builder = builder.Where(squirrel.Eq{"sku": sku})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		var goal domain.Goal
		if err := rows.Scan(&goal.SKU, &goal.Month, &goal.SalesGoal, &goal.MarginGoal); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		goals = append(goals, &goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}

// Save insere ou atualiza a meta do SKU no mês
func (r *goalRepository) Save(ctx context.Context, goal *domain.Goal) error {
	if err := goal.Validate(); err != nil {
		return fmt.Errorf("meta inválida: %w", err)
	}

	query, args, err := squirrel.
		Insert(goalsTable).
		Columns("sku", "mes_ano", "meta_vendas", "meta_margem").
		Values(goal.SKU, domain.MonthStart(goal.Month).Format(time.DateOnly), goal.SalesGoal, goal.MarginGoal).
		Suffix(`
			ON CONFLICT (sku, mes_ano) DO UPDATE SET
				meta_vendas = EXCLUDED.meta_vendas,
				meta_margem = EXCLUDED.meta_margem,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}
