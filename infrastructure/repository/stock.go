package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/database/postgres"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
)

const stockTable = "estoque"

type StockRepository interface {
	RecordStore
	ListAll(ctx context.Context) ([]*domain.Stock, error)
	SalesActivity(ctx context.Context, since time.Time) (map[string]domain.SalesActivity, error)
	UpdateDerived(ctx context.Context, stock *domain.Stock) error
	FindBySKU(ctx context.Context, sku string) (*domain.Stock, error)
	UpdateCatalog(ctx context.Context, stock *domain.Stock) error
}

var stockColumns = []string{
	"id",
	"sku",
	"COALESCE(descricao, '')",
	"COALESCE(estoque, 0)",
	"COALESCE(minimo, 0)",
	"COALESCE(cmv, 0)",
	"COALESCE(valor_liquido, 0)",
	"COALESCE(status, '')",
	"COALESCE(media_vendas, 0)",
	"COALESCE(total_vendas, 0)",
	"ultima_venda",
	"created_at",
	"updated_at",
}

type stockRepository struct {
	conn        *postgres.Connection
	salesTables []string
}

// NewStockRepository cria o repositório de estoque; salesTables são as tabelas de vendas
// consideradas no histórico de cada SKU
func NewStockRepository(conn *postgres.Connection, salesTables ...string) StockRepository {
	if len(salesTables) == 0 {
		salesTables = []string{SalesMLTable, SalesMagaluTable}
	}

	return &stockRepository{
		conn:        conn,
		salesTables: salesTables,
	}
}

func (r *stockRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

func (r *stockRepository) WithinRecord(ctx context.Context, fn func(tx RecordTx) error) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return fn(&stockTx{q: tx})
	})
}

func (r *stockRepository) ListAll(ctx context.Context) ([]*domain.Stock, error) {
	query, args, err := squirrel.
		Select(stockColumns...).
		From(stockTable).
		OrderBy("sku ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stocks := make([]*domain.Stock, 0)
	for rows.Next() {
		stock, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear estoque: %w", err)
		}
		stocks = append(stocks, stock)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stocks, nil
}

// FindBySKU devolve a posição de um SKU ou ErrNotFound
func (r *stockRepository) FindBySKU(ctx context.Context, sku string) (*domain.Stock, error) {
	query, args, err := squirrel.
		Select(stockColumns...).
		From(stockTable).
		Where(squirrel.Eq{"sku": sku}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	stock, err := scanStock(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar SKU %s: %w", sku, err)
	}

	return stock, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStock(row rowScanner) (*domain.Stock, error) {
	var (
		stock    domain.Stock
		lastSale sql.NullTime
	)

	err := row.Scan(
		&stock.ID,
		&stock.SKU,
		&stock.Description,
		&stock.Quantity,
		&stock.Minimum,
		&stock.Cost,
		&stock.NetValue,
		&stock.Status,
		&stock.AverageDailySales,
		&stock.TotalSales,
		&lastSale,
		&stock.CreatedAt,
		&stock.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastSale.Valid {
		stock.LastSale = &lastSale.Time
	}
	return &stock, nil
}

// SalesActivity conta as vendas de cada SKU em todas as tabelas de vendas:
// total histórico, vendas desde since e a data da última venda
func (r *stockRepository) SalesActivity(ctx context.Context, since time.Time) (map[string]domain.SalesActivity, error) {
	parts := make([]string, 0, len(r.salesTables))
	for _, table := range r.salesTables {
		parts = append(parts, fmt.Sprintf("SELECT sku, data FROM %s", table))
	}

	query, args, err := squirrel.
		Select("v.sku", "COUNT(*) AS total_vendas", "MAX(v.data) AS ultima_venda").
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE v.data >= ?) AS vendas_recentes", since)).
		From(fmt.Sprintf("(%s) v", strings.Join(parts, " UNION ALL "))).
		Where("v.sku IS NOT NULL").
		GroupBy("v.sku").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	activity := make(map[string]domain.SalesActivity)
	for rows.Next() {
		var (
			item     domain.SalesActivity
			lastSale sql.NullTime
		)

		if err := rows.Scan(&item.SKU, &item.TotalSales, &lastSale, &item.RecentSales); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas do SKU: %w", err)
		}

		if lastSale.Valid {
			item.LastSale = &lastSale.Time
		}
		activity[item.SKU] = item
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return activity, nil
}

// UpdateDerived grava status e métricas de vendas calculados para o SKU
func (r *stockRepository) UpdateDerived(ctx context.Context, stock *domain.Stock) error {
	query, args, err := squirrel.
		Update(stockTable).
		Set("status", stock.Status).
		Set("media_vendas", stock.AverageDailySales).
		Set("total_vendas", stock.TotalSales).
		Set("ultima_venda", stock.LastSale).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"sku": stock.SKU}).
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

// UpdateCatalog grava os campos cadastrais editados manualmente e o status recalculado
func (r *stockRepository) UpdateCatalog(ctx context.Context, stock *domain.Stock) error {
	query, args, err := squirrel.
		Update(stockTable).
		Set("descricao", stock.Description).
		Set("minimo", stock.Minimum).
		Set("cmv", stock.Cost).
		Set("status", stock.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"sku": stock.SKU}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

type stockTx struct {
	q postgres.Queryer
}

func (t *stockTx) Exists(ctx context.Context, key string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(stockTable).
		Where(squirrel.Eq{"sku": key}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var found int
	err = t.q.QueryRowContext(ctx, query, args...).Scan(&found)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao verificar SKU %s: %w", key, err)
	}

	return true, nil
}

func (t *stockTx) Insert(ctx context.Context, record domain.Record) error {
	stock, ok := record.(*domain.Stock)
	if !ok {
		return ErrUnexpectedRecord
	}

	query, args, err := squirrel.
		Insert(stockTable).
		Columns("sku", "descricao", "estoque", "minimo", "cmv", "valor_liquido", "status", "media_vendas", "total_vendas").
		Values(
			stock.SKU,
			stock.Description,
			stock.Quantity,
			stock.Minimum,
			stock.Cost,
			stock.NetValue,
			stock.Status,
			stock.AverageDailySales,
			stock.TotalSales,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := t.q.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

// Update grava a nova quantidade; os demais campos são cadastrais ou derivados
func (t *stockTx) Update(ctx context.Context, record domain.Record) error {
	stock, ok := record.(*domain.Stock)
	if !ok {
		return ErrUnexpectedRecord
	}

	query, args, err := squirrel.
		Update(stockTable).
		Set("estoque", stock.Quantity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"sku": stock.SKU}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := t.q.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}
