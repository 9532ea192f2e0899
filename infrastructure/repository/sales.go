package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/database/postgres"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
)

const (
	SalesMLTable     = "vendas_ml"
	SalesMagaluTable = "vendas_magalu"
)

type SalesRepository interface {
	RecordStore
	ListByPeriod(ctx context.Context, start, end time.Time, sku string) ([]*domain.Sale, error)
}

// salesTable descreve as colunas de uma tabela de vendas e como extrair os valores de uma venda
type salesTable struct {
	name    string
	source  domain.Source
	columns []string
	values  func(s *domain.Sale) []any
}

var mlSalesTable = salesTable{
	name:   SalesMLTable,
	source: domain.SourceML,
	columns: []string{
		"marketplace", "pedido", "data", "sku", "unidades", "status", "valor_comprado", "valor_vendido",
		"taxas", "frete", "descontos", "ctl", "receita_envio", "valor_liquido", "lucro", "markup",
		"margem_lucro", "envio", "numero_envio", "imposto",
	},
	values: func(s *domain.Sale) []any {
		return []any{
			s.Marketplace, s.OrderID, s.Date, s.SKU, s.Units, s.Status, s.PurchaseValue, s.SaleValue,
			s.Fees, s.Shipping, s.Discounts, s.CTL, s.ShippingRevenue, s.NetValue, s.Profit, s.Markup,
			s.Margin, s.ShipmentType, s.ShipmentNumber, s.Tax,
		}
	},
}

var magaluSalesTable = salesTable{
	name:   SalesMagaluTable,
	source: domain.SourceMagalu,
	columns: []string{
		"marketplace", "pedido", "data", "sku", "unidades", "valor_comprado", "valor_vendido", "imposto",
		"frete", "descontos", "valor_liquido", "lucro", "markup", "margem_lucro", "tipo_envio",
	},
	values: func(s *domain.Sale) []any {
		return []any{
			s.Marketplace, s.OrderID, s.Date, s.SKU, s.Units, s.PurchaseValue, s.SaleValue, s.Tax,
			s.Shipping, s.Discounts, s.NetValue, s.Profit, s.Markup, s.Margin, s.ShipmentType,
		}
	},
}

type salesRepository struct {
	conn  *postgres.Connection
	table salesTable
}

func NewMLSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{conn: conn, table: mlSalesTable}
}

func NewMagaluSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{conn: conn, table: magaluSalesTable}
}

func (r *salesRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

func (r *salesRepository) WithinRecord(ctx context.Context, fn func(tx RecordTx) error) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return fn(&salesTx{q: tx, table: r.table})
	})
}

func (r *salesRepository) ListByPeriod(ctx context.Context, start, end time.Time, sku string) ([]*domain.Sale, error) {
	builder := squirrel.
		Select(
			"pedido",
			"COALESCE(marketplace, '')",
			"data",
			"sku",
			"COALESCE(unidades, 0)",
			"COALESCE(valor_comprado, 0)",
			"COALESCE(valor_vendido, 0)",
			"COALESCE(imposto, 0)",
			"COALESCE(frete, 0)",
			"COALESCE(descontos, 0)",
			"COALESCE(valor_liquido, 0)",
			"COALESCE(lucro, 0)",
			"COALESCE(markup, 0)",
			"COALESCE(margem_lucro, 0)",
		).
		From(r.table.name).
		Where(squirrel.GtOrEq{"data": start}).
		Where(squirrel.Lt{"data": end}).
		OrderBy("data ASC", "pedido ASC").
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

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale := &domain.Sale{Source: r.table.source}
		err := rows.Scan(
			&sale.OrderID,
			&sale.Marketplace,
			&sale.Date,
			&sale.SKU,
			&sale.Units,
			&sale.PurchaseValue,
			&sale.SaleValue,
			&sale.Tax,
			&sale.Shipping,
			&sale.Discounts,
			&sale.NetValue,
			&sale.Profit,
			&sale.Markup,
			&sale.Margin,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

type salesTx struct {
	q     postgres.Queryer
	table salesTable
}

// Exists trava a linha do pedido até o fim da transação
func (t *salesTx) Exists(ctx context.Context, key string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(t.table.name).
		Where(squirrel.Eq{"pedido": key}).
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
		return false, fmt.Errorf("erro ao verificar pedido %s: %w", key, err)
	}

	return true, nil
}

func (t *salesTx) Insert(ctx context.Context, record domain.Record) error {
	sale, ok := record.(*domain.Sale)
	if !ok {
		return ErrUnexpectedRecord
	}

	query, args, err := squirrel.
		Insert(t.table.name).
		Columns(t.table.columns...).
		Values(t.table.values(sale)...).
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

// Update sobrescreve todos os campos da venda, exceto a chave
func (t *salesTx) Update(ctx context.Context, record domain.Record) error {
	sale, ok := record.(*domain.Sale)
	if !ok {
		return ErrUnexpectedRecord
	}

	values := t.table.values(sale)
	set := make(map[string]any, len(values))
	for i, column := range t.table.columns {
		if column == "pedido" {
			continue
		}
		set[column] = values[i]
	}
	set["updated_at"] = squirrel.Expr("NOW()")

	query, args, err := squirrel.
		Update(t.table.name).
		SetMap(set).
		Where(squirrel.Eq{"pedido": sale.OrderID}).
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

func wrapExecError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
