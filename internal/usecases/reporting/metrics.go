package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/status"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/utils"
)

var ErrUnknownMarketplace = errors.New("marketplace desconhecido")

// WithMarketplaces registra o leitor de vendas de cada marketplace consultado por SalesMetrics
func (s *Service) WithMarketplaces(readers map[domain.Source]SalesReader) *Service {
	s.marketplaces = readers
	return s
}

// SalesMetrics soma as vendas do marketplace no mês de period e compara com as metas do mês
func (s *Service) SalesMetrics(ctx context.Context, source domain.Source, period time.Time) (*domain.SalesMetrics, error) {
	reader, ok := s.marketplaces[source]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMarketplace, source)
	}

	start := domain.MonthStart(period)
	end := start.AddDate(0, 1, 0)

	sales, err := reader.ListByPeriod(ctx, start, end, "")
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas de %s: %w", source, err)
	}

	goals, err := s.goalReader.ListByMonth(ctx, start, "")
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar metas do período: %w", err)
	}

	m := sumSales(sales)
	m.Source = source
	m.Period = start
	m.GeneratedAt = s.now()

	for _, goal := range goals {
		m.GoalValue = m.GoalValue.Add(goal.SalesGoal)
	}
	m.HasGoal = m.GoalValue.IsPositive()

	exact := utils.PercentOf(m.SaleValue, m.GoalValue)
	m.GoalProgress = exact.Round(2).InexactFloat64()
	m.Status = status.ClassifyGoal(exact.InexactFloat64(), m.HasGoal)
	m.StatusLabel = status.Label(m.Status)

	return m, nil
}

// sumSales totaliza as vendas; markup e margem médios ignoram valores não positivos
func sumSales(sales []*domain.Sale) *domain.SalesMetrics {
	m := &domain.SalesMetrics{
		SaleValue:     decimal.Zero,
		Fees:          decimal.Zero,
		Shipping:      decimal.Zero,
		Discounts:     decimal.Zero,
		Tax:           decimal.Zero,
		NetValue:      decimal.Zero,
		Profit:        decimal.Zero,
		AverageTicket: decimal.Zero,
		AverageMarkup: decimal.Zero,
		AverageMargin: decimal.Zero,
		GoalValue:     decimal.Zero,
	}

	var markups, margins []decimal.Decimal
	for _, sale := range sales {
		m.Orders++
		m.Units += sale.Units
		m.SaleValue = m.SaleValue.Add(sale.SaleValue)
		m.Fees = m.Fees.Add(sale.Fees)
		m.Shipping = m.Shipping.Add(sale.Shipping)
		m.Discounts = m.Discounts.Add(sale.Discounts)
		m.Tax = m.Tax.Add(sale.Tax)
		m.NetValue = m.NetValue.Add(sale.NetValue)
		m.Profit = m.Profit.Add(sale.Profit)

		if sale.Markup.IsPositive() {
			markups = append(markups, sale.Markup)
		}
		if sale.Margin.IsPositive() {
			margins = append(margins, sale.Margin)
		}
	}

	if m.Orders > 0 {
		m.AverageTicket = m.NetValue.Div(decimal.NewFromInt(int64(m.Orders))).Round(2)
	}
	m.AverageMarkup = mean(markups)
	m.AverageMargin = mean(margins)

	return m
}

func mean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(values[0], values[1:]...).Div(decimal.NewFromInt(int64(len(values)))).Round(2)
}
