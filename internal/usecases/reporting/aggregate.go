package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/status"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/utils"
)

// Aggregate consolida as vendas por SKU e cruza com as metas do mês.
// SKUs com meta e sem vendas (e vice-versa) também aparecem no resultado.
func Aggregate(sales []*domain.Sale, goals []*domain.Goal) map[string]*domain.AggregateMetric {
	metrics := make(map[string]*domain.AggregateMetric)
	marginSums := make(map[string]decimal.Decimal)

	metricFor := func(sku string) *domain.AggregateMetric {
		m, ok := metrics[sku]
		if !ok {
			m = &domain.AggregateMetric{
				SKU:           sku,
				TotalValue:    decimal.Zero,
				TotalProfit:   decimal.Zero,
				AverageMargin: decimal.Zero,
				GoalValue:     decimal.Zero,
				MarginGoal:    decimal.Zero,
			}
			metrics[sku] = m
		}
		return m
	}

	for _, sale := range sales {
		m := metricFor(sale.SKU)
		m.HasSales = true
		m.SalesCount++
		m.TotalUnits += sale.Units
		m.TotalValue = m.TotalValue.Add(sale.SaleValue)
		m.TotalProfit = m.TotalProfit.Add(sale.Profit)
		marginSums[sale.SKU] = marginSums[sale.SKU].Add(sale.Margin)
	}

	for sku, sum := range marginSums {
		m := metrics[sku]
		m.AverageMargin = sum.Div(decimal.NewFromInt(int64(m.SalesCount))).Round(2)
	}

	for _, goal := range goals {
		m := metricFor(goal.SKU)
		m.GoalValue = goal.SalesGoal
		m.MarginGoal = goal.MarginGoal
		m.HasGoal = goal.SalesGoal.IsPositive()
	}

	for _, m := range metrics {
		exact := utils.PercentOf(m.TotalValue, m.GoalValue)
		m.ProgressRatio = exact.Round(2).InexactFloat64()
		// a faixa usa o valor exato; 99,996% ainda não bateu a meta
		m.Status = status.ClassifyGoal(exact.InexactFloat64(), m.HasGoal)
		m.StatusLabel = status.Label(m.Status)
	}

	return metrics
}

// variation devolve a variação percentual entre dois valores, ou 0 quando não há base
func variation(current, previous decimal.Decimal) float64 {
	return utils.PercentChange(current, previous)
}

// sortByProgress ordena do maior para o menor progresso, desempatando pelo SKU
func sortByProgress(metrics map[string]*domain.AggregateMetric) []*domain.AggregateMetric {
	items := make([]*domain.AggregateMetric, 0, len(metrics))
	for _, m := range metrics {
		items = append(items, m)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].ProgressRatio != items[j].ProgressRatio {
			return items[i].ProgressRatio > items[j].ProgressRatio
		}
		return items[i].SKU < items[j].SKU
	})

	return items
}

func summarize(sales []*domain.Sale) map[string]*domain.DaySummary {
	summaries := make(map[string]*domain.DaySummary)
	for _, sale := range sales {
		s, ok := summaries[sale.SKU]
		if !ok {
			s = &domain.DaySummary{Value: decimal.Zero, Profit: decimal.Zero}
			summaries[sale.SKU] = s
		}
		addToSummary(s, sale)
	}
	return summaries
}

func addToSummary(s *domain.DaySummary, sale *domain.Sale) {
	s.SalesCount++
	s.Units += sale.Units
	s.Value = s.Value.Add(sale.SaleValue)
	s.Profit = s.Profit.Add(sale.Profit)
}

func meanMargin(sales []*domain.Sale) decimal.Decimal {
	if len(sales) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, sale := range sales {
		sum = sum.Add(sale.Margin)
	}
	return sum.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
}
