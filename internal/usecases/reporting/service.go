package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
)

// SalesReader lê as vendas gravadas de uma fonte; o intervalo é [start, end)
type SalesReader interface {
	ListByPeriod(ctx context.Context, start, end time.Time, sku string) ([]*domain.Sale, error)
}

type GoalReader interface {
	ListByMonth(ctx context.Context, month time.Time, sku string) ([]*domain.Goal, error)
}

// ReportSink recebe o relatório diário pronto (geração de PDF, envio etc.)
type ReportSink interface {
	Deliver(ctx context.Context, report *domain.DailyReport) error
}

type Reporter interface {
	Aggregate(ctx context.Context, period time.Time, sku string) (map[string]*domain.AggregateMetric, error)
	MonthlyReport(ctx context.Context, period time.Time, sku string) (*domain.MonthlyReport, error)
	DailyReport(ctx context.Context, day time.Time) (*domain.DailyReport, error)
	SendDailyReport(ctx context.Context, day time.Time) error
	SalesMetrics(ctx context.Context, source domain.Source, period time.Time) (*domain.SalesMetrics, error)
}

type Service struct {
	salesReader SalesReader
	goalReader  GoalReader
	sink        ReportSink
	now         func() time.Time

	marketplaces map[domain.Source]SalesReader
}

func NewService(salesReader SalesReader, goalReader GoalReader, sink ReportSink) *Service {
	if sink == nil {
		sink = LogSink{}
	}

	return &Service{
		salesReader: salesReader,
		goalReader:  goalReader,
		sink:        sink,
		now:         time.Now,
	}
}

// Aggregate calcula as métricas do mês de period para todos os SKUs ou só para sku
func (s *Service) Aggregate(ctx context.Context, period time.Time, sku string) (map[string]*domain.AggregateMetric, error) {
	start := domain.MonthStart(period)
	end := start.AddDate(0, 1, 0)

	sales, err := s.salesReader.ListByPeriod(ctx, start, end, sku)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas do período: %w", err)
	}

	goals, err := s.goalReader.ListByMonth(ctx, start, sku)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar metas do período: %w", err)
	}

	return Aggregate(sales, goals), nil
}

func (s *Service) MonthlyReport(ctx context.Context, period time.Time, sku string) (*domain.MonthlyReport, error) {
	metrics, err := s.Aggregate(ctx, period, sku)
	if err != nil {
		return nil, err
	}

	return &domain.MonthlyReport{
		Period:      domain.MonthStart(period),
		Items:       sortByProgress(metrics),
		GeneratedAt: s.now(),
	}, nil
}

// DailyReport compara as vendas do dia com as do dia anterior, por SKU
func (s *Service) DailyReport(ctx context.Context, day time.Time) (*domain.DailyReport, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	previousStart := dayStart.AddDate(0, 0, -1)
	dayEnd := dayStart.AddDate(0, 0, 1)

	current, err := s.salesReader.ListByPeriod(ctx, dayStart, dayEnd, "")
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas do dia: %w", err)
	}

	previous, err := s.salesReader.ListByPeriod(ctx, previousStart, dayStart, "")
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas do dia anterior: %w", err)
	}

	monthStart := domain.MonthStart(dayStart)
	monthSales, err := s.salesReader.ListByPeriod(ctx, monthStart, dayEnd, "")
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas do mês: %w", err)
	}

	goals, err := s.goalReader.ListByMonth(ctx, monthStart, "")
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar metas do mês: %w", err)
	}
	monthly := Aggregate(monthSales, goals)

	currentBySKU := summarize(current)
	previousBySKU := summarize(previous)

	report := &domain.DailyReport{
		Date:                 dayStart,
		Totals:               domain.DaySummary{Value: decimal.Zero, Profit: decimal.Zero},
		PreviousTotals:       domain.DaySummary{Value: decimal.Zero, Profit: decimal.Zero},
		MonthlyAverageMargin: meanMargin(monthSales),
		Items:                []*domain.DailySKUComparison{},
		GeneratedAt:          s.now(),
	}

	for _, sale := range current {
		addToSummary(&report.Totals, sale)
	}
	for _, sale := range previous {
		addToSummary(&report.PreviousTotals, sale)
	}

	for sku, cur := range currentBySKU {
		prev := domain.DaySummary{Value: decimal.Zero, Profit: decimal.Zero}
		if p, ok := previousBySKU[sku]; ok {
			prev = *p
		}

		item := &domain.DailySKUComparison{
			SKU:             sku,
			Current:         *cur,
			Previous:        prev,
			ValueVariation:  variation(cur.Value, prev.Value),
			UnitsVariation:  variation(decimal.NewFromInt(cur.Units), decimal.NewFromInt(prev.Units)),
			ProfitVariation: variation(cur.Profit, prev.Profit),
		}
		if m, ok := monthly[sku]; ok {
			item.MonthlyStatus = m.Status
		}

		report.Items = append(report.Items, item)
	}

	sort.Slice(report.Items, func(i, j int) bool {
		if !report.Items[i].Current.Value.Equal(report.Items[j].Current.Value) {
			return report.Items[i].Current.Value.GreaterThan(report.Items[j].Current.Value)
		}
		return report.Items[i].SKU < report.Items[j].SKU
	})

	return report, nil
}

// SendDailyReport gera o relatório do dia e entrega ao sink configurado
func (s *Service) SendDailyReport(ctx context.Context, day time.Time) error {
	report, err := s.DailyReport(ctx, day)
	if err != nil {
		return err
	}

	if err := s.sink.Deliver(ctx, report); err != nil {
		return fmt.Errorf("erro ao entregar relatório diário: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"date":  report.Date.Format(time.DateOnly),
		"items": len(report.Items),
	}).Info("Relatório diário entregue")

	return nil
}
