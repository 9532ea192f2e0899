package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
)

// LogSink apenas registra o resumo do relatório no log
type LogSink struct{}

func (LogSink) Deliver(ctx context.Context, report *domain.DailyReport) error {
	logrus.WithFields(logrus.Fields{
		"date":           report.Date.Format(time.DateOnly),
		"sales":          report.Totals.SalesCount,
		"units":          report.Totals.Units,
		"value":          report.Totals.Value.StringFixed(2),
		"profit":         report.Totals.Profit.StringFixed(2),
		"previous_value": report.PreviousTotals.Value.StringFixed(2),
		"average_margin": report.MonthlyAverageMargin.StringFixed(2),
		"skus":           len(report.Items),
	}).Info("Resumo do relatório diário")

	return nil
}
