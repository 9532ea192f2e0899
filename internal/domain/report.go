package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregateMetric é o consolidado mensal de um SKU comparado à sua meta.
// Sempre recalculado a partir das vendas gravadas.
type AggregateMetric struct {
	SKU           string          `json:"sku"`
	SalesCount    int             `json:"sales_count"`
	TotalUnits    int64           `json:"total_units"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	AverageMargin decimal.Decimal `json:"average_margin"`
	HasSales      bool            `json:"has_sales"`
	GoalValue     decimal.Decimal `json:"goal_value"`
	MarginGoal    decimal.Decimal `json:"margin_goal"`
	HasGoal       bool            `json:"has_goal"`
	ProgressRatio float64         `json:"progress_ratio"`
	Status        string          `json:"status"`
	StatusLabel   string          `json:"status_label"`
}

type MonthlyReport struct {
	Period      time.Time          `json:"period"`
	Items       []*AggregateMetric `json:"items"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// DaySummary soma as vendas de um dia
type DaySummary struct {
	SalesCount int             `json:"sales_count"`
	Units      int64           `json:"units"`
	Value      decimal.Decimal `json:"value"`
	Profit     decimal.Decimal `json:"profit"`
}

type DailySKUComparison struct {
	SKU             string     `json:"sku"`
	Current         DaySummary `json:"current"`
	Previous        DaySummary `json:"previous"`
	ValueVariation  float64    `json:"value_variation"`
	UnitsVariation  float64    `json:"units_variation"`
	ProfitVariation float64    `json:"profit_variation"`
	MonthlyStatus   string     `json:"monthly_status"`
}

// DailyReport compara as vendas de um dia com as do dia anterior
type DailyReport struct {
	Date                 time.Time             `json:"date"`
	Totals               DaySummary            `json:"totals"`
	PreviousTotals       DaySummary            `json:"previous_totals"`
	MonthlyAverageMargin decimal.Decimal       `json:"monthly_average_margin"`
	Items                []*DailySKUComparison `json:"items"`
	GeneratedAt          time.Time             `json:"generated_at"`
}

// SalesMetrics resume as vendas de um marketplace no mês, comparadas à soma das metas
type SalesMetrics struct {
	Source        Source          `json:"source"`
	Period        time.Time       `json:"period"`
	Orders        int             `json:"orders"`
	Units         int64           `json:"units"`
	SaleValue     decimal.Decimal `json:"sale_value"`
	Fees          decimal.Decimal `json:"fees"`
	Shipping      decimal.Decimal `json:"shipping"`
	Discounts     decimal.Decimal `json:"discounts"`
	Tax           decimal.Decimal `json:"tax"`
	NetValue      decimal.Decimal `json:"net_value"`
	Profit        decimal.Decimal `json:"profit"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	AverageMarkup decimal.Decimal `json:"average_markup"`
	AverageMargin decimal.Decimal `json:"average_margin"`
	GoalValue     decimal.Decimal `json:"goal_value"`
	HasGoal       bool            `json:"has_goal"`
	GoalProgress  float64         `json:"goal_progress"`
	Status        string          `json:"status"`
	StatusLabel   string          `json:"status_label"`
	GeneratedAt   time.Time       `json:"generated_at"`
}
