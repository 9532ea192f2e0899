package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal é a meta mensal de um SKU
type Goal struct {
	SKU        string          `json:"sku" validate:"required"`
	Month      time.Time       `json:"month" validate:"required"`
	SalesGoal  decimal.Decimal `json:"sales_goal"`
	MarginGoal decimal.Decimal `json:"margin_goal"`
}

// BusinessKey identifica a meta pelo SKU e mês
func (g *Goal) BusinessKey() string {
	return g.SKU + "|" + g.Month.Format("2006-01")
}

func (g *Goal) Validate() error {
	return validate.Struct(g)
}

// MonthStart devolve o primeiro dia do mês da data informada
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
