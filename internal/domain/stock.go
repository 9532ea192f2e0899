package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultStockMinimum = 30
	SalesWindowDays     = 30
)

// Stock é a posição de estoque de um SKU
type Stock struct {
	ID                int             `json:"id"`
	SKU               string          `json:"sku" validate:"required"`
	Description       string          `json:"description"`
	Quantity          int             `json:"quantity" validate:"gte=0"`
	Minimum           int             `json:"minimum" validate:"gte=0"`
	Cost              decimal.Decimal `json:"cost"`
	NetValue          decimal.Decimal `json:"net_value"`
	Status            string          `json:"status"`
	StatusLabel       string          `json:"status_label,omitempty"`
	AverageDailySales decimal.Decimal `json:"average_daily_sales"`
	TotalSales        int             `json:"total_sales"`
	LastSale          *time.Time      `json:"last_sale"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// NewStock cria a posição de um SKU visto pela primeira vez, com os valores padrão do cadastro
func NewStock(sku string, quantity int) *Stock {
	return &Stock{
		SKU:         sku,
		Description: fmt.Sprintf("Produto %s", sku),
		Quantity:    quantity,
		Minimum:     DefaultStockMinimum,
		Cost:        decimal.Zero,
		NetValue:    decimal.Zero,
	}
}

func (s *Stock) BusinessKey() string {
	return s.SKU
}

func (s *Stock) Validate() error {
	return validate.Struct(s)
}

// SalesActivity resume o histórico de vendas de um SKU em todas as fontes
type SalesActivity struct {
	SKU         string
	TotalSales  int
	RecentSales int
	LastSale    *time.Time
}

// AverageDailySales é a média diária de vendas dentro da janela de dias informada
func (a SalesActivity) AverageDailySales(windowDays int) decimal.Decimal {
	if windowDays <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(a.RecentSales)).Div(decimal.NewFromInt(int64(windowDays))).Round(2)
}
