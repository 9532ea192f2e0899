package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa uma venda de marketplace, identificada pelo número do pedido
type Sale struct {
	Source          Source          `json:"source"`
	Marketplace     string          `json:"marketplace"`
	OrderID         string          `json:"order_id" validate:"required"`
	Date            time.Time       `json:"date" validate:"required"`
	SKU             string          `json:"sku" validate:"required"`
	Units           int64           `json:"units" validate:"gte=0"`
	Status          string          `json:"status"`
	PurchaseValue   decimal.Decimal `json:"purchase_value"`
	SaleValue       decimal.Decimal `json:"sale_value"`
	Fees            decimal.Decimal `json:"fees"`
	Shipping        decimal.Decimal `json:"shipping"`
	Discounts       decimal.Decimal `json:"discounts"`
	CTL             decimal.Decimal `json:"ctl"`
	ShippingRevenue decimal.Decimal `json:"shipping_revenue"`
	NetValue        decimal.Decimal `json:"net_value"`
	Profit          decimal.Decimal `json:"profit"`
	Markup          decimal.Decimal `json:"markup"`
	Margin          decimal.Decimal `json:"margin"`
	ShipmentType    string          `json:"shipment_type"`
	ShipmentNumber  int64           `json:"shipment_number"`
	Tax             decimal.Decimal `json:"tax"`
}

func (s *Sale) BusinessKey() string {
	return s.OrderID
}

func (s *Sale) Validate() error {
	return validate.Struct(s)
}
