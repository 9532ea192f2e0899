package mapper

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/normalizer"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/status"
)

const (
	FieldMarketplace     = "marketplace"
	FieldOrderID         = "pedido"
	FieldDate            = "data"
	FieldSKU             = "sku"
	FieldUnits           = "unidades"
	FieldStatus          = "status"
	FieldPurchaseValue   = "valor_comprado"
	FieldSaleValue       = "valor_vendido"
	FieldFees            = "taxas"
	FieldShipping        = "frete"
	FieldDiscounts       = "descontos"
	FieldCTL             = "ctl"
	FieldShippingRevenue = "receita_envio"
	FieldNetValue        = "valor_liquido"
	FieldProfit          = "lucro"
	FieldMarkup          = "markup"
	FieldMargin          = "margem_lucro"
	FieldShipmentType    = "envio"
	FieldShipmentNumber  = "numero_envio"
	FieldTax             = "imposto"
	FieldQuantity        = "estoque"
	FieldMonth           = "mes_ano"
	FieldSalesGoal       = "meta_vendas"
	FieldMarginGoal      = "meta_margem"

	MarketplaceML     = "Mercado Livre"
	MarketplaceMagalu = "Magalu"
)

func text(index int, field string) Column {
	return Column{Index: index, Field: field, Kind: normalizer.KindText, Default: normalizer.Text("")}
}

func money(index int, field string) Column {
	return Column{Index: index, Field: field, Kind: normalizer.KindCurrency, Default: normalizer.Currency(decimal.Zero)}
}

func percent(index int, field string) Column {
	return Column{Index: index, Field: field, Kind: normalizer.KindPercentage, Default: normalizer.Percentage(decimal.Zero)}
}

func integer(index int, field string) Column {
	return Column{Index: index, Field: field, Kind: normalizer.KindInteger, Default: normalizer.Integer(0)}
}

func date(index int, field string) Column {
	return Column{Index: index, Field: field, Kind: normalizer.KindDate, Default: normalizer.Missing(normalizer.KindDate)}
}

// MLSalesSchema é o layout da planilha de vendas do Mercado Livre (colunas A a T)
func MLSalesSchema() Schema {
	return Schema{
		Name:          string(domain.SourceML),
		KeyColumn:     1,
		RequiredWidth: 20,
		Columns: []Column{
			text(0, FieldMarketplace),
			text(1, FieldOrderID),
			date(2, FieldDate),
			text(3, FieldSKU),
			integer(4, FieldUnits),
			text(5, FieldStatus),
			money(6, FieldPurchaseValue),
			money(7, FieldSaleValue),
			money(8, FieldFees),
			money(9, FieldShipping),
			money(10, FieldDiscounts),
			money(11, FieldCTL),
			money(12, FieldShippingRevenue),
			money(13, FieldNetValue),
			money(14, FieldProfit),
			money(15, FieldMarkup),
			money(16, FieldMargin),
			text(17, FieldShipmentType),
			integer(18, FieldShipmentNumber),
			money(19, FieldTax),
		},
		Build: func(row Row) domain.Record {
			return &domain.Sale{
				Source:          domain.SourceML,
				Marketplace:     orDefault(row[FieldMarketplace].AsText(), MarketplaceML),
				OrderID:         row[FieldOrderID].AsText(),
				Date:            row[FieldDate].AsTime(),
				SKU:             row[FieldSKU].AsText(),
				Units:           row[FieldUnits].AsInt(),
				Status:          row[FieldStatus].AsText(),
				PurchaseValue:   row[FieldPurchaseValue].AsDecimal(),
				SaleValue:       row[FieldSaleValue].AsDecimal(),
				Fees:            row[FieldFees].AsDecimal(),
				Shipping:        row[FieldShipping].AsDecimal(),
				Discounts:       row[FieldDiscounts].AsDecimal(),
				CTL:             row[FieldCTL].AsDecimal(),
				ShippingRevenue: row[FieldShippingRevenue].AsDecimal(),
				NetValue:        row[FieldNetValue].AsDecimal(),
				Profit:          row[FieldProfit].AsDecimal(),
				Markup:          row[FieldMarkup].AsDecimal(),
				Margin:          row[FieldMargin].AsDecimal(),
				ShipmentType:    row[FieldShipmentType].AsText(),
				ShipmentNumber:  row[FieldShipmentNumber].AsInt(),
				Tax:             row[FieldTax].AsDecimal(),
			}
		},
	}
}

// MagaluSalesSchema é o layout da planilha de vendas da Magalu (colunas A a O)
func MagaluSalesSchema() Schema {
	return Schema{
		Name:          string(domain.SourceMagalu),
		KeyColumn:     1,
		RequiredWidth: 15,
		Columns: []Column{
			text(0, FieldMarketplace),
			text(1, FieldOrderID),
			date(2, FieldDate),
			text(3, FieldSKU),
			integer(4, FieldUnits),
			money(5, FieldPurchaseValue),
			money(6, FieldSaleValue),
			money(7, FieldTax),
			money(8, FieldShipping),
			money(9, FieldDiscounts),
			money(10, FieldNetValue),
			money(11, FieldProfit),
			percent(12, FieldMarkup),
			percent(13, FieldMargin),
			text(14, FieldShipmentType),
		},
		Build: func(row Row) domain.Record {
			return &domain.Sale{
				Source:        domain.SourceMagalu,
				Marketplace:   orDefault(row[FieldMarketplace].AsText(), MarketplaceMagalu),
				OrderID:       row[FieldOrderID].AsText(),
				Date:          row[FieldDate].AsTime(),
				SKU:           row[FieldSKU].AsText(),
				Units:         row[FieldUnits].AsInt(),
				PurchaseValue: row[FieldPurchaseValue].AsDecimal(),
				SaleValue:     row[FieldSaleValue].AsDecimal(),
				Tax:           row[FieldTax].AsDecimal(),
				Shipping:      row[FieldShipping].AsDecimal(),
				Discounts:     row[FieldDiscounts].AsDecimal(),
				NetValue:      row[FieldNetValue].AsDecimal(),
				Profit:        row[FieldProfit].AsDecimal(),
				Markup:        row[FieldMarkup].AsDecimal(),
				Margin:        row[FieldMargin].AsDecimal(),
				ShipmentType:  row[FieldShipmentType].AsText(),
			}
		},
	}
}

// StockSchema é o layout da aba de estoque (colunas A e B)
func StockSchema() Schema {
	return Schema{
		Name:          string(domain.SourceStock),
		KeyColumn:     0,
		RequiredWidth: 2,
		Columns: []Column{
			text(0, FieldSKU),
			integer(1, FieldQuantity),
		},
		Build: func(row Row) domain.Record {
			stock := domain.NewStock(row[FieldSKU].AsText(), int(row[FieldQuantity].AsInt()))
			stock.Status = status.ClassifyStock(stock.Quantity, stock.Minimum)
			return stock
		},
	}
}

// GoalsSchema é o layout da aba de metas: SKU, mês (MM/AAAA), meta de vendas e meta de margem
func GoalsSchema() Schema {
	return Schema{
		Name:          "metas",
		KeyColumn:     0,
		RequiredWidth: 3,
		Columns: []Column{
			text(0, FieldSKU),
			date(1, FieldMonth),
			money(2, FieldSalesGoal),
			percent(3, FieldMarginGoal),
		},
		Build: func(row Row) domain.Record {
			return &domain.Goal{
				SKU:        strings.TrimSpace(row[FieldSKU].AsText()),
				Month:      domain.MonthStart(row[FieldMonth].AsTime()),
				SalesGoal:  row[FieldSalesGoal].AsDecimal(),
				MarginGoal: row[FieldMarginGoal].AsDecimal(),
			}
		},
	}
}

// SchemaFor devolve o layout de uma fonte conhecida
func SchemaFor(source domain.Source) (Schema, bool) {
	switch source {
	case domain.SourceML:
		return MLSalesSchema(), true
	case domain.SourceMagalu:
		return MagaluSalesSchema(), true
	case domain.SourceStock:
		return StockSchema(), true
	default:
		return Schema{}, false
	}
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
