package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PercentOf devolve part/whole*100 sem arredondamento; zero quando whole não é positivo
func PercentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole)
}

// Percent devolve PercentOf arredondado a duas casas, para exibição
func Percent(part, whole decimal.Decimal) float64 {
	return PercentOf(part, whole).Round(2).InexactFloat64()
}

// PercentChange devolve a variação percentual de previous para current; 0 sem base positiva
func PercentChange(current, previous decimal.Decimal) float64 {
	return Percent(current.Sub(previous), previous)
}
