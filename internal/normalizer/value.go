package normalizer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifica o tipo de valor esperado em uma célula
type Kind int

const (
	KindText Kind = iota
	KindCurrency
	KindPercentage
	KindInteger
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCurrency:
		return "currency"
	case KindPercentage:
		return "percentage"
	case KindInteger:
		return "integer"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Value é o resultado tipado da normalização de uma célula.
// Apenas o campo correspondente a Kind é significativo; Missing indica ausência de valor.
type Value struct {
	Kind    Kind
	Missing bool
	Decimal decimal.Decimal
	Int     int64
	Text    string
	Time    time.Time
}

func Currency(d decimal.Decimal) Value {
	return Value{Kind: KindCurrency, Decimal: d}
}

func Percentage(d decimal.Decimal) Value {
	return Value{Kind: KindPercentage, Decimal: d}
}

func Integer(i int64) Value {
	return Value{Kind: KindInteger, Int: i}
}

func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

func Date(t time.Time) Value {
	return Value{Kind: KindDate, Time: t}
}

// Missing representa a ausência de valor para o tipo informado
func Missing(kind Kind) Value {
	return Value{Kind: kind, Missing: true}
}

// AsDecimal retorna o valor numérico da célula, qualquer que seja o tipo numérico
func (v Value) AsDecimal() decimal.Decimal {
	if v.Missing {
		return decimal.Zero
	}

	switch v.Kind {
	case KindCurrency, KindPercentage:
		return v.Decimal
	case KindInteger:
		return decimal.NewFromInt(v.Int)
	default:
		return decimal.Zero
	}
}

func (v Value) AsInt() int64 {
	if v.Missing {
		return 0
	}

	switch v.Kind {
	case KindInteger:
		return v.Int
	case KindCurrency, KindPercentage:
		return v.Decimal.IntPart()
	default:
		return 0
	}
}

func (v Value) AsText() string {
	if v.Missing || v.Kind != KindText {
		return ""
	}
	return v.Text
}

func (v Value) AsTime() time.Time {
	if v.Missing || v.Kind != KindDate {
		return time.Time{}
	}
	return v.Time
}
