package normalizer

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faceValueConvention() Convention {
	return Convention{
		Numeric: BrazilianNumeric,
		Date: DateConvention{
			Layouts: []string{"02/01/2006 15:04:05", "02/01/2006"},
		},
	}
}

func preScaledConvention() Convention {
	numeric := BrazilianNumeric
	numeric.CurrencyPreScaledBy100 = true

	return Convention{
		Numeric: numeric,
		Date: DateConvention{
			Layouts:   []string{"02/01/06 15:04:05"},
			DayOffset: 1,
		},
	}
}

func TestNormalizer_Currency(t *testing.T) {
	tests := []struct {
		name       string
		convention Convention
		raw        string
		wantKind   Kind
		want       string
	}{
		{
			name:       "Moeda com símbolo e milhar em valor de face",
			convention: faceValueConvention(),
			raw:        "R$ 1.234,56",
			wantKind:   KindCurrency,
			want:       "1234.56",
		},
		{
			name:       "Moeda pré-escalada por 100",
			convention: preScaledConvention(),
			raw:        "R$ 1.234,56",
			wantKind:   KindCurrency,
			want:       "12.3456",
		},
		{
			name:       "Espaço não separável após o símbolo",
			convention: faceValueConvention(),
			raw:        "R$\u00a0987,10",
			wantKind:   KindCurrency,
			want:       "987.1",
		},
		{
			name:       "Valor negativo",
			convention: faceValueConvention(),
			raw:        "-R$ 15,00",
			wantKind:   KindCurrency,
			want:       "-15",
		},
		{
			name:       "Percentual em coluna de moeda vira percentual",
			convention: preScaledConvention(),
			raw:        "12,5%",
			wantKind:   KindPercentage,
			want:       "12.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New("teste", tt.convention)

			got, diag := n.NormalizeWithDiagnostic(tt.raw, KindCurrency, Currency(decimal.Zero))

			assert.Nil(t, diag)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got.Decimal), "esperado %s, obtido %s", tt.want, got.Decimal)
		})
	}
}

func TestNormalizer_Percentage(t *testing.T) {
	whole := New("inteiro", faceValueConvention())
	got := whole.Normalize("12,5%", KindPercentage, Percentage(decimal.Zero))
	assert.Equal(t, KindPercentage, got.Kind)
	assert.Equal(t, "12.5", got.Decimal.String())

	got = whole.Normalize("1.234,5%", KindPercentage, Percentage(decimal.Zero))
	assert.Equal(t, "1234.5", got.Decimal.String())

	got = whole.Normalize("R$ 1.234,5%", KindCurrency, Currency(decimal.Zero))
	assert.Equal(t, KindPercentage, got.Kind)
	assert.Equal(t, "1234.5", got.Decimal.String())

	fraction := faceValueConvention()
	fraction.Numeric.PercentAsFraction = true
	frac := New("fracao", fraction)
	got = frac.Normalize("12,5%", KindPercentage, Percentage(decimal.Zero))
	assert.Equal(t, "0.125", got.Decimal.String())
}

func TestNormalizer_Integer(t *testing.T) {
	n := New("teste", faceValueConvention())

	assert.Equal(t, int64(1500), n.Normalize("1.500", KindInteger, Integer(0)).Int)
	assert.Equal(t, int64(7), n.Normalize(" 7 ", KindInteger, Integer(0)).Int)
	assert.Equal(t, int64(-1), n.Normalize("   ", KindInteger, Integer(-1)).Int)
}

func TestNormalizer_Date(t *testing.T) {
	t.Run("Aplica correção de um dia na fonte configurada", func(t *testing.T) {
		n := New("ml", preScaledConvention())

		got := n.Normalize("31/01/25 14:30:00", KindDate, Missing(KindDate))

		require.False(t, got.Missing)
		assert.Equal(t, time.Date(2025, 2, 1, 14, 30, 0, 0, time.UTC), got.Time)
	})

	t.Run("Aceita formato alternativo sem horário", func(t *testing.T) {
		n := New("magalu", faceValueConvention())

		got := n.Normalize("05/03/2025", KindDate, Missing(KindDate))

		assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), got.AsTime())
	})
}

func TestNormalizer_FailuresDegradeToDefault(t *testing.T) {
	n := New("teste", faceValueConvention())

	tests := []struct {
		name string
		raw  string
		kind Kind
		def  Value
	}{
		{name: "Moeda inválida", raw: "R$ abc", kind: KindCurrency, def: Currency(decimal.Zero)},
		{name: "Percentual inválido", raw: "x%", kind: KindPercentage, def: Percentage(decimal.Zero)},
		{name: "Inteiro com decimal", raw: "3,5", kind: KindInteger, def: Integer(0)},
		{name: "Data em formato inesperado", raw: "2025-01-31", kind: KindDate, def: Missing(KindDate)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diag := n.NormalizeWithDiagnostic(tt.raw, tt.kind, tt.def)

			assert.Equal(t, tt.def, got)
			require.NotNil(t, diag)
			assert.Equal(t, tt.raw, diag.Raw)
			assert.Equal(t, tt.kind, diag.Kind)
			assert.True(t, errors.Is(diag, ErrInvalidValue))
		})
	}
}

func TestNormalizer_EmptyInputIsNotADiagnostic(t *testing.T) {
	n := New("teste", faceValueConvention())

	for _, kind := range []Kind{KindText, KindCurrency, KindPercentage, KindInteger, KindDate} {
		got, diag := n.NormalizeWithDiagnostic(" \t", kind, Missing(kind))
		assert.Nil(t, diag)
		assert.True(t, got.Missing)
	}
}

func TestValue_Accessors(t *testing.T) {
	assert.Equal(t, "10", Integer(10).AsDecimal().String())
	assert.Equal(t, int64(12), Currency(decimal.RequireFromString("12.99")).AsInt())
	assert.Equal(t, "", Missing(KindText).AsText())
	assert.True(t, Missing(KindDate).AsTime().IsZero())
	assert.True(t, Missing(KindCurrency).AsDecimal().IsZero())
}
