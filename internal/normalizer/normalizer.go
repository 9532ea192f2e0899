package normalizer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const currencySymbol = "R$"

var (
	ErrInvalidValue = errors.New("valor inválido")
	ErrNoDateLayout = errors.New("nenhum formato de data configurado")

	hundred = decimal.NewFromInt(100)
)

// Diagnostic registra uma célula que não pôde ser convertida e recebeu o valor padrão
type Diagnostic struct {
	Source string
	Raw    string
	Kind   Kind
	Err    error
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: não foi possível converter %q para %s: %v", d.Source, d.Raw, d.Kind, d.Err)
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// Normalizer converte células de texto em valores tipados seguindo a convenção de uma fonte.
// A normalização nunca falha: em caso de erro devolve o padrão informado pelo chamador.
type Normalizer struct {
	source     string
	convention Convention
}

func New(source string, convention Convention) *Normalizer {
	return &Normalizer{
		source:     source,
		convention: convention,
	}
}

func (n *Normalizer) Source() string {
	return n.source
}

func (n *Normalizer) Convention() Convention {
	return n.convention
}

// Normalize converte raw para o tipo pedido, devolvendo def quando vazio ou inválido
func (n *Normalizer) Normalize(raw string, kind Kind, def Value) Value {
	value, _ := n.NormalizeWithDiagnostic(raw, kind, def)
	return value
}

// NormalizeWithDiagnostic funciona como Normalize, mas também devolve o diagnóstico da falha
func (n *Normalizer) NormalizeWithDiagnostic(raw string, kind Kind, def Value) (Value, *Diagnostic) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return def, nil
	}

	value, err := n.parse(trimmed, kind)
	if err != nil {
		diag := &Diagnostic{
			Source: n.source,
			Raw:    raw,
			Kind:   kind,
			Err:    err,
		}

		logrus.WithFields(logrus.Fields{
			"source": n.source,
			"raw":    raw,
			"kind":   kind.String(),
			"error":  err.Error(),
		}).Warn("Valor não pôde ser convertido, usando valor padrão")

		return def, diag
	}

	return value, nil
}

func (n *Normalizer) parse(raw string, kind Kind) (Value, error) {
	switch kind {
	case KindText:
		return Text(raw), nil
	case KindCurrency:
		return n.parseCurrency(raw)
	case KindPercentage:
		return n.parsePercentage(raw)
	case KindInteger:
		return n.parseInteger(raw)
	case KindDate:
		return n.parseDate(raw)
	default:
		return Value{}, fmt.Errorf("%w: tipo desconhecido %d", ErrInvalidValue, kind)
	}
}

func (n *Normalizer) parseCurrency(raw string) (Value, error) {
	cleaned := removeSpaces(strings.ReplaceAll(raw, currencySymbol, ""))

	// algumas colunas misturam moeda e percentual
	if strings.Contains(cleaned, "%") {
		return n.parsePercentage(cleaned)
	}

	numeric := n.convention.Numeric
	if numeric.ThousandsSeparator != "" {
		cleaned = strings.ReplaceAll(cleaned, numeric.ThousandsSeparator, "")
	}
	cleaned = toDotDecimal(cleaned, numeric.DecimalSeparator)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	if numeric.CurrencyPreScaledBy100 {
		amount = amount.Div(hundred)
	}

	return Currency(amount), nil
}

func (n *Normalizer) parsePercentage(raw string) (Value, error) {
	numeric := n.convention.Numeric
	cleaned := removeSpaces(strings.ReplaceAll(raw, "%", ""))
	if numeric.ThousandsSeparator != "" {
		cleaned = strings.ReplaceAll(cleaned, numeric.ThousandsSeparator, "")
	}
	cleaned = toDotDecimal(cleaned, numeric.DecimalSeparator)

	pct, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	if numeric.PercentAsFraction {
		pct = pct.Div(hundred)
	}

	return Percentage(pct), nil
}

func (n *Normalizer) parseInteger(raw string) (Value, error) {
	cleaned := removeSpaces(raw)
	if sep := n.convention.Numeric.ThousandsSeparator; sep != "" {
		cleaned = strings.ReplaceAll(cleaned, sep, "")
	}

	i, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	return Integer(i), nil
}

func (n *Normalizer) parseDate(raw string) (Value, error) {
	layouts := n.convention.Date.Layouts
	if len(layouts) == 0 {
		return Value{}, ErrNoDateLayout
	}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			lastErr = err
			continue
		}

		if offset := n.convention.Date.DayOffset; offset != 0 {
			t = t.AddDate(0, 0, offset)
		}
		return Date(t), nil
	}

	return Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, lastErr)
}

func removeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func toDotDecimal(s, decimalSeparator string) string {
	if decimalSeparator == "" || decimalSeparator == "." {
		return s
	}
	return strings.ReplaceAll(s, decimalSeparator, ".")
}
