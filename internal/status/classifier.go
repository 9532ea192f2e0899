package status

import "math"

// Comparison define como a razão é comparada ao corte de um limite
type Comparison int

const (
	AtLeast Comparison = iota // ratio >= cutoff
	Below                     // ratio < cutoff
	AtMost                    // ratio <= cutoff
	EqualTo                   // ratio == cutoff
)

func (c Comparison) matches(ratio, cutoff float64) bool {
	switch c {
	case AtLeast:
		return ratio >= cutoff
	case Below:
		return ratio < cutoff
	case AtMost:
		return ratio <= cutoff
	case EqualTo:
		return ratio == cutoff
	default:
		return false
	}
}

// Threshold associa um corte a uma faixa
type Threshold struct {
	Cutoff float64
	Op     Comparison
	Tier   string
}

// Table é uma lista ordenada de limites avaliada de cima para baixo; o primeiro que casar vence.
// Order lista as faixas da pior para a melhor e define o índice usado em Rank.
type Table struct {
	Name       string
	Thresholds []Threshold
	Fallback   string
	Order      []string
}

// Classify devolve a faixa da primeira regra satisfeita ou o Fallback
func (t Table) Classify(ratio float64) string {
	if math.IsNaN(ratio) {
		return t.Fallback
	}

	for _, th := range t.Thresholds {
		if th.Op.matches(ratio, th.Cutoff) {
			return th.Tier
		}
	}
	return t.Fallback
}

// Rank devolve a posição da faixa em Order, ou -1 quando desconhecida
func (t Table) Rank(tier string) int {
	for i, name := range t.Order {
		if name == tier {
			return i
		}
	}
	return -1
}
