package status

import "math"

const (
	GoalMet       = "met"
	GoalReachable = "reachable"
	GoalAttention = "attention"
	GoalAtRisk    = "at-risk"
	GoalUndefined = "undefined"

	StockOut         = "out-of-stock"
	StockReplenish   = "replenish"
	StockNegotiating = "negotiating"
	StockInStock     = "in-stock"
	StockOverstock   = "overstock"
)

// GoalProgress classifica o progresso percentual em relação à meta do mês
var GoalProgress = Table{
	Name: "goal-progress",
	Thresholds: []Threshold{
		{Cutoff: 100, Op: AtLeast, Tier: GoalMet},
		{Cutoff: 60, Op: AtLeast, Tier: GoalReachable},
		{Cutoff: 40, Op: AtLeast, Tier: GoalAttention},
	},
	Fallback: GoalAtRisk,
	Order:    []string{GoalAtRisk, GoalAttention, GoalReachable, GoalMet},
}

// StockHealth classifica a razão estoque/mínimo (não é percentual)
var StockHealth = Table{
	Name: "stock-health",
	Thresholds: []Threshold{
		{Cutoff: 0, Op: AtMost, Tier: StockOut},
		{Cutoff: 1, Op: Below, Tier: StockReplenish},
		{Cutoff: 1.2, Op: Below, Tier: StockNegotiating},
		{Cutoff: 1.5, Op: AtMost, Tier: StockInStock},
	},
	Fallback: StockOverstock,
	Order:    []string{StockOut, StockReplenish, StockNegotiating, StockInStock, StockOverstock},
}

// ClassifyGoal devolve "undefined" quando não há meta positiva
func ClassifyGoal(progressRatio float64, hasGoal bool) string {
	if !hasGoal {
		return GoalUndefined
	}
	return GoalProgress.Classify(progressRatio)
}

// StockRatio calcula quantidade/mínimo; mínimo zerado com estoque positivo é excesso
func StockRatio(quantity, minimum int) float64 {
	if quantity <= 0 {
		return 0
	}
	if minimum <= 0 {
		return math.Inf(1)
	}
	return float64(quantity) / float64(minimum)
}

func ClassifyStock(quantity, minimum int) string {
	return StockHealth.Classify(StockRatio(quantity, minimum))
}

var labels = map[string]string{
	GoalMet:          "Meta atingida",
	GoalReachable:    "Meta alcançável",
	GoalAttention:    "Atenção",
	GoalAtRisk:       "Meta em risco",
	GoalUndefined:    "Sem meta",
	StockOut:         "Sem Estoque",
	StockReplenish:   "Em reposição",
	StockNegotiating: "Em negociação",
	StockInStock:     "Em estoque",
	StockOverstock:   "Estoque alto",
}

// Label devolve o rótulo exibido nos relatórios
func Label(tier string) string {
	if label, ok := labels[tier]; ok {
		return label
	}
	return tier
}
