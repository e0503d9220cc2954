package kpi

import (
	"math"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
	"github.com/shopspring/decimal"
)

// NewTrendPercent é o valor saturado usado quando o período anterior é zero
const NewTrendPercent = 100.0

// CalculateTrend calcula (atual - anterior) / |anterior| * 100.
// Anterior zero nunca gera infinito: 0 se o atual também for zero, senão ±100 marcado como New.
func CalculateTrend(current, previous float64, polarity domain.Polarity) domain.Trend {
	current = finite(current)
	previous = finite(previous)

	var trend domain.Trend
	switch {
	case previous == 0 && current == 0:
		trend.Percent = 0
	case previous == 0:
		trend.Percent = math.Copysign(NewTrendPercent, current)
		trend.New = true
	default:
		delta := decimal.NewFromFloat(current).Sub(decimal.NewFromFloat(previous)).Mul(decimal.NewFromInt(100))
		trend.Percent = utils.Ratio(delta, decimal.NewFromFloat(previous).Abs())
	}

	if polarity == domain.LowerIsBetter {
		trend.Positive = trend.Percent <= 0
	} else {
		trend.Positive = trend.Percent >= 0
	}

	return trend
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
