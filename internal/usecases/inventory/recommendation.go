package inventory

import (
	"math"
	"sort"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/shopspring/decimal"
)

const DefaultBufferDays = 14

var priorityOrder = map[domain.OrderPriority]int{
	domain.PriorityUrgent: 0,
	domain.PriorityMedium: 1,
	domain.PriorityLow:    2,
}

// Recommend sugere a compra necessária para cobrir bufferDays de consumo.
// Urgentes primeiro; a ordem original é mantida dentro da mesma prioridade.
func (c *Classifier) Recommend(items []domain.InventoryItem, bufferDays int) []domain.OrderRecommendation {
	if bufferDays <= 0 {
		bufferDays = DefaultBufferDays
	}

	recommendations := make([]domain.OrderRecommendation, 0, len(items))
	for _, item := range items {
		daysUntilStockout := domain.DaysOfSupplyDisplayCap
		if ratio, ok := supply(item); ok {
			daysUntilStockout = int(min(ratio.wholeDays(), domain.DaysOfSupplyDisplayCap))
		}

		recommendations = append(recommendations, domain.OrderRecommendation{
			Product:           item.Product,
			ProductKey:        item.ProductKey,
			CurrentStock:      math.Round(item.OnHand*10) / 10,
			AvgDailyUse:       item.AvgDailyUse,
			DaysUntilStockout: daysUntilStockout,
			SuggestedOrder:    suggestedOrder(item, bufferDays),
			Priority:          c.priority(daysUntilStockout, item.Status),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return priorityOrder[recommendations[i].Priority] < priorityOrder[recommendations[j].Priority]
	})

	return recommendations
}

// suggestedOrder = consumo médio × bufferDays − estoque, arredondado e nunca negativo
func suggestedOrder(item domain.InventoryItem, bufferDays int) float64 {
	need := decimal.NewFromFloat(item.AvgDailyUse).Mul(decimal.NewFromInt(int64(bufferDays)))
	if item.UsageDays > 0 && item.DatedUse > 0 {
		need = decimal.NewFromFloat(item.DatedUse).
			Mul(decimal.NewFromInt(int64(bufferDays))).
			Div(decimal.NewFromInt(int64(item.UsageDays)))
	}
	order := need.Sub(decimal.NewFromFloat(item.OnHand)).Round(0)
	if order.IsNegative() {
		return 0
	}
	return order.InexactFloat64()
}

func (c *Classifier) priority(daysUntilStockout int, status domain.StockStatus) domain.OrderPriority {
	days := float64(daysUntilStockout)
	switch {
	case days < c.thresholds.CriticalDays || status == domain.StockCritical:
		return domain.PriorityUrgent
	case days < c.thresholds.LowDays || status == domain.StockLow:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}
