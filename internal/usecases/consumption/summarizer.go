// Package consumption soma o consumo por categoria para os gráficos de bebidas e cozinha.
package consumption

import (
	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
	"github.com/shopspring/decimal"
)

// Summarize retorna uma linha por categoria, na ordem das definições, incluindo categorias zeradas
func Summarize(records []domain.UsageRecord, categories []domain.CategoryDefinition) []domain.ConsumptionSummary {
	summaries := make([]domain.ConsumptionSummary, 0, len(categories))

	for _, category := range categories {
		var total utils.Accumulator
		if category.Quantity != nil {
			for _, record := range records {
				total.Add(category.Quantity(record))
			}
		}

		summary := domain.ConsumptionSummary{
			Key:            category.Key,
			Label:          category.Label,
			Total:          total.Float(),
			Color:          category.Color,
			IgnoredRecords: total.Ignored(),
		}
		if unitCost, ok := utils.SanitizeAmount(category.UnitCost); ok && unitCost > 0 {
			summary.TotalCost = total.Decimal().Mul(decimal.NewFromFloat(unitCost)).InexactFloat64()
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// Field cria o acessor padrão que lê a quantidade de um item pela chave
func Field(key string) func(domain.UsageRecord) float64 {
	return func(record domain.UsageRecord) float64 {
		return record.Quantity(key)
	}
}
