package domain

// CategoryDefinition é a configuração de uma categoria do gráfico de consumo
type CategoryDefinition struct {
	Key      string
	Label    string
	Color    string
	UnitCost float64
	Quantity func(UsageRecord) float64
}

type ConsumptionSummary struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	Total          float64 `json:"total"`
	TotalCost      float64 `json:"total_cost"`
	Color          string  `json:"color"`
	IgnoredRecords int     `json:"ignored_records"` // quantidades negativas ou inválidas somadas como zero
}
