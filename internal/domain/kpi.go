package domain

// Polarity define se um aumento da métrica é bom ou ruim
type Polarity int

const (
	HigherIsBetter Polarity = iota // receitas, pedidos
	LowerIsBetter                  // despesas
)

// Trend é a variação percentual contra o período anterior de mesmo tamanho
type Trend struct {
	Percent  float64 `json:"percent"`
	Positive bool    `json:"positive"`
	New      bool    `json:"new"` // período anterior zerado e atual com valor
}

type KPISet struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalExpenses  float64 `json:"total_expenses"`
	TotalNet       float64 `json:"total_net"`
	TotalVAT       float64 `json:"total_vat"`
	ProfitLoss     float64 `json:"profit_loss"`
	ProfitMargin   float64 `json:"profit_margin"`
	OrderCount     int     `json:"order_count"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	RevenueTrend   Trend   `json:"revenue_trend"`
	ExpenseTrend   Trend   `json:"expense_trend"`
	OrderTrend     Trend   `json:"order_trend"`
	NoBaseline     bool    `json:"no_baseline"`
	IgnoredRecords int     `json:"ignored_records"`
}

// MonthlyPoint é um ponto do gráfico mensal de receita x despesa (Month no formato yyyy-mm)
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// WeeklyPoint é a receita de uma semana iniciada no domingo WeekStart (yyyy-mm-dd)
type WeeklyPoint struct {
	WeekStart string  `json:"week_start"`
	Revenue   float64 `json:"revenue"`
}
