package domain

import "strings"

type StockStatus string

const (
	StockHealthy  StockStatus = "healthy"
	StockLow      StockStatus = "low"
	StockCritical StockStatus = "critical"
)

const (
	// DaysOfSupplyDisplayCap é o maior valor exibido; acima disso a tela mostra "999+"
	DaysOfSupplyDisplayCap = 999

	// UnboundedDaysOfSupply representa estoque sem consumo registrado
	UnboundedDaysOfSupply = DaysOfSupplyDisplayCap + 1
)

// StockThresholds em dias de estoque. Critical deve ser <= Low.
type StockThresholds struct {
	CriticalDays float64 `json:"critical_days"`
	LowDays      float64 `json:"low_days"`
}

// InventoryItem: OnHand é o saldo acumulado até o fim do período; Purchased, Used e a
// média diária são do período.
type InventoryItem struct {
	Product      string      `json:"product"`
	ProductKey   string      `json:"product_key"`
	OnHand       float64     `json:"on_hand"`
	Purchased    float64     `json:"purchased"`
	Used         float64     `json:"used"`
	AvgDailyUse  float64     `json:"avg_daily_use"`
	UsageDays    int         `json:"usage_days"` // dias distintos com consumo registrado
	DatedUse     float64     `json:"dated_use"`  // consumo desses dias; DatedUse / UsageDays = AvgDailyUse sem arredondar
	DaysOfSupply float64     `json:"days_of_supply"`
	Unbounded    bool        `json:"unbounded"`
	Status       StockStatus `json:"status"`
}

// ProductDefinition descreve como identificar compras e consumo de um produto de estoque
type ProductDefinition struct {
	Key      string   // chave em UsageRecord.Quantities
	Label    string   // nome exibido
	Keywords []string // termos buscados na categoria/descrição da despesa
	Unit     string   // unidade de compra aceita (ex: kg)
}

// Describes indica se a categoria ou a descrição da despesa cita o produto, em qualquer unidade
func (p ProductDefinition) Describes(expense ExpenseRecord) bool {
	text := strings.ToLower(expense.Category + " " + expense.Description)
	for _, keyword := range p.Keywords {
		if keyword != "" && strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

type OrderPriority string

const (
	PriorityUrgent OrderPriority = "urgent"
	PriorityMedium OrderPriority = "medium"
	PriorityLow    OrderPriority = "low"
)

type OrderRecommendation struct {
	Product           string        `json:"product"`
	ProductKey        string        `json:"product_key"`
	CurrentStock      float64       `json:"current_stock"`
	AvgDailyUse       float64       `json:"avg_daily_use"`
	DaysUntilStockout int           `json:"days_until_stockout"`
	SuggestedOrder    float64       `json:"suggested_order"`
	Priority          OrderPriority `json:"priority"`
}
