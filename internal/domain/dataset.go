package domain

// Dataset é o snapshot imutável entregue pela camada de acesso a dados
type Dataset struct {
	Expenses    []ExpenseRecord
	Orders      []RevenueOrder
	Lines       []RevenueLine
	FoodUsage   []UsageRecord
	DrinksUsage []UsageRecord
}

// Usage retorna os registros de consumo do tipo informado
func (d Dataset) Usage(kind UsageKind) []UsageRecord {
	if kind == DrinksUsage {
		return d.DrinksUsage
	}
	return d.FoodUsage
}
