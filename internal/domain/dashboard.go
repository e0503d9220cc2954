package domain

// DashboardView agrega todas as visões calculadas para um filtro
type DashboardView struct {
	Filter            Filter               `json:"filter"`
	KPIs              *KPISet              `json:"kpis"`
	TopClients        []TopClientRow       `json:"top_clients"`
	TopSuppliers      []TopSupplierRow     `json:"top_suppliers"`
	MenuPerformance   []MenuItemRow        `json:"menu_performance"`
	MonthlySeries     []MonthlyPoint       `json:"monthly_series"`
	WeeklyRevenue     []WeeklyPoint        `json:"weekly_revenue"`
	Inventory         []InventoryItem      `json:"inventory"`
	DrinksConsumption []ConsumptionSummary `json:"drinks_consumption"`
	FoodConsumption   []ConsumptionSummary `json:"food_consumption"`
	FoodCosts         CostReport           `json:"food_costs"`
	DrinksCosts       CostReport           `json:"drinks_costs"`
	ClientNames       []string             `json:"client_names"`
	SupplierNames     []string             `json:"supplier_names"`
}

// InventorySnapshot é o resultado diário persistido pelo agendador de alertas
type InventorySnapshot struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"` // yyyy-mm-dd
	Items    []InventoryItem `json:"items"`
	Critical []string        `json:"critical"`
	Low      []string        `json:"low"`
}
