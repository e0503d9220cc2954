package domain

// CostLine é a quantidade consumida de um item no dia e o custo correspondente
type CostLine struct {
	Key      string  `json:"key"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// DailyCostRow é um registro de consumo valorizado (Date no formato yyyy-mm-dd)
type DailyCostRow struct {
	Date      string     `json:"date"`
	Items     []CostLine `json:"items"`
	TotalCost float64    `json:"total_cost"`
}

// CostReport valoriza o consumo diário. Na cozinha UnitCosts é o custo médio ponderado
// por kg das compras; nas bebidas é o preço padrão da garrafa.
type CostReport struct {
	Rows           []DailyCostRow     `json:"rows"`
	UnitCosts      map[string]float64 `json:"unit_costs"`
	Totals         map[string]float64 `json:"totals"`
	GrandTotal     float64            `json:"grand_total"`
	IgnoredRecords int                `json:"ignored_records"`
}

// PurchaseRow é uma despesa ligada a um produto de cozinha ou grupo de bebidas
type PurchaseRow struct {
	ExpenseID     string  `json:"expense_id"`
	Date          string  `json:"expense_date"`
	Description   string  `json:"description"`
	SupplierName  string  `json:"supplier_name"`
	Quantity      float64 `json:"quantity"`
	UnitOfMeasure string  `json:"unit_of_measure"`
	NetAmount     float64 `json:"net_amount"`
	Category      string  `json:"category"`
	Group         string  `json:"group"` // produto (poulet_kg) ou grupo de bebidas (beer_soft)
}

// CostView junta o custo diário e as compras de um tipo de consumo
type CostView struct {
	Kind      UsageKind     `json:"kind"`
	Report    CostReport    `json:"report"`
	Purchases []PurchaseRow `json:"purchases"`
}

// Grupos de compras de bebidas
const (
	DrinksBeerSoft = "beer_soft"
	DrinksWineRhum = "wine_rhum"
)

// UnknownSupplier substitui o fornecedor vazio nas listagens de despesas
const UnknownSupplier = "Unknown"
