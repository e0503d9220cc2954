package domain

type TopClientRow struct {
	Rank          int     `json:"rank"`
	ClientName    string  `json:"client_name"`
	OrderCount    int     `json:"order_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

type TopSupplierRow struct {
	Rank         int     `json:"rank"`
	SupplierName string  `json:"supplier_name"`
	ExpenseCount int     `json:"expense_count"`
	TotalAmount  float64 `json:"total_amount"`
}

type MenuItemRow struct {
	MenuItem string  `json:"menu_item"`
	Quantity float64 `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
