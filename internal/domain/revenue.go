package domain

import "time"

// RevenueOrder é um pedido de receita. ClientName é texto livre digitado pelo usuário.
type RevenueOrder struct {
	ID           string     `json:"revenue_id"`
	Date         *time.Time `json:"revenue_date"`
	ClientName   string     `json:"client_name"`
	PaxCount     int        `json:"pax_count"`
	TotalRevenue float64    `json:"total_revenue"`
}

// RevenueLine pertence a um único RevenueOrder (OrderID) e não tem data própria.
type RevenueLine struct {
	ID        string  `json:"line_id"`
	OrderID   string  `json:"revenue_id"`
	MenuItem  string  `json:"menu_item"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}
