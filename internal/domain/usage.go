package domain

import "time"

type UsageKind string

const (
	FoodUsage   UsageKind = "food"
	DrinksUsage UsageKind = "drinks"
)

// UsageRecord é o registro diário de consumo de ingredientes ou bebidas.
// Quantities é indexado pela chave do item (ex: "poulet", "beer").
type UsageRecord struct {
	ID            string             `json:"staging_id"`
	Kind          UsageKind          `json:"kind"`
	Date          *time.Time         `json:"usage_date"`
	Quantities    map[string]float64 `json:"quantities"`
	TotalQuantity float64            `json:"total_quantity"`
}

// Quantity retorna a quantidade de um item, zero quando o item não foi registrado
func (u UsageRecord) Quantity(key string) float64 {
	return u.Quantities[key]
}

// StockMovement é uma entrada (compra) ou saída (uso) de um produto em uma data
type StockMovement struct {
	Date     *time.Time
	Quantity float64
}
