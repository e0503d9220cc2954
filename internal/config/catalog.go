package config

import (
	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/internal/usecases/consumption"
)

// Cores dos status de estoque no painel
const (
	ColorHealthy  = "#01B574"
	ColorLow      = "#FFB547"
	ColorCritical = "#FF6B6B"
)

// DrinkCategories segue a ordem das colunas de gwr_drinks_usage; UnitCost é o preço padrão da garrafa
func DrinkCategories() []domain.CategoryDefinition {
	return []domain.CategoryDefinition{
		{Key: "coca_cola", Label: "Coca-Cola", Color: "#FF6B6B", UnitCost: 40, Quantity: consumption.Field("coca_cola_bottles")},
		{Key: "sprite", Label: "Sprite", Color: "#01B574", UnitCost: 40, Quantity: consumption.Field("sprite_bottles")},
		{Key: "beer", Label: "Beer", Color: "#FFB547", UnitCost: 89, Quantity: consumption.Field("beer_bottles")},
		{Key: "rhum", Label: "Rhum", Color: "#7B61FF", UnitCost: 260, Quantity: consumption.Field("rhum_bottles")},
		{Key: "rose", Label: "Rosé Wine", Color: "#FC8181", UnitCost: 104, Quantity: consumption.Field("rose_bottles")},
		{Key: "blanc", Label: "Blanc Wine", Color: "#4FD1C5", UnitCost: 104, Quantity: consumption.Field("blanc_bottles")},
	}
}

func FoodCategories() []domain.CategoryDefinition {
	return []domain.CategoryDefinition{
		{Key: "poulet", Label: "Poulet (kg)", Color: "#FFB547", Quantity: consumption.Field("poulet_kg")},
		{Key: "langoustes", Label: "Langoustes (kg)", Color: "#FF6B6B", Quantity: consumption.Field("langoustes_kg")},
		{Key: "poisson", Label: "Poisson (kg)", Color: "#4FD1C5", Quantity: consumption.Field("poisson_kg")},
		{Key: "reserve_gambass", Label: "Reserve Gambas (pcs)", Color: "#7B61FF", Quantity: consumption.Field("reserve_gambass_pcs")},
		{Key: "reserve_langoustes", Label: "Reserve Langoustes", Color: "#F6AD55", Quantity: consumption.Field("reserve_langoustes")},
	}
}

// FoodProducts são os produtos controlados no estoque, comprados em kg
func FoodProducts() []domain.ProductDefinition {
	return []domain.ProductDefinition{
		{Key: "poulet_kg", Label: "Poulet", Keywords: []string{"poulet", "chicken"}, Unit: "kg"},
		{Key: "langoustes_kg", Label: "Langoustes", Keywords: []string{"langouste", "lobster"}, Unit: "kg"},
		{Key: "poisson_kg", Label: "Poisson", Keywords: []string{"poisson", "fish"}, Unit: "kg"},
	}
}

// StockThresholds converte a configuração para o formato usado pelo classificador
func (a Analytics) StockThresholds() domain.StockThresholds {
	return domain.StockThresholds{CriticalDays: a.CriticalDays, LowDays: a.LowDays}
}

// StatusColor retorna a cor exibida para um status de estoque
func StatusColor(status domain.StockStatus) string {
	switch status {
	case domain.StockCritical:
		return ColorCritical
	case domain.StockLow:
		return ColorLow
	default:
		return ColorHealthy
	}
}
