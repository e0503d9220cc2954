package insighting

import (
	"context"

	"github.com/gwr-marine/ops-analytics/internal/domain"
)

// Insighter é a interface consumida pela API e pelo agendador
type Insighter interface {
	// GetDashboard calcula todas as visões do painel para o filtro
	GetDashboard(ctx context.Context, filter domain.Filter) (*domain.DashboardView, error)

	// GetTopClients retorna o ranking de clientes; limit <= 0 usa o padrão configurado
	GetTopClients(ctx context.Context, filter domain.Filter, limit int) ([]domain.TopClientRow, error)

	// GetInventory classifica o estoque dos produtos controlados no período
	GetInventory(ctx context.Context, filter domain.Filter) ([]domain.InventoryItem, error)

	// GetOrderRecommendations sugere compras a partir do estoque do período
	GetOrderRecommendations(ctx context.Context, filter domain.Filter) ([]domain.OrderRecommendation, error)

	// GetConsumption resume o consumo de bebidas ou cozinha
	GetConsumption(ctx context.Context, filter domain.Filter, kind domain.UsageKind) ([]domain.ConsumptionSummary, error)

	// GetCosts valoriza o consumo diário e lista as compras de bebidas ou cozinha
	GetCosts(ctx context.Context, filter domain.Filter, kind domain.UsageKind) (*domain.CostView, error)

	// GetAccountExport associa as despesas do período às contas do plano de contas
	GetAccountExport(ctx context.Context, filter domain.Filter) (*domain.AccountExport, error)

	// GetClientNames lista os clientes já normalizados, em ordem alfabética
	GetClientNames(ctx context.Context) ([]string, error)

	// SuggestNames alimenta o autocomplete de clientes e fornecedores
	SuggestNames(ctx context.Context, query string) ([]domain.NameMatch, error)
}
