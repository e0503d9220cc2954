package ranking

import (
	"testing"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/internal/usecases/normalizing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder() *Builder {
	return NewBuilder(normalizing.NewNormalizer(domain.AliasTable{
		{Name: "Phoenix Beverages Limited", Aliases: []string{"Phenix", "Phoenix"}},
		{Name: "Les Caves Du Roi Ltd", Aliases: []string{"Les Caves"}},
	}))
}

func TestBuilder_TopClients_AliasesMerge(t *testing.T) {
	builder := newTestBuilder()

	orders := []domain.RevenueOrder{
		{ID: "o1", ClientName: "Phenix"},
		{ID: "o2", ClientName: "Phoenix Beverages Limited"},
	}
	lines := []domain.RevenueLine{
		{ID: "l1", OrderID: "o1", LineTotal: 100},
		{ID: "l2", OrderID: "o2", LineTotal: 50},
	}

	rows := builder.TopClients(orders, lines, 5)

	assert.Equal(t, []domain.TopClientRow{
		{Rank: 1, ClientName: "Phoenix Beverages Limited", OrderCount: 2, TotalRevenue: 150, AvgOrderValue: 75},
	}, rows)
}

func TestBuilder_TopClients(t *testing.T) {
	builder := newTestBuilder()

	orders := []domain.RevenueOrder{
		{ID: "o1", ClientName: "Zebra Cruises"},
		{ID: "o2", ClientName: "Alpha Charters"},
		{ID: "o3", ClientName: "Blue Safari"},
		{ID: "o4", ClientName: "Blue Safari"},
		{ID: "o5", ClientName: "Ocean Tours"},
		{ID: "o3", ClientName: "Blue Safari"},
	}
	lines := []domain.RevenueLine{
		{ID: "l1", OrderID: "o1", LineTotal: 200},
		{ID: "l2", OrderID: "o2", LineTotal: 120},
		{ID: "l3", OrderID: "o2", LineTotal: 80},
		{ID: "l4", OrderID: "o3", LineTotal: 500},
		{ID: "l5", OrderID: "o5", LineTotal: 10},
		{ID: "l6", OrderID: "missing", LineTotal: 9999},
	}

	tests := []struct {
		name     string
		limit    int
		expected []domain.TopClientRow
	}{
		{
			name:  "Ordena por receita e desempata pelo nome",
			limit: 10,
			expected: []domain.TopClientRow{
				{Rank: 1, ClientName: "Blue Safari", OrderCount: 2, TotalRevenue: 500, AvgOrderValue: 250},
				{Rank: 2, ClientName: "Alpha Charters", OrderCount: 1, TotalRevenue: 200, AvgOrderValue: 200},
				{Rank: 3, ClientName: "Zebra Cruises", OrderCount: 1, TotalRevenue: 200, AvgOrderValue: 200},
				{Rank: 4, ClientName: "Ocean Tours", OrderCount: 1, TotalRevenue: 10, AvgOrderValue: 10},
			},
		},
		{
			name:  "Respeita o limite",
			limit: 2,
			expected: []domain.TopClientRow{
				{Rank: 1, ClientName: "Blue Safari", OrderCount: 2, TotalRevenue: 500, AvgOrderValue: 250},
				{Rank: 2, ClientName: "Alpha Charters", OrderCount: 1, TotalRevenue: 200, AvgOrderValue: 200},
			},
		},
		{
			name:     "Limite zero",
			limit:    0,
			expected: []domain.TopClientRow{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, builder.TopClients(orders, lines, tt.limit))
		})
	}
}

func TestBuilder_TopClients_IndependentOfInputOrder(t *testing.T) {
	builder := newTestBuilder()

	orders := []domain.RevenueOrder{
		{ID: "o1", ClientName: "B"},
		{ID: "o2", ClientName: "A"},
		{ID: "o3", ClientName: "C"},
	}
	lines := []domain.RevenueLine{
		{ID: "l1", OrderID: "o1", LineTotal: 0.1},
		{ID: "l2", OrderID: "o1", LineTotal: 0.2},
		{ID: "l3", OrderID: "o2", LineTotal: 0.3},
		{ID: "l4", OrderID: "o3", LineTotal: 1},
	}

	reversedOrders := []domain.RevenueOrder{orders[2], orders[1], orders[0]}
	reversedLines := []domain.RevenueLine{lines[3], lines[2], lines[1], lines[0]}

	first := builder.TopClients(orders, lines, 3)
	second := builder.TopClients(reversedOrders, reversedLines, 3)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, "C", first[0].ClientName)
	assert.Equal(t, "A", first[1].ClientName)
	assert.Equal(t, 0.3, first[2].TotalRevenue)

	for i := 1; i < len(first); i++ {
		assert.GreaterOrEqual(t, first[i-1].TotalRevenue, first[i].TotalRevenue)
	}
}

func TestBuilder_TopSuppliers(t *testing.T) {
	builder := newTestBuilder()

	expenses := []domain.ExpenseRecord{
		{ID: "e1", SupplierName: "Phenix", TotalAmount: 300},
		{ID: "e2", SupplierName: "Phoenix", TotalAmount: 200},
		{ID: "e3", SupplierName: "Les Caves", TotalAmount: 500},
		{ID: "e4", SupplierName: "Intermart", TotalAmount: 120},
		{ID: "", SupplierName: "Intermart", TotalAmount: 30},
		{ID: "", SupplierName: "Intermart", TotalAmount: -10},
	}

	rows := builder.TopSuppliers(expenses, 5)

	assert.Equal(t, []domain.TopSupplierRow{
		{Rank: 1, SupplierName: "Les Caves Du Roi Ltd", ExpenseCount: 1, TotalAmount: 500},
		{Rank: 2, SupplierName: "Phoenix Beverages Limited", ExpenseCount: 2, TotalAmount: 500},
		{Rank: 3, SupplierName: "Intermart", ExpenseCount: 3, TotalAmount: 150},
	}, rows)

	assert.Empty(t, builder.TopSuppliers(expenses, 0))
}

func TestMenuPerformance(t *testing.T) {
	lines := []domain.RevenueLine{
		{MenuItem: "Lobster Menu", Quantity: 2, LineTotal: 3000},
		{MenuItem: "Chicken Menu", Quantity: 10, LineTotal: 1500},
		{MenuItem: "Fish Menu ", Quantity: 5, LineTotal: 1500},
		{MenuItem: "Lobster Menu", Quantity: 1, LineTotal: 1500},
		{MenuItem: "Fish Menu", Quantity: 6, LineTotal: 0},
	}

	rows := MenuPerformance(lines)

	assert.Equal(t, []domain.MenuItemRow{
		{MenuItem: "Lobster Menu", Quantity: 3, Revenue: 4500},
		{MenuItem: "Fish Menu", Quantity: 11, Revenue: 1500},
		{MenuItem: "Chicken Menu", Quantity: 10, Revenue: 1500},
	}, rows)
}
