package insighting

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gwr-marine/ops-analytics/infrastructure/repository/mocks"
	"github.com/gwr-marine/ops-analytics/internal/config"
	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/internal/usecases/filtering"
	"github.com/gwr-marine/ops-analytics/internal/usecases/normalizing"
	"github.com/gwr-marine/ops-analytics/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func testAnalytics() config.Analytics {
	return config.Analytics{
		TopClientsLimit:       2,
		TopSuppliersLimit:     5,
		CriticalDays:          3,
		LowDays:               7,
		OrderBufferDays:       14,
		InventoryLookbackDays: 90,
	}
}

func newTestService(t *testing.T) (*Service, *mocks.MockDatasetRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDatasetRepository(ctrl)

	service, err := NewService(testAnalytics(), repo, normalizing.NewNormalizer(config.DefaultAliases()))
	require.NoError(t, err)

	return service, repo
}

// Março de 2025 com um pedido no período anterior e consumo de poulet
func serviceDataset() *domain.Dataset {
	return &domain.Dataset{
		Expenses: []domain.ExpenseRecord{
			{ID: "e1", Date: datePtr(2025, 3, 2), SupplierName: "Phenix", TotalAmount: 500, NetAmount: 425, VATAmount: 75},
			{ID: "e2", Date: datePtr(2025, 3, 3), SupplierName: "Les Caves Du Roi Ltd", TotalAmount: 300, NetAmount: 255, VATAmount: 45},
			{ID: "e3", Date: datePtr(2025, 3, 4), SupplierName: "Volailles Maurice", Category: "Poulet",
				Quantity: 20, UnitOfMeasure: "kg", TotalAmount: 200, NetAmount: 170, VATAmount: 30},
		},
		Orders: []domain.RevenueOrder{
			{ID: "o1", Date: datePtr(2025, 3, 10), ClientName: "Blue Safari"},
			{ID: "o2", Date: datePtr(2025, 3, 11), ClientName: "Ocean Tours"},
			{ID: "o3", Date: datePtr(2025, 3, 12), ClientName: "Coral Trips"},
			{ID: "o4", Date: datePtr(2025, 2, 15), ClientName: "Blue Safari"},
		},
		Lines: []domain.RevenueLine{
			{ID: "l1", OrderID: "o1", MenuItem: "Poulet grillé", Quantity: 4, LineTotal: 400},
			{ID: "l2", OrderID: "o2", MenuItem: "Langouste", Quantity: 2, LineTotal: 600},
			{ID: "l3", OrderID: "o3", MenuItem: "Poulet grillé", Quantity: 1, LineTotal: 100},
			{ID: "l4", OrderID: "o4", MenuItem: "Langouste", Quantity: 1, LineTotal: 550},
		},
		FoodUsage: []domain.UsageRecord{
			{ID: "f1", Kind: domain.FoodUsage, Date: datePtr(2025, 3, 10), Quantities: map[string]float64{"poulet_kg": 4}},
			{ID: "f2", Kind: domain.FoodUsage, Date: datePtr(2025, 3, 11), Quantities: map[string]float64{"poulet_kg": 6}},
		},
		DrinksUsage: []domain.UsageRecord{
			{ID: "d1", Kind: domain.DrinksUsage, Date: datePtr(2025, 3, 10), Quantities: map[string]float64{"beer_bottles": 12}},
			{ID: "d2", Kind: domain.DrinksUsage, Date: datePtr(2025, 3, 11), Quantities: map[string]float64{"beer_bottles": 6}},
		},
	}
}

func TestNewService_InvalidThresholds(t *testing.T) {
	cfg := testAnalytics()
	cfg.CriticalDays = 10
	cfg.LowDays = 5

	service, err := NewService(cfg, nil, normalizing.NewNormalizer(nil))

	assert.Nil(t, service)
	assert.Error(t, err)
}

func TestService_GetDashboard(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()
	filter := domain.Filter{StartDate: datePtr(2025, 3, 1), EndDate: datePtr(2025, 3, 31)}

	repo.EXPECT().
		LoadDataset(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, from, to *time.Time) (*domain.Dataset, error) {
			// Todo o histórico até o fim do período
			assert.Nil(t, from)
			assert.Equal(t, *datePtr(2025, 3, 31), *to)
			return serviceDataset(), nil
		})
	repo.EXPECT().ListClientNames(gomock.Any()).Return([]string{"Blue Safari", "Ocean Tours", "Coral Trips", "Reef Charters"}, nil)
	repo.EXPECT().ListSupplierNames(gomock.Any()).Return([]string{"Phenix", "Lescave", "Volailles Maurice"}, nil)

	view, err := service.GetDashboard(ctx, filter)

	require.NoError(t, err)
	require.NotNil(t, view.KPIs)
	assert.Equal(t, 1100.0, view.KPIs.TotalRevenue)
	assert.Equal(t, 1000.0, view.KPIs.TotalExpenses)
	assert.Equal(t, 3, view.KPIs.OrderCount)
	assert.False(t, view.KPIs.NoBaseline)
	assert.Equal(t, 200.0, view.KPIs.OrderTrend.Percent)

	require.Len(t, view.TopClients, 2)
	assert.Equal(t, "Ocean Tours", view.TopClients[0].ClientName)
	assert.Equal(t, "Blue Safari", view.TopClients[1].ClientName)

	require.Len(t, view.TopSuppliers, 3)
	assert.Equal(t, "Phoenix Beverages Limited", view.TopSuppliers[0].SupplierName)

	require.Len(t, view.MenuPerformance, 2)
	assert.Equal(t, "Langouste", view.MenuPerformance[0].MenuItem)
	assert.Equal(t, 600.0, view.MenuPerformance[0].Revenue)

	require.Len(t, view.MonthlySeries, 1)
	assert.Equal(t, "2025-03", view.MonthlySeries[0].Month)
	assert.Equal(t, []domain.WeeklyPoint{{WeekStart: "2025-03-09", Revenue: 1100}}, view.WeeklyRevenue)

	require.Len(t, view.Inventory, 3)
	assert.Equal(t, "poulet_kg", view.Inventory[0].ProductKey)
	assert.Equal(t, 10.0, view.Inventory[0].OnHand)
	assert.Equal(t, domain.StockCritical, view.Inventory[0].Status)

	require.NotEmpty(t, view.DrinksConsumption)
	assert.Equal(t, 18.0, view.DrinksConsumption[2].Total)
	assert.Equal(t, 18.0*89, view.DrinksConsumption[2].TotalCost)

	// 170 / 20 kg de poulet
	assert.Equal(t, 8.5, view.FoodCosts.UnitCosts["poulet_kg"])
	assert.Equal(t, 85.0, view.FoodCosts.GrandTotal)
	require.Len(t, view.FoodCosts.Rows, 2)
	assert.Equal(t, "2025-03-11", view.FoodCosts.Rows[0].Date)
	assert.Equal(t, 18.0*89, view.DrinksCosts.GrandTotal)

	// Nomes vêm do cadastro inteiro, não só dos pedidos carregados
	assert.Equal(t, []string{"Blue Safari", "Coral Trips", "Ocean Tours", "Reef Charters"}, view.ClientNames)
	assert.Equal(t, []string{"Les Caves Du Roi Ltd", "Phoenix Beverages Limited", "Volailles Maurice"}, view.SupplierNames)
}

func TestService_GetDashboard_OnHandIncludesEarlierPurchases(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()
	filter := domain.Filter{StartDate: datePtr(2025, 3, 1), EndDate: datePtr(2025, 3, 31)}

	dataset := serviceDataset()
	dataset.Expenses = append(dataset.Expenses, domain.ExpenseRecord{
		ID: "e0", Date: datePtr(2024, 12, 20), SupplierName: "Volailles Maurice", Category: "Poulet",
		Quantity: 30, UnitOfMeasure: "kg", TotalAmount: 300, NetAmount: 255, VATAmount: 45,
	})

	repo.EXPECT().LoadDataset(ctx, nil, filter.EndDate).Return(dataset, nil)
	repo.EXPECT().ListClientNames(gomock.Any()).Return(nil, nil)
	repo.EXPECT().ListSupplierNames(gomock.Any()).Return(nil, nil)

	view, err := service.GetDashboard(ctx, filter)

	require.NoError(t, err)
	poulet := view.Inventory[0]
	assert.Equal(t, "poulet_kg", poulet.ProductKey)
	assert.Equal(t, 20.0, poulet.Purchased)
	assert.Equal(t, 10.0, poulet.Used)
	assert.Equal(t, 40.0, poulet.OnHand)
	assert.Equal(t, 8.0, poulet.DaysOfSupply)
	assert.Equal(t, domain.StockHealthy, poulet.Status)

	// A compra de dezembro está fora do período e não entra no custo médio
	assert.Equal(t, 8.5, view.FoodCosts.UnitCosts["poulet_kg"])
}

func TestService_GetDashboard_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("intervalo inválido não consulta o repositório", func(t *testing.T) {
		service, _ := newTestService(t)
		filter := domain.Filter{StartDate: datePtr(2025, 3, 31), EndDate: datePtr(2025, 3, 1)}

		view, err := service.GetDashboard(ctx, filter)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, filtering.ErrInvalidDateRange)
	})

	t.Run("falha do repositório", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().LoadDataset(ctx, nil, nil).Return(nil, errors.New("conexão recusada"))

		view, err := service.GetDashboard(ctx, domain.Filter{})

		assert.Nil(t, view)
		assert.ErrorIs(t, err, ErrLoadDataset)
	})

	t.Run("falha ao listar fornecedores", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().LoadDataset(ctx, nil, nil).Return(serviceDataset(), nil)
		repo.EXPECT().ListClientNames(gomock.Any()).Return([]string{"Blue Safari"}, nil)
		repo.EXPECT().ListSupplierNames(gomock.Any()).Return(nil, errors.New("timeout"))

		view, err := service.GetDashboard(ctx, domain.Filter{})

		assert.Nil(t, view)
		assert.ErrorIs(t, err, ErrListNames)
	})
}

func TestService_GetTopClients(t *testing.T) {
	ctx := context.Background()
	filter := domain.Filter{StartDate: datePtr(2025, 3, 1), EndDate: datePtr(2025, 3, 31)}

	tests := []struct {
		name          string
		limit         int
		expectedNames []string
	}{
		{name: "limite padrão da configuração", limit: 0, expectedNames: []string{"Ocean Tours", "Blue Safari"}},
		{name: "limite informado", limit: 3, expectedNames: []string{"Ocean Tours", "Blue Safari", "Coral Trips"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			repo.EXPECT().LoadDataset(ctx, filter.StartDate, filter.EndDate).Return(serviceDataset(), nil)

			rows, err := service.GetTopClients(ctx, filter, tt.limit)

			require.NoError(t, err)
			names := make([]string, 0, len(rows))
			for _, row := range rows {
				names = append(names, row.ClientName)
			}
			assert.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestService_GetInventoryIgnoresNames(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()
	filter := domain.Filter{
		StartDate:    datePtr(2025, 3, 1),
		EndDate:      datePtr(2025, 3, 31),
		SupplierName: "Phoenix",
	}

	repo.EXPECT().LoadDataset(ctx, nil, filter.EndDate).Return(serviceDataset(), nil)

	items, err := service.GetInventory(ctx, filter)

	require.NoError(t, err)
	require.Len(t, items, 3)
	// A compra de poulet é de outro fornecedor e continua contando
	assert.Equal(t, 20.0, items[0].Purchased)
	assert.Equal(t, 10.0, items[0].Used)
	assert.Equal(t, 5.0, items[0].AvgDailyUse)
}

func TestService_GetOrderRecommendations(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()
	filter := domain.Filter{StartDate: datePtr(2025, 3, 1), EndDate: datePtr(2025, 3, 31)}

	repo.EXPECT().LoadDataset(ctx, nil, filter.EndDate).Return(serviceDataset(), nil)

	recommendations, err := service.GetOrderRecommendations(ctx, filter)

	require.NoError(t, err)
	require.NotEmpty(t, recommendations)
	assert.Equal(t, "poulet_kg", recommendations[0].ProductKey)
	assert.Equal(t, domain.PriorityUrgent, recommendations[0].Priority)
	assert.Equal(t, 2, recommendations[0].DaysUntilStockout)
	assert.Equal(t, 60.0, recommendations[0].SuggestedOrder)
}

func TestService_GetConsumption(t *testing.T) {
	ctx := context.Background()
	filter := domain.Filter{StartDate: datePtr(2025, 3, 1), EndDate: datePtr(2025, 3, 31)}

	t.Run("bebidas", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().LoadDataset(ctx, filter.StartDate, filter.EndDate).Return(serviceDataset(), nil)

		rows, err := service.GetConsumption(ctx, filter, domain.DrinksUsage)

		require.NoError(t, err)
		require.Len(t, rows, len(config.DrinkCategories()))
		assert.Equal(t, "beer", rows[2].Key)
		assert.Equal(t, 18.0, rows[2].Total)
	})

	t.Run("cozinha", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().LoadDataset(ctx, filter.StartDate, filter.EndDate).Return(serviceDataset(), nil)

		rows, err := service.GetConsumption(ctx, filter, domain.FoodUsage)

		require.NoError(t, err)
		require.Len(t, rows, len(config.FoodCategories()))
		assert.Equal(t, 10.0, rows[0].Total)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		service, _ := newTestService(t)

		rows, err := service.GetConsumption(ctx, filter, domain.UsageKind("bar"))

		assert.Nil(t, rows)
		assert.ErrorIs(t, err, ErrUnknownUsageKind)
	})
}

func TestService_GetCosts(t *testing.T) {
	ctx := context.Background()
	filter := domain.Filter{StartDate: datePtr(2025, 3, 1), EndDate: datePtr(2025, 3, 31), ClientName: "Blue Safari"}

	t.Run("cozinha", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().LoadDataset(ctx, filter.StartDate, filter.EndDate).Return(serviceDataset(), nil)

		view, err := service.GetCosts(ctx, filter, domain.FoodUsage)

		require.NoError(t, err)
		assert.Equal(t, domain.FoodUsage, view.Kind)
		assert.Equal(t, 85.0, view.Report.GrandTotal)
		require.Len(t, view.Purchases, 1)
		assert.Equal(t, "e3", view.Purchases[0].ExpenseID)
		assert.Equal(t, "poulet_kg", view.Purchases[0].Group)
	})

	t.Run("bebidas", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().LoadDataset(ctx, filter.StartDate, filter.EndDate).Return(serviceDataset(), nil)

		view, err := service.GetCosts(ctx, filter, domain.DrinksUsage)

		require.NoError(t, err)
		assert.Equal(t, 18.0*89, view.Report.Totals["beer"])
		require.Len(t, view.Report.Rows, 2)
		assert.Empty(t, view.Purchases)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		service, _ := newTestService(t)

		view, err := service.GetCosts(ctx, filter, domain.UsageKind("bar"))

		assert.Nil(t, view)
		assert.ErrorIs(t, err, ErrUnknownUsageKind)
	})
}

func TestService_GetAccountExport(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()
	filter := domain.Filter{StartDate: datePtr(2025, 3, 1), EndDate: datePtr(2025, 3, 31)}

	repo.EXPECT().LoadDataset(ctx, filter.StartDate, filter.EndDate).Return(serviceDataset(), nil)

	export, err := service.GetAccountExport(ctx, filter)

	require.NoError(t, err)
	require.Len(t, export.Rows, 3)
	assert.Equal(t, "e3", export.Rows[0].ExpenseID)
	assert.Equal(t, 20.0, export.Rows[0].Kg)
	assert.Equal(t, config.AccountPayable, export.Rows[1].AccountCode)
	assert.True(t, export.Rows[1].Mapped)

	assert.Equal(t, domain.AccountExportSummary{
		TotalRows:         3,
		TotalAmount:       850,
		TotalVAT:          150,
		MappedCount:       1,
		UnmappedCount:     2,
		UnmappedSuppliers: []string{"Phenix", "Volailles Maurice"},
		SupplierCount:     3,
	}, export.Summary)
}

func TestService_GetClientNames(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	repo.EXPECT().ListClientNames(ctx).Return([]string{"ocean tours", " Blue Safari ", "Phenix", "Blue Safari"}, nil)

	names, err := service.GetClientNames(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Blue Safari", "ocean tours", "Phoenix Beverages Limited"}, names)
}

func TestService_SuggestNames(t *testing.T) {
	ctx := context.Background()

	t.Run("junta clientes e fornecedores", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().ListClientNames(ctx).Return([]string{"Blue Safari"}, nil)
		repo.EXPECT().ListSupplierNames(ctx).Return([]string{"Phenix", "Safari Fish Market"}, nil)

		matches, err := service.SuggestNames(ctx, "safari")

		require.NoError(t, err)
		assert.Equal(t, []domain.NameMatch{
			{Display: "Blue Safari", CanonicalName: "Blue Safari"},
			{Display: "Safari Fish Market", CanonicalName: "Safari Fish Market"},
		}, matches)
	})

	t.Run("falha ao listar fornecedores", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().ListClientNames(ctx).Return([]string{"Blue Safari"}, nil)
		repo.EXPECT().ListSupplierNames(ctx).Return(nil, errors.New("timeout"))

		matches, err := service.SuggestNames(ctx, "safari")

		assert.Nil(t, matches)
		assert.ErrorIs(t, err, ErrListNames)
	})
}
