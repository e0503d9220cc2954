package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gwr-marine/ops-analytics/internal/api/handler/router"
	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/internal/exporter"
	"github.com/gwr-marine/ops-analytics/internal/usecases/filtering"
	"github.com/gwr-marine/ops-analytics/internal/usecases/insighting"
	"github.com/gwr-marine/ops-analytics/internal/usecases/insighting/mocks"
	"github.com/gwr-marine/ops-analytics/pkg/apiErrors"
)

type fakeCronJob struct {
	busy        bool
	triggered   int
	snapshot    *domain.InventorySnapshot
	snapshotErr error
}

func (f *fakeCronJob) TriggerManualSync(context.Context) bool {
	if f.busy {
		return false
	}
	f.triggered++
	return true
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true, "triggered": f.triggered}
}

func (f *fakeCronJob) LatestSnapshot(context.Context) (*domain.InventorySnapshot, error) {
	return f.snapshot, f.snapshotErr
}

func newTestRouter(t *testing.T, cron *fakeCronJob) (http.Handler, *mocks.MockInsighter) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockInsighter(ctrl)

	// 16 de abril de 2025
	previous := now
	now = func() time.Time { return time.Date(2025, 4, 16, 10, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { now = previous })

	services := CronJobServices{}
	options := []router.ConfigRouter{
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Dashboard(service)...),
		router.WithRoutes(Clients(service)...),
		router.WithRoutes(Inventory(service)...),
		router.WithRoutes(Consumption(service)...),
		router.WithRoutes(Accounts(service)...),
	}
	if cron != nil {
		services.InventoryAlertsService = cron
		options = append(options, router.WithRoutes(InventoryAlerts(cron)...))
	}
	options = append(options, router.WithRoutes(CronJobs(services)...))

	rt := router.New(options...)

	return rt, service
}

func doRequest(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestGetDashboard_Filters(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected domain.Filter
	}{
		{
			name:  "intervalo personalizado com cliente",
			query: "start=2025-03-01&end=2025-03-31&client=Blue+Safari",
			expected: domain.Filter{
				StartDate:  datePtr(2025, 3, 1),
				EndDate:    datePtr(2025, 3, 31),
				ClientName: "Blue Safari",
			},
		},
		{
			name:  "mês passado com fornecedor",
			query: "preset=last_month&supplier=Phenix",
			expected: domain.Filter{
				StartDate:    datePtr(2025, 3, 1),
				EndDate:      datePtr(2025, 3, 31),
				SupplierName: "Phenix",
			},
		},
		{
			name:  "este mês",
			query: "preset=this_month",
			expected: domain.Filter{
				StartDate: datePtr(2025, 4, 1),
				EndDate:   datePtr(2025, 4, 16),
			},
		},
		{
			name:     "todo o período ignora as datas",
			query:    "preset=all_time&start=2025-03-01",
			expected: domain.Filter{},
		},
		{
			name:     "sem parâmetros",
			query:    "",
			expected: domain.Filter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, service := newTestRouter(t, nil)

			service.EXPECT().
				GetDashboard(gomock.Any(), tt.expected).
				Return(&domain.DashboardView{Filter: tt.expected, KPIs: &domain.KPISet{TotalRevenue: 800}}, nil)

			rec := doRequest(rt, http.MethodGet, "/v1/dashboard?"+tt.query)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var view domain.DashboardView
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
			assert.Equal(t, 800.0, view.KPIs.TotalRevenue)
		})
	}
}

func TestGetDashboard_Errors(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setup          func(service *mocks.MockInsighter)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "data em formato inválido",
			query:          "start=01/03/2025",
			setup:          func(*mocks.MockInsighter) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "início depois do fim",
			query:          "start=2025-03-31&end=2025-03-01",
			setup:          func(*mocks.MockInsighter) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:           "período desconhecido",
			query:          "preset=next_year",
			setup:          func(*mocks.MockInsighter) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:  "falha ao carregar dados",
			query: "preset=this_month",
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: %w", insighting.ErrLoadDataset, errors.New("timeout")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrDatabaseOperation,
		},
		{
			name:  "erro de validação vindo do serviço",
			query: "preset=this_month",
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).
					Return(nil, &filtering.ValidationError{Err: filtering.ErrInvalidDateRange, Field: "start_date"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, service := newTestRouter(t, nil)
			tt.setup(service)

			rec := doRequest(rt, http.MethodGet, "/v1/dashboard?"+tt.query)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestExportDashboard(t *testing.T) {
	rt, service := newTestRouter(t, nil)

	service.EXPECT().
		GetDashboard(gomock.Any(), gomock.Any()).
		Return(&domain.DashboardView{KPIs: &domain.KPISet{TotalRevenue: 800}}, nil)

	rec := doRequest(rt, http.MethodGet, "/v1/reports/dashboard.xlsx?preset=this_month")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, exporter.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "dashboard-2025-04-16.xlsx")
	// Arquivos xlsx são zip e começam com PK
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
}

func TestGetTopClients(t *testing.T) {
	t.Run("repassa o limite informado", func(t *testing.T) {
		rt, service := newTestRouter(t, nil)
		rows := []domain.TopClientRow{{Rank: 1, ClientName: "Ocean Tours", OrderCount: 2, TotalRevenue: 900, AvgOrderValue: 450}}

		service.EXPECT().GetTopClients(gomock.Any(), domain.Filter{}, 3).Return(rows, nil)

		rec := doRequest(rt, http.MethodGet, "/v1/clients/top?limit=3")

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []domain.TopClientRow
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, rows, got)
	})

	t.Run("limite inválido", func(t *testing.T) {
		rt, _ := newTestRouter(t, nil)

		rec := doRequest(rt, http.MethodGet, "/v1/clients/top?limit=-2")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

func TestListClientsAndSuggestNames(t *testing.T) {
	rt, service := newTestRouter(t, nil)

	service.EXPECT().GetClientNames(gomock.Any()).Return([]string{"Blue Safari", "Ocean Tours"}, nil)
	service.EXPECT().SuggestNames(gomock.Any(), "phe").Return([]domain.NameMatch{
		{Display: "Phoenix Beverages Limited  (Phenix)", CanonicalName: "Phoenix Beverages Limited"},
	}, nil)

	rec := doRequest(rt, http.MethodGet, "/v1/clients")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Blue Safari","Ocean Tours"]`, rec.Body.String())

	rec = doRequest(rt, http.MethodGet, "/v1/names/suggest?q=phe")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"display":"Phoenix Beverages Limited  (Phenix)","canonical_name":"Phoenix Beverages Limited"}]`,
		rec.Body.String())
}

func TestInventoryRoutes(t *testing.T) {
	rt, service := newTestRouter(t, nil)
	filter := domain.Filter{StartDate: datePtr(2025, 3, 1), EndDate: datePtr(2025, 3, 31)}

	service.EXPECT().GetInventory(gomock.Any(), filter).Return([]domain.InventoryItem{
		{Product: "Poulet", ProductKey: "poulet_kg", Status: domain.StockCritical},
	}, nil)
	service.EXPECT().GetOrderRecommendations(gomock.Any(), filter).Return([]domain.OrderRecommendation{
		{Product: "Poulet", ProductKey: "poulet_kg", Priority: domain.PriorityUrgent, SuggestedOrder: 60},
	}, nil)

	rec := doRequest(rt, http.MethodGet, "/v1/inventory?start=2025-03-01&end=2025-03-31")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"critical"`)

	rec = doRequest(rt, http.MethodGet, "/v1/inventory/recommendations?start=2025-03-01&end=2025-03-31")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"priority":"urgent"`)
}

func TestGetConsumption(t *testing.T) {
	t.Run("bebidas", func(t *testing.T) {
		rt, service := newTestRouter(t, nil)
		service.EXPECT().GetConsumption(gomock.Any(), domain.Filter{}, domain.DrinksUsage).
			Return([]domain.ConsumptionSummary{{Key: "beer", Label: "Beer", Total: 18, TotalCost: 1602}}, nil)

		rec := doRequest(rt, http.MethodGet, "/v1/consumption/drinks")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_cost":1602`)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		rt, service := newTestRouter(t, nil)
		service.EXPECT().GetConsumption(gomock.Any(), domain.Filter{}, domain.UsageKind("bar")).
			Return(nil, fmt.Errorf("%w: bar", insighting.ErrUnknownUsageKind))

		rec := doRequest(rt, http.MethodGet, "/v1/consumption/bar")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})
}

func TestGetCosts(t *testing.T) {
	t.Run("cozinha", func(t *testing.T) {
		rt, service := newTestRouter(t, nil)
		filter := domain.Filter{StartDate: datePtr(2025, 3, 1), EndDate: datePtr(2025, 3, 31)}
		service.EXPECT().GetCosts(gomock.Any(), filter, domain.FoodUsage).Return(&domain.CostView{
			Kind: domain.FoodUsage,
			Report: domain.CostReport{
				UnitCosts:  map[string]float64{"poulet_kg": 8.5},
				GrandTotal: 85,
			},
			Purchases: []domain.PurchaseRow{{ExpenseID: "e3", Group: "poulet_kg"}},
		}, nil)

		rec := doRequest(rt, http.MethodGet, "/v1/costs/food?start=2025-03-01&end=2025-03-31")

		assert.Equal(t, http.StatusOK, rec.Code)
		var view domain.CostView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, 8.5, view.Report.UnitCosts["poulet_kg"])
		assert.Equal(t, 85.0, view.Report.GrandTotal)
		require.Len(t, view.Purchases, 1)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		rt, service := newTestRouter(t, nil)
		service.EXPECT().GetCosts(gomock.Any(), domain.Filter{}, domain.UsageKind("bar")).
			Return(nil, fmt.Errorf("%w: bar", insighting.ErrUnknownUsageKind))

		rec := doRequest(rt, http.MethodGet, "/v1/costs/bar")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAccountExport(t *testing.T) {
	export := &domain.AccountExport{
		Rows: []domain.AccountExportRow{
			{ExpenseID: "e1", Date: "2025-03-05", SupplierName: "Employees Salary", Amount: 30000, AccountCode: "630000", Mapped: true},
		},
		Summary: domain.AccountExportSummary{TotalRows: 1, TotalAmount: 30000, MappedCount: 1, UnmappedSuppliers: []string{}, SupplierCount: 1},
	}

	t.Run("json", func(t *testing.T) {
		rt, service := newTestRouter(t, nil)
		service.EXPECT().GetAccountExport(gomock.Any(), domain.Filter{SupplierName: "Employees"}).Return(export, nil)

		rec := doRequest(rt, http.MethodGet, "/v1/expenses/accounts?supplier=Employees")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"account":"630000"`)
		assert.Contains(t, rec.Body.String(), `"mapped_count":1`)
	})

	t.Run("planilha", func(t *testing.T) {
		rt, service := newTestRouter(t, nil)
		service.EXPECT().GetAccountExport(gomock.Any(), gomock.Any()).Return(export, nil)

		rec := doRequest(rt, http.MethodGet, "/v1/reports/expenses-accounts.xlsx?preset=this_month")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, exporter.ContentType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "expenses-accounts-2025-04-16.xlsx")
		assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
	})

	t.Run("falha ao carregar dados", func(t *testing.T) {
		rt, service := newTestRouter(t, nil)
		service.EXPECT().GetAccountExport(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: %w", insighting.ErrLoadDataset, errors.New("timeout")))

		rec := doRequest(rt, http.MethodGet, "/v1/expenses/accounts")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
	})
}

func TestCronJobs(t *testing.T) {
	t.Run("dispara a verificação de estoque", func(t *testing.T) {
		cron := &fakeCronJob{}
		rt, _ := newTestRouter(t, cron)

		rec := doRequest(rt, http.MethodPost, "/v1/cron/inventory-alerts/run")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, cron.triggered)
	})

	t.Run("execução em andamento", func(t *testing.T) {
		cron := &fakeCronJob{busy: true}
		rt, _ := newTestRouter(t, cron)

		rec := doRequest(rt, http.MethodPost, "/v1/cron/inventory-alerts/run")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceBusy, decodeAPIError(t, rec).Code)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		rt, _ := newTestRouter(t, &fakeCronJob{})

		rec := doRequest(rt, http.MethodPost, "/v1/cron/unknown/run")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("status", func(t *testing.T) {
		rt, _ := newTestRouter(t, &fakeCronJob{})

		rec := doRequest(rt, http.MethodGet, "/v1/cron/status")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"inventory-alerts":{"sync_enabled":true,"triggered":0}}`, rec.Body.String())
	})
}

func TestGetLatestInventorySnapshot(t *testing.T) {
	tests := []struct {
		name         string
		cron         *fakeCronJob
		expectedCode int
		expectedErr  string
	}{
		{
			name: "snapshot salvo",
			cron: &fakeCronJob{snapshot: &domain.InventorySnapshot{
				ID:       "abc",
				Date:     "2025-04-15",
				Critical: []string{"Poulet"},
				Low:      []string{},
			}},
			expectedCode: http.StatusOK,
		},
		{
			name:         "nenhuma verificação ainda",
			cron:         &fakeCronJob{},
			expectedCode: http.StatusNotFound,
			expectedErr:  apiErrors.ErrResourceNotFound,
		},
		{
			name:         "erro no banco",
			cron:         &fakeCronJob{snapshotErr: errors.New("conexão recusada")},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, _ := newTestRouter(t, tt.cron)

			rec := doRequest(rt, http.MethodGet, "/v1/inventory/alerts/latest")

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeAPIError(t, rec).Code)
				return
			}

			var snapshot domain.InventorySnapshot
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
			assert.Equal(t, "abc", snapshot.ID)
			assert.Equal(t, []string{"Poulet"}, snapshot.Critical)
		})
	}
}

func TestHealthcheckAndNotFound(t *testing.T) {
	rt, _ := newTestRouter(t, nil)

	rec := doRequest(rt, http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())

	rec = doRequest(rt, http.MethodGet, "/v1/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeAPIError(t, rec).Code)
}
