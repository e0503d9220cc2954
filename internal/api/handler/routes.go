package handler

import (
	"net/http"

	"github.com/gwr-marine/ops-analytics/internal/api/handler/router"
	"github.com/gwr-marine/ops-analytics/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/reports/dashboard.xlsx",
			Method:  http.MethodGet,
			Handler: ExportDashboard(service),
		},
	}
}

func Clients(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(service),
		},
		{
			Path:    "/v1/clients/top",
			Method:  http.MethodGet,
			Handler: GetTopClients(service),
		},
		{
			Path:    "/v1/names/suggest",
			Method:  http.MethodGet,
			Handler: SuggestNames(service),
		},
	}
}

func Inventory(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/inventory",
			Method:  http.MethodGet,
			Handler: GetInventory(service),
		},
		{
			Path:    "/v1/inventory/recommendations",
			Method:  http.MethodGet,
			Handler: GetOrderRecommendations(service),
		},
	}
}

func Consumption(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/consumption/:kind",
			Method:  http.MethodGet,
			Handler: GetConsumption(service),
		},
		{
			Path:    "/v1/costs/:kind",
			Method:  http.MethodGet,
			Handler: GetCosts(service),
		},
	}
}

func Accounts(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/expenses/accounts",
			Method:  http.MethodGet,
			Handler: GetAccountExport(service),
		},
		{
			Path:    "/v1/reports/expenses-accounts.xlsx",
			Method:  http.MethodGet,
			Handler: DownloadAccountExport(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

func InventoryAlerts(job InventoryAlertsJob) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/inventory/alerts/latest",
			Method:  http.MethodGet,
			Handler: GetLatestInventorySnapshot(job),
		},
	}
}
