package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/internal/usecases/insighting"
)

func GetInventory(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			writeServiceError(w, r, err, "inventory: filtro inválido")
			return
		}

		items, err := service.GetInventory(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "inventory: erro ao classificar estoque")
			return
		}

		writeJSON(w, r, items)
	})
}

func GetOrderRecommendations(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			writeServiceError(w, r, err, "recommendations: filtro inválido")
			return
		}

		recommendations, err := service.GetOrderRecommendations(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "recommendations: erro ao sugerir compras")
			return
		}

		writeJSON(w, r, recommendations)
	})
}

// GetConsumption resume o consumo de bebidas (drinks) ou cozinha (food)
func GetConsumption(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := domain.UsageKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))

		filter, err := parseFilter(r)
		if err != nil {
			writeServiceError(w, r, err, "consumption: filtro inválido")
			return
		}

		rows, err := service.GetConsumption(r.Context(), filter, kind)
		if err != nil {
			writeServiceError(w, r, err, "consumption: erro ao resumir consumo")
			return
		}

		writeJSON(w, r, rows)
	})
}

// GetCosts valoriza o consumo diário de bebidas (drinks) ou cozinha (food)
func GetCosts(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := domain.UsageKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))

		filter, err := parseFilter(r)
		if err != nil {
			writeServiceError(w, r, err, "costs: filtro inválido")
			return
		}

		view, err := service.GetCosts(r.Context(), filter, kind)
		if err != nil {
			writeServiceError(w, r, err, "costs: erro ao calcular custos")
			return
		}

		writeJSON(w, r, view)
	})
}
