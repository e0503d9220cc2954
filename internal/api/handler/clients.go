package handler

import (
	"net/http"

	"github.com/gwr-marine/ops-analytics/internal/usecases/insighting"
)

// ListClients lista os nomes de clientes já normalizados
func ListClients(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		names, err := service.GetClientNames(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "clients: erro ao listar clientes")
			return
		}

		writeJSON(w, r, names)
	})
}

func GetTopClients(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			writeServiceError(w, r, err, "top-clients: filtro inválido")
			return
		}

		limit, err := parseLimit(r)
		if err != nil {
			writeServiceError(w, r, err, "top-clients: limite inválido")
			return
		}

		rows, err := service.GetTopClients(r.Context(), filter, limit)
		if err != nil {
			writeServiceError(w, r, err, "top-clients: erro ao montar ranking")
			return
		}

		writeJSON(w, r, rows)
	})
}

// SuggestNames alimenta o autocomplete de clientes e fornecedores
func SuggestNames(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		matches, err := service.SuggestNames(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeServiceError(w, r, err, "names: erro ao buscar sugestões")
			return
		}

		writeJSON(w, r, matches)
	})
}
