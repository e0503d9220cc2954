package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gwr-marine/ops-analytics/internal/exporter"
	"github.com/gwr-marine/ops-analytics/internal/usecases/insighting"
	"github.com/gwr-marine/ops-analytics/pkg/apiErrors"
	"github.com/gwr-marine/ops-analytics/pkg/log"
)

// GetDashboard retorna todas as visões do painel para o filtro da query string
func GetDashboard(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := parseFilter(r)
		if err != nil {
			writeServiceError(w, r, err, "dashboard: filtro inválido")
			return
		}

		view, err := service.GetDashboard(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "dashboard: erro ao calcular painel")
			return
		}

		logger.WithFields(log.Fields{
			"client":   filter.ClientName,
			"supplier": filter.SupplierName,
		}).Debug("dashboard: painel calculado")

		writeJSON(w, r, view)
	})
}

// ExportDashboard devolve o painel como planilha xlsx
func ExportDashboard(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			writeServiceError(w, r, err, "dashboard-export: filtro inválido")
			return
		}

		view, err := service.GetDashboard(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "dashboard-export: erro ao calcular painel")
			return
		}

		file, err := exporter.BuildDashboard(view)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard-export: erro ao montar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}
		defer file.Close()

		filename := fmt.Sprintf("dashboard-%s.xlsx", now().Format(time.DateOnly))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
		w.Header().Set("Content-Type", exporter.ContentType)

		if err := file.Write(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard-export: erro ao escrever planilha")
		}
	})
}
