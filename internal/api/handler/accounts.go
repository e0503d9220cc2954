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

// GetAccountExport lista as despesas do período com a conta contábil de cada fornecedor
func GetAccountExport(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseFilter(r)
		if err != nil {
			writeServiceError(w, r, err, "account-export: filtro inválido")
			return
		}

		export, err := service.GetAccountExport(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "account-export: erro ao montar exportação")
			return
		}

		writeJSON(w, r, export)
	})
}

// DownloadAccountExport devolve a mesma exportação como planilha xlsx
func DownloadAccountExport(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := parseFilter(r)
		if err != nil {
			writeServiceError(w, r, err, "account-export: filtro inválido")
			return
		}

		export, err := service.GetAccountExport(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "account-export: erro ao montar exportação")
			return
		}

		file, err := exporter.BuildAccountExport(export)
		if err != nil {
			logger.WithError(err).Error("account-export: erro ao montar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}
		defer file.Close()

		filename := fmt.Sprintf("expenses-accounts-%s.xlsx", now().Format(time.DateOnly))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
		w.Header().Set("Content-Type", exporter.ContentType)

		if err := file.Write(w); err != nil {
			logger.WithError(err).Error("account-export: erro ao escrever planilha")
		}
	})
}
