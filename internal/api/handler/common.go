package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/internal/usecases/filtering"
	"github.com/gwr-marine/ops-analytics/internal/usecases/insighting"
	"github.com/gwr-marine/ops-analytics/pkg/apiErrors"
	"github.com/gwr-marine/ops-analytics/pkg/log"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// now é a referência dos períodos pré-definidos
var now = time.Now

// parseFilter lê start, end, preset, client e supplier da query string
func parseFilter(r *http.Request) (domain.Filter, error) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start"))
	if err != nil {
		return domain.Filter{}, apiErrors.APIError{
			Code:    apiErrors.ErrInvalidFormat,
			Message: "Data inicial inválida. Use o formato YYYY-MM-DD",
			Details: map[string]string{"field": "start"},
		}
	}

	endDate, err := utils.ParseDate(query.Get("end"))
	if err != nil {
		return domain.Filter{}, apiErrors.APIError{
			Code:    apiErrors.ErrInvalidFormat,
			Message: "Data final inválida. Use o formato YYYY-MM-DD",
			Details: map[string]string{"field": "end"},
		}
	}

	custom := domain.Filter{
		StartDate:    startDate,
		EndDate:      endDate,
		ClientName:   query.Get("client"),
		SupplierName: query.Get("supplier"),
	}

	return filtering.ResolvePreset(domain.DatePreset(query.Get("preset")), now(), custom)
}

// parseLimit retorna zero quando o parâmetro não foi informado
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, apiErrors.APIError{
			Code:    apiErrors.ErrInvalidFormat,
			Message: "Limite inválido",
			Details: map[string]string{"field": "limit"},
		}
	}
	return limit, nil
}

// writeServiceError converte os erros dos casos de uso em códigos da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var apiErr apiErrors.APIError
	var validationErr *filtering.ValidationError

	switch {
	case errors.As(err, &apiErr):
		logger.Warn(message)
		apiErr.Write(w)
	case errors.As(err, &validationErr):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Error(), map[string]string{
			"field": validationErr.Field,
		})
	case errors.Is(err, insighting.ErrUnknownUsageKind):
		logger.Warn(message)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de consumo inválido. Valores aceitos: drinks, food", nil)
	case errors.Is(err, insighting.ErrLoadDataset), errors.Is(err, insighting.ErrListNames):
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
	default:
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	writeJSONStatus(w, r, http.StatusOK, body)
}

func writeJSONStatus(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}
