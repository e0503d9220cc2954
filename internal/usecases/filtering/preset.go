package filtering

import (
	"time"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
)

// ResolvePreset converte um período pré-definido em datas, usando now como referência.
// Os nomes de cliente e fornecedor de custom são preservados em todos os casos.
func ResolvePreset(preset domain.DatePreset, now time.Time, custom domain.Filter) (domain.Filter, error) {
	today := utils.CalendarDate(now)
	firstOfMonth := utils.FirstDayOfMonth(today)

	resolved := domain.Filter{
		ClientName:   custom.ClientName,
		SupplierName: custom.SupplierName,
	}

	switch preset {
	case domain.PresetThisMonth:
		resolved.StartDate, resolved.EndDate = &firstOfMonth, &today
	case domain.PresetLastMonth:
		start := firstOfMonth.AddDate(0, -1, 0)
		end := firstOfMonth.AddDate(0, 0, -1)
		resolved.StartDate, resolved.EndDate = &start, &end
	case domain.PresetLast3Months:
		start := firstOfMonth.AddDate(0, -2, 0)
		resolved.StartDate, resolved.EndDate = &start, &today
	case domain.PresetAllTime:
	case domain.PresetCustomPeriod, "":
		resolved.StartDate, resolved.EndDate = custom.StartDate, custom.EndDate
		if err := validateRange(resolved); err != nil {
			return domain.Filter{}, err
		}
	default:
		return domain.Filter{}, newValidationError(ErrUnknownPreset, "preset", string(preset))
	}

	return resolved, nil
}
