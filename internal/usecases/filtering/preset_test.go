package filtering

import (
	"errors"
	"testing"
	"time"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePreset(t *testing.T) {
	now := time.Date(2025, 3, 18, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		preset        domain.DatePreset
		custom        domain.Filter
		expectedStart *time.Time
		expectedEnd   *time.Time
	}{
		{name: "Este mês", preset: domain.PresetThisMonth, expectedStart: datePtr(2025, 3, 1), expectedEnd: datePtr(2025, 3, 18)},
		{name: "Mês passado", preset: domain.PresetLastMonth, expectedStart: datePtr(2025, 2, 1), expectedEnd: datePtr(2025, 2, 28)},
		{name: "Últimos 3 meses", preset: domain.PresetLast3Months, expectedStart: datePtr(2025, 1, 1), expectedEnd: datePtr(2025, 3, 18)},
		{name: "Todo o período", preset: domain.PresetAllTime},
		{
			name:          "Personalizado",
			preset:        domain.PresetCustomPeriod,
			custom:        domain.Filter{StartDate: datePtr(2024, 12, 1), EndDate: datePtr(2024, 12, 24)},
			expectedStart: datePtr(2024, 12, 1),
			expectedEnd:   datePtr(2024, 12, 24),
		},
		{
			name:          "Sem preset usa o período informado",
			custom:        domain.Filter{StartDate: datePtr(2024, 12, 1)},
			expectedStart: datePtr(2024, 12, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.custom.ClientName = "Blue Safari"

			filter, err := ResolvePreset(tt.preset, now, tt.custom)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStart, filter.StartDate)
			assert.Equal(t, tt.expectedEnd, filter.EndDate)
			assert.Equal(t, "Blue Safari", filter.ClientName)
		})
	}
}

func TestResolvePreset_LastMonthAcrossYear(t *testing.T) {
	filter, err := ResolvePreset(domain.PresetLastMonth, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), domain.Filter{})

	require.NoError(t, err)
	assert.Equal(t, datePtr(2024, 12, 1), filter.StartDate)
	assert.Equal(t, datePtr(2024, 12, 31), filter.EndDate)
}

func TestResolvePreset_Errors(t *testing.T) {
	now := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)

	_, err := ResolvePreset("next_year", now, domain.Filter{})
	assert.True(t, errors.Is(err, ErrUnknownPreset))

	_, err = ResolvePreset(domain.PresetCustomPeriod, now, domain.Filter{StartDate: datePtr(2025, 3, 2), EndDate: datePtr(2025, 3, 1)})
	assert.True(t, errors.Is(err, ErrInvalidDateRange))
}
