package domain

import "time"

// Filter restringe as coleções por intervalo de datas (inclusivo) e por nome.
// Datas nil significam intervalo aberto naquele lado.
type Filter struct {
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	ClientName   string     `json:"client_name,omitempty"`
	SupplierName string     `json:"supplier_name,omitempty"`
}

// Bounded indica se o filtro tem início e fim definidos
func (f Filter) Bounded() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// Unbounded indica se o filtro não restringe datas
func (f Filter) Unbounded() bool {
	return f.StartDate == nil && f.EndDate == nil
}

type DatePreset string

const (
	PresetThisMonth    DatePreset = "this_month"
	PresetLastMonth    DatePreset = "last_month"
	PresetLast3Months  DatePreset = "last_3_months"
	PresetAllTime      DatePreset = "all_time"
	PresetCustomPeriod DatePreset = "custom"
)
