// Package filtering recorta as coleções do dataset por período e por nome
// normalizado de cliente ou fornecedor.
package filtering

import (
	"sort"
	"strings"
	"time"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/internal/usecases/normalizing"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
)

type Engine struct {
	normalizer normalizing.NameNormalizer
}

func NewEngine(normalizer normalizing.NameNormalizer) *Engine {
	return &Engine{normalizer: normalizer}
}

// Validate falha quando o início do período é posterior ao fim
func (e *Engine) Validate(filter domain.Filter) error {
	return validateRange(filter)
}

func validateRange(filter domain.Filter) error {
	if filter.Bounded() && utils.CalendarDate(*filter.StartDate).After(utils.CalendarDate(*filter.EndDate)) {
		return newValidationError(ErrInvalidDateRange, "start_date",
			filter.StartDate.Format(time.DateOnly)+" > "+filter.EndDate.Format(time.DateOnly))
	}
	return nil
}

// Apply devolve um novo dataset com os registros que passam pelo filtro.
// Linhas de receita seguem o destino do pedido a que pertencem.
func (e *Engine) Apply(dataset domain.Dataset, filter domain.Filter) (domain.Dataset, error) {
	if err := e.Validate(filter); err != nil {
		return domain.Dataset{}, err
	}

	client := e.normalizer.Normalize(filter.ClientName)
	supplier := e.normalizer.Normalize(filter.SupplierName)

	if filter.Unbounded() && client == "" && supplier == "" {
		return dataset, nil
	}

	window := newDateWindow(filter)

	expenses := make([]domain.ExpenseRecord, 0, len(dataset.Expenses))
	for _, expense := range dataset.Expenses {
		if !window.contains(expense.Date) {
			continue
		}
		if supplier != "" && e.normalizer.Normalize(expense.SupplierName) != supplier {
			continue
		}
		expenses = append(expenses, expense)
	}

	orders := make([]domain.RevenueOrder, 0, len(dataset.Orders))
	kept := make(map[string]struct{}, len(dataset.Orders))
	for _, order := range dataset.Orders {
		if !window.contains(order.Date) {
			continue
		}
		if client != "" && e.normalizer.Normalize(order.ClientName) != client {
			continue
		}
		orders = append(orders, order)
		kept[order.ID] = struct{}{}
	}

	lines := make([]domain.RevenueLine, 0, len(dataset.Lines))
	for _, line := range dataset.Lines {
		if _, ok := kept[line.OrderID]; ok {
			lines = append(lines, line)
		}
	}

	return domain.Dataset{
		Expenses:    expenses,
		Orders:      orders,
		Lines:       lines,
		FoodUsage:   filterUsage(dataset.FoodUsage, window),
		DrinksUsage: filterUsage(dataset.DrinksUsage, window),
	}, nil
}

// UniqueClientNames retorna os nomes normalizados dos clientes dos pedidos, sem repetição, em ordem alfabética
func (e *Engine) UniqueClientNames(orders []domain.RevenueOrder) []string {
	raw := make([]string, 0, len(orders))
	for _, order := range orders {
		raw = append(raw, order.ClientName)
	}
	return e.UniqueNames(raw)
}

// UniqueNames normaliza os nomes (ex: vindos do banco), sem repetição, em ordem alfabética
func (e *Engine) UniqueNames(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	names := make([]string, 0, len(raw))

	for _, name := range raw {
		normalized := e.normalizer.Normalize(name)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		names = append(names, normalized)
	}

	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})

	return names
}

func filterUsage(records []domain.UsageRecord, window dateWindow) []domain.UsageRecord {
	if window.open() {
		return records
	}

	filtered := make([]domain.UsageRecord, 0, len(records))
	for _, record := range records {
		if window.contains(record.Date) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// dateWindow compara apenas a data de calendário, com as pontas inclusivas
type dateWindow struct {
	start *time.Time
	end   *time.Time
}

func newDateWindow(filter domain.Filter) dateWindow {
	var window dateWindow
	if filter.StartDate != nil {
		start := utils.CalendarDate(*filter.StartDate)
		window.start = &start
	}
	if filter.EndDate != nil {
		end := utils.CalendarDate(*filter.EndDate)
		window.end = &end
	}
	return window
}

func (w dateWindow) open() bool {
	return w.start == nil && w.end == nil
}

// contains descarta registros sem data somente quando há algum limite definido
func (w dateWindow) contains(date *time.Time) bool {
	if w.open() {
		return true
	}
	if date == nil {
		return false
	}

	day := utils.CalendarDate(*date)
	if w.start != nil && day.Before(*w.start) {
		return false
	}
	if w.end != nil && day.After(*w.end) {
		return false
	}
	return true
}
