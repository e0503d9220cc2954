package kpi

import (
	"sort"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
)

// MonthlySeries agrupa receita (soma das linhas pelo mês do pedido) e despesas por mês, em ordem crescente.
// Registros sem data ficam de fora do gráfico.
func MonthlySeries(dataset domain.Dataset) []domain.MonthlyPoint {
	revenueByOrder := make(map[string]*utils.Accumulator, len(dataset.Orders))
	for _, line := range dataset.Lines {
		acc, ok := revenueByOrder[line.OrderID]
		if !ok {
			acc = &utils.Accumulator{}
			revenueByOrder[line.OrderID] = acc
		}
		acc.Add(line.LineTotal)
	}

	revenueByMonth := make(map[string]*utils.Accumulator)
	expensesByMonth := make(map[string]*utils.Accumulator)
	months := make(map[string]struct{})

	bucket := func(buckets map[string]*utils.Accumulator, month string) *utils.Accumulator {
		acc, ok := buckets[month]
		if !ok {
			acc = &utils.Accumulator{}
			buckets[month] = acc
		}
		months[month] = struct{}{}
		return acc
	}

	for _, order := range dataset.Orders {
		if order.Date == nil {
			continue
		}
		acc := bucket(revenueByMonth, utils.MonthKey(*order.Date))
		if lines, ok := revenueByOrder[order.ID]; ok {
			acc.AddDecimal(lines.Decimal())
		}
	}

	for _, expense := range dataset.Expenses {
		if expense.Date == nil {
			continue
		}
		bucket(expensesByMonth, utils.MonthKey(*expense.Date)).Add(expense.TotalAmount)
	}

	keys := make([]string, 0, len(months))
	for month := range months {
		keys = append(keys, month)
	}
	sort.Strings(keys)

	series := make([]domain.MonthlyPoint, 0, len(keys))
	for _, month := range keys {
		point := domain.MonthlyPoint{Month: month}
		if acc, ok := revenueByMonth[month]; ok {
			point.Revenue = acc.Float()
		}
		if acc, ok := expensesByMonth[month]; ok {
			point.Expenses = acc.Float()
		}
		series = append(series, point)
	}

	return series
}
