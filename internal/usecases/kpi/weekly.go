package kpi

import (
	"sort"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
)

// WeeklyRevenue agrupa a receita dos pedidos pela semana (domingo a sábado), em ordem crescente.
// Pedidos sem linhas entram com o total digitado no próprio pedido.
func WeeklyRevenue(orders []domain.RevenueOrder, lines []domain.RevenueLine) []domain.WeeklyPoint {
	revenueByOrder := make(map[string]*utils.Accumulator, len(orders))
	for _, line := range lines {
		acc, ok := revenueByOrder[line.OrderID]
		if !ok {
			acc = &utils.Accumulator{}
			revenueByOrder[line.OrderID] = acc
		}
		acc.Add(line.LineTotal)
	}

	weeks := make(map[string]*utils.Accumulator)
	for _, order := range orders {
		if order.Date == nil {
			continue
		}

		key := utils.DateKey(utils.WeekStart(*order.Date))
		acc, ok := weeks[key]
		if !ok {
			acc = &utils.Accumulator{}
			weeks[key] = acc
		}

		if lines, ok := revenueByOrder[order.ID]; ok {
			acc.AddDecimal(lines.Decimal())
		} else {
			acc.Add(order.TotalRevenue)
		}
	}

	keys := make([]string, 0, len(weeks))
	for key := range weeks {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	series := make([]domain.WeeklyPoint, 0, len(keys))
	for _, key := range keys {
		series = append(series, domain.WeeklyPoint{WeekStart: key, Revenue: weeks[key].Float()})
	}

	return series
}
