// Package kpi calcula os totais do período filtrado e a variação contra o
// período anterior de mesmo tamanho.
package kpi

import (
	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/internal/usecases/filtering"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
	"github.com/shopspring/decimal"
)

type Aggregator struct {
	engine *filtering.Engine
}

func NewAggregator(engine *filtering.Engine) *Aggregator {
	return &Aggregator{engine: engine}
}

type periodTotals struct {
	revenue  utils.Accumulator
	expenses utils.Accumulator
	net      utils.Accumulator
	vat      utils.Accumulator
	orders   int
	ignored  int
}

// Compute recebe o dataset completo para conseguir recortar também o período anterior
func (a *Aggregator) Compute(dataset domain.Dataset, filter domain.Filter) (*domain.KPISet, error) {
	current, err := a.engine.Apply(dataset, filter)
	if err != nil {
		return nil, err
	}

	totals := sumPeriod(current)
	revenue := totals.revenue.Decimal()
	profit := revenue.Sub(totals.expenses.Decimal())

	kpis := &domain.KPISet{
		TotalRevenue:   revenue.InexactFloat64(),
		TotalExpenses:  totals.expenses.Float(),
		TotalNet:       totals.net.Float(),
		TotalVAT:       totals.vat.Float(),
		ProfitLoss:     profit.InexactFloat64(),
		ProfitMargin:   utils.Ratio(profit.Mul(decimal.NewFromInt(100)), revenue),
		OrderCount:     totals.orders,
		AvgOrderValue:  utils.Ratio(revenue, decimal.NewFromInt(int64(totals.orders))),
		IgnoredRecords: totals.ignored,
	}

	previousFilter, ok := PreviousPeriod(filter)
	if !ok {
		kpis.NoBaseline = true
		return kpis, nil
	}

	previousDataset, err := a.engine.Apply(dataset, previousFilter)
	if err != nil {
		return nil, err
	}
	previous := sumPeriod(previousDataset)

	kpis.RevenueTrend = CalculateTrend(kpis.TotalRevenue, previous.revenue.Float(), domain.HigherIsBetter)
	kpis.ExpenseTrend = CalculateTrend(kpis.TotalExpenses, previous.expenses.Float(), domain.LowerIsBetter)
	kpis.OrderTrend = CalculateTrend(float64(totals.orders), float64(previous.orders), domain.HigherIsBetter)

	return kpis, nil
}

// PreviousPeriod retorna os N dias de calendário que terminam na véspera do início do filtro,
// onde N é o tamanho do período filtrado. Sem início e fim não há base de comparação.
func PreviousPeriod(filter domain.Filter) (domain.Filter, bool) {
	if !filter.Bounded() {
		return domain.Filter{}, false
	}

	days := utils.DaysInclusive(*filter.StartDate, *filter.EndDate)
	end := utils.CalendarDate(*filter.StartDate).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(days - 1))

	return domain.Filter{
		StartDate:    &start,
		EndDate:      &end,
		ClientName:   filter.ClientName,
		SupplierName: filter.SupplierName,
	}, true
}

func sumPeriod(dataset domain.Dataset) periodTotals {
	var totals periodTotals

	for _, expense := range dataset.Expenses {
		total, totalOK := utils.SanitizeAmount(expense.TotalAmount)
		net, netOK := utils.SanitizeAmount(expense.NetAmount)
		vat, vatOK := utils.SanitizeAmount(expense.VATAmount)
		if !totalOK || !netOK || !vatOK {
			totals.ignored++
		}

		totals.expenses.Add(total)
		totals.net.Add(net)
		totals.vat.Add(vat)
	}

	for _, line := range dataset.Lines {
		lineTotal, ok := utils.SanitizeAmount(line.LineTotal)
		if !ok {
			totals.ignored++
		}
		totals.revenue.Add(lineTotal)
	}

	totals.orders = len(dataset.Orders)

	return totals
}
