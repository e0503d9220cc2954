// Package ranking monta as tabelas ordenadas de clientes, fornecedores e itens do cardápio.
package ranking

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/internal/usecases/normalizing"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
	"github.com/shopspring/decimal"
)

type Builder struct {
	normalizer normalizing.NameNormalizer
}

func NewBuilder(normalizer normalizing.NameNormalizer) *Builder {
	return &Builder{normalizer: normalizer}
}

type entityAggregate struct {
	name  string
	ids   map[string]struct{}
	total utils.Accumulator
}

func newEntityAggregate(name string) *entityAggregate {
	return &entityAggregate{name: name, ids: make(map[string]struct{})}
}

// TopClients agrupa os pedidos pelo nome normalizado do cliente. A receita de cada
// pedido é a soma das suas linhas; pedidos sem linhas contam com receita zero.
func (b *Builder) TopClients(orders []domain.RevenueOrder, lines []domain.RevenueLine, limit int) []domain.TopClientRow {
	if limit <= 0 {
		return []domain.TopClientRow{}
	}

	revenueByOrder := make(map[string]*utils.Accumulator, len(orders))
	for _, line := range lines {
		acc, ok := revenueByOrder[line.OrderID]
		if !ok {
			acc = &utils.Accumulator{}
			revenueByOrder[line.OrderID] = acc
		}
		acc.Add(line.LineTotal)
	}

	clients := make(map[string]*entityAggregate)
	for _, order := range orders {
		name := b.normalizer.Normalize(order.ClientName)

		client, ok := clients[name]
		if !ok {
			client = newEntityAggregate(name)
			clients[name] = client
		}

		if _, counted := client.ids[order.ID]; counted {
			continue
		}
		client.ids[order.ID] = struct{}{}

		if revenue, ok := revenueByOrder[order.ID]; ok {
			client.total.AddDecimal(revenue.Decimal())
		}
	}

	ranked := sortAggregates(clients)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	rows := make([]domain.TopClientRow, 0, len(ranked))
	for i, client := range ranked {
		orderCount := len(client.ids)
		rows = append(rows, domain.TopClientRow{
			Rank:          i + 1,
			ClientName:    client.name,
			OrderCount:    orderCount,
			TotalRevenue:  client.total.Float(),
			AvgOrderValue: utils.Ratio(client.total.Decimal(), decimal.NewFromInt(int64(orderCount))),
		})
	}

	return rows
}

// TopSuppliers ordena os fornecedores (nome normalizado) pelo valor total das despesas
func (b *Builder) TopSuppliers(expenses []domain.ExpenseRecord, limit int) []domain.TopSupplierRow {
	if limit <= 0 {
		return []domain.TopSupplierRow{}
	}

	suppliers := make(map[string]*entityAggregate)
	for i, expense := range expenses {
		name := b.normalizer.Normalize(expense.SupplierName)

		supplier, ok := suppliers[name]
		if !ok {
			supplier = newEntityAggregate(name)
			suppliers[name] = supplier
		}

		id := expense.ID
		if id == "" {
			id = "#" + strconv.Itoa(i)
		}
		if _, counted := supplier.ids[id]; counted {
			continue
		}
		supplier.ids[id] = struct{}{}
		supplier.total.Add(expense.TotalAmount)
	}

	ranked := sortAggregates(suppliers)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	rows := make([]domain.TopSupplierRow, 0, len(ranked))
	for i, supplier := range ranked {
		rows = append(rows, domain.TopSupplierRow{
			Rank:         i + 1,
			SupplierName: supplier.name,
			ExpenseCount: len(supplier.ids),
			TotalAmount:  supplier.total.Float(),
		})
	}

	return rows
}

// MenuPerformance soma receita e quantidade por item do cardápio.
// Ordena por receita, depois quantidade, depois nome.
func MenuPerformance(lines []domain.RevenueLine) []domain.MenuItemRow {
	type menuAggregate struct {
		revenue  utils.Accumulator
		quantity utils.Accumulator
	}

	items := make(map[string]*menuAggregate)
	for _, line := range lines {
		name := strings.TrimSpace(line.MenuItem)
		item, ok := items[name]
		if !ok {
			item = &menuAggregate{}
			items[name] = item
		}
		item.revenue.Add(line.LineTotal)
		item.quantity.Add(line.Quantity)
	}

	rows := make([]domain.MenuItemRow, 0, len(items))
	for name, item := range items {
		rows = append(rows, domain.MenuItemRow{
			MenuItem: name,
			Quantity: item.quantity.Float(),
			Revenue:  item.revenue.Float(),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		if rows[i].Quantity != rows[j].Quantity {
			return rows[i].Quantity > rows[j].Quantity
		}
		return rows[i].MenuItem < rows[j].MenuItem
	})

	return rows
}

// sortAggregates ordena por total decrescente e, no empate, por nome crescente
func sortAggregates(aggregates map[string]*entityAggregate) []*entityAggregate {
	sorted := make([]*entityAggregate, 0, len(aggregates))
	for _, aggregate := range aggregates {
		sorted = append(sorted, aggregate)
	}

	sort.Slice(sorted, func(i, j int) bool {
		if cmp := sorted[i].total.Decimal().Cmp(sorted[j].total.Decimal()); cmp != 0 {
			return cmp > 0
		}
		return sorted[i].name < sorted[j].name
	})

	return sorted
}
