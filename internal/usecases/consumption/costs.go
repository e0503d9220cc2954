package consumption

import (
	"sort"
	"strings"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
	"github.com/shopspring/decimal"
)

// costItem valoriza uma quantidade pelo preço amount/volume
type costItem struct {
	key      string
	quantity func(domain.UsageRecord) float64
	amount   decimal.Decimal
	volume   decimal.Decimal
}

func (i costItem) cost(quantity decimal.Decimal) decimal.Decimal {
	if i.volume.IsZero() {
		return decimal.Zero
	}
	return quantity.Mul(i.amount).DivRound(i.volume, 8)
}

// DailyFoodCosts valoriza o consumo da cozinha pelo custo médio ponderado por kg de cada
// produto, calculado sobre as compras em kg com quantidade positiva.
func DailyFoodCosts(expenses []domain.ExpenseRecord, usage []domain.UsageRecord, products []domain.ProductDefinition) domain.CostReport {
	items := make([]costItem, 0, len(products))
	for _, product := range products {
		var amount, kg utils.Accumulator
		for _, expense := range expenses {
			if expense.Quantity <= 0 || !strings.EqualFold(strings.TrimSpace(expense.UnitOfMeasure), "kg") {
				continue
			}
			if !product.Describes(expense) {
				continue
			}
			amount.Add(expense.NetAmount)
			kg.Add(expense.Quantity)
		}

		items = append(items, costItem{
			key:      product.Key,
			quantity: Field(product.Key),
			amount:   amount.Decimal(),
			volume:   kg.Decimal(),
		})
	}

	return dailyCosts(usage, items)
}

// DailyDrinksCosts valoriza as garrafas consumidas pelo preço padrão de cada categoria
func DailyDrinksCosts(usage []domain.UsageRecord, categories []domain.CategoryDefinition) domain.CostReport {
	items := make([]costItem, 0, len(categories))
	for _, category := range categories {
		unitCost, _ := utils.SanitizeAmount(category.UnitCost)
		items = append(items, costItem{
			key:      category.Key,
			quantity: category.Quantity,
			amount:   decimal.NewFromFloat(unitCost),
			volume:   decimal.NewFromInt(1),
		})
	}

	return dailyCosts(usage, items)
}

func dailyCosts(usage []domain.UsageRecord, items []costItem) domain.CostReport {
	report := domain.CostReport{
		Rows:      make([]domain.DailyCostRow, 0, len(usage)),
		UnitCosts: make(map[string]float64, len(items)),
		Totals:    make(map[string]float64, len(items)),
	}

	totals := make([]utils.Accumulator, len(items))
	var grand utils.Accumulator

	for _, record := range usage {
		row := domain.DailyCostRow{Items: make([]domain.CostLine, 0, len(items))}
		if record.Date != nil {
			row.Date = utils.DateKey(*record.Date)
		}

		var rowTotal utils.Accumulator
		for i, item := range items {
			var quantity float64
			if item.quantity != nil {
				var ok bool
				if quantity, ok = utils.SanitizeAmount(item.quantity(record)); !ok {
					report.IgnoredRecords++
				}
			}

			cost := item.cost(decimal.NewFromFloat(quantity))
			totals[i].AddDecimal(cost)
			rowTotal.AddDecimal(cost)

			row.Items = append(row.Items, domain.CostLine{
				Key:      item.key,
				Quantity: quantity,
				Cost:     cost.InexactFloat64(),
			})
		}

		row.TotalCost = rowTotal.Float()
		grand.AddDecimal(rowTotal.Decimal())
		report.Rows = append(report.Rows, row)
	}

	// Mais recente primeiro; registros sem data vão para o fim
	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Date > report.Rows[j].Date
	})

	for i, item := range items {
		report.UnitCosts[item.key] = utils.Ratio(item.amount, item.volume)
		report.Totals[item.key] = totals[i].Float()
	}
	report.GrandTotal = grand.Float()

	return report
}

// ClassifyDrinksExpense identifica o grupo de bebidas da despesa pela categoria e, na falta
// dela, por termos da descrição. Retorna vazio quando a despesa não é de bebidas.
func ClassifyDrinksExpense(expense domain.ExpenseRecord) string {
	switch strings.ToLower(strings.TrimSpace(expense.Category)) {
	case "beer & soft drinks":
		return domain.DrinksBeerSoft
	case "wine & rhum":
		return domain.DrinksWineRhum
	}

	description := strings.ToLower(expense.Description)
	if containsAny(description, "coca", "sprite", "beer", "soft drink", "soda") {
		return domain.DrinksBeerSoft
	}
	if containsAny(description, "wine", "rhum", "rum", "rosé", "rose", "blanc", "vin") {
		return domain.DrinksWineRhum
	}
	return ""
}

// IngredientPurchases lista as despesas de produtos da cozinha, em qualquer unidade
func IngredientPurchases(expenses []domain.ExpenseRecord, products []domain.ProductDefinition) []domain.PurchaseRow {
	return purchases(expenses, func(expense domain.ExpenseRecord) string {
		for _, product := range products {
			if product.Describes(expense) {
				return product.Key
			}
		}
		return ""
	})
}

// DrinksPurchases lista as despesas de bebidas com o grupo de cada uma
func DrinksPurchases(expenses []domain.ExpenseRecord) []domain.PurchaseRow {
	return purchases(expenses, ClassifyDrinksExpense)
}

func purchases(expenses []domain.ExpenseRecord, group func(domain.ExpenseRecord) string) []domain.PurchaseRow {
	rows := make([]domain.PurchaseRow, 0)
	for _, expense := range expenses {
		key := group(expense)
		if key == "" {
			continue
		}

		row := domain.PurchaseRow{
			ExpenseID:     expense.ID,
			Description:   expense.Description,
			SupplierName:  expense.SupplierName,
			Quantity:      expense.Quantity,
			UnitOfMeasure: expense.UnitOfMeasure,
			NetAmount:     expense.NetAmount,
			Category:      expense.Category,
			Group:         key,
		}
		if strings.TrimSpace(row.SupplierName) == "" {
			row.SupplierName = domain.UnknownSupplier
		}
		if expense.Date != nil {
			row.Date = utils.DateKey(*expense.Date)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date > rows[j].Date
	})

	return rows
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
