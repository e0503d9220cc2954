// Package inventory estima dias de estoque a partir do histórico de compras e consumo
// e classifica cada produto em saudável, baixo ou crítico.
package inventory

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
	"github.com/shopspring/decimal"
)

var ErrInvalidThresholds = errors.New("invalid stock thresholds")

// DefaultThresholds: crítico abaixo de 3 dias, baixo abaixo de 7
func DefaultThresholds() domain.StockThresholds {
	return domain.StockThresholds{CriticalDays: 3, LowDays: 7}
}

func ValidateThresholds(thresholds domain.StockThresholds) error {
	if thresholds.CriticalDays < 0 || thresholds.LowDays < 0 {
		return fmt.Errorf("%w: values must not be negative", ErrInvalidThresholds)
	}
	if thresholds.CriticalDays > thresholds.LowDays {
		return fmt.Errorf("%w: critical (%.2f) greater than low (%.2f)", ErrInvalidThresholds,
			thresholds.CriticalDays, thresholds.LowDays)
	}
	return nil
}

type Classifier struct {
	thresholds domain.StockThresholds
}

func NewClassifier(thresholds domain.StockThresholds) (*Classifier, error) {
	if err := ValidateThresholds(thresholds); err != nil {
		return nil, err
	}
	return &Classifier{thresholds: thresholds}, nil
}

func (c *Classifier) Thresholds() domain.StockThresholds {
	return c.thresholds
}

// Classify calcula o consumo médio pelos dias distintos com registro de uso (não dias corridos).
// Sem consumo os dias de estoque ficam acima do limite de exibição e o status é saudável.
func (c *Classifier) Classify(product string, purchased, used []domain.StockMovement, onHand float64) domain.InventoryItem {
	var purchasedTotal, usedTotal, datedUsed utils.Accumulator
	days := make(map[string]struct{})

	for _, movement := range purchased {
		purchasedTotal.Add(movement.Quantity)
	}

	for _, movement := range used {
		usedTotal.Add(movement.Quantity)
		if movement.Date == nil {
			continue
		}
		datedUsed.Add(movement.Quantity)
		days[utils.DateKey(*movement.Date)] = struct{}{}
	}

	item := domain.InventoryItem{
		Product:   product,
		OnHand:    finiteOrZero(onHand),
		Purchased: purchasedTotal.Float(),
		Used:      usedTotal.Float(),
	}

	item.UsageDays = len(days)
	item.DatedUse = datedUsed.Float()
	item.AvgDailyUse = utils.Ratio(datedUsed.Decimal(), decimal.NewFromInt(int64(item.UsageDays)))

	stock, ok := supply(item)
	if !ok {
		item.DaysOfSupply = domain.UnboundedDaysOfSupply
		item.Unbounded = true
		item.Status = domain.StockHealthy
		return item
	}

	// A média arredondada só é exibida; status e dias usam a razão exata
	item.DaysOfSupply = utils.Ratio(stock.numerator, stock.denominator)
	item.Status = c.status(stock)

	return item
}

// supplyRatio é dias de estoque = numerator / denominator, sem divisão:
// max(onHand, 0) × dias com uso / consumo desses dias
type supplyRatio struct {
	numerator   decimal.Decimal
	denominator decimal.Decimal
}

func supply(item domain.InventoryItem) (supplyRatio, bool) {
	if item.UsageDays > 0 && item.DatedUse > 0 {
		return supplyRatio{
			numerator:   decimal.NewFromFloat(math.Max(item.OnHand, 0)).Mul(decimal.NewFromInt(int64(item.UsageDays))),
			denominator: decimal.NewFromFloat(item.DatedUse),
		}, true
	}
	// Itens montados sem o histórico de uso só têm a média
	if item.AvgDailyUse > 0 && !item.Unbounded {
		return supplyRatio{
			numerator:   decimal.NewFromFloat(math.Max(item.OnHand, 0)),
			denominator: decimal.NewFromFloat(item.AvgDailyUse),
		}, true
	}
	return supplyRatio{}, false
}

// below compara numerator/denominator < limit multiplicando em vez de dividir
func (r supplyRatio) below(limit float64) bool {
	return r.numerator.LessThan(decimal.NewFromFloat(limit).Mul(r.denominator))
}

// wholeDays é o piso da razão, calculado pelo quociente inteiro
func (r supplyRatio) wholeDays() int64 {
	quotient, _ := r.numerator.QuoRem(r.denominator, 0)
	return quotient.IntPart()
}

// status aplica as faixas: crítico < CriticalDays <= baixo < LowDays <= saudável
func (c *Classifier) status(r supplyRatio) domain.StockStatus {
	switch {
	case r.below(c.thresholds.CriticalDays):
		return domain.StockCritical
	case r.below(c.thresholds.LowDays):
		return domain.StockLow
	default:
		return domain.StockHealthy
	}
}

// ComputeAsOf monta um item por produto, na ordem das definições. O saldo vem de todo o
// histórico até a data final; compras, consumo e média diária vêm do recorte do período.
// Compras são despesas com alguma palavra-chave do produto na categoria ou descrição, na
// unidade esperada e com quantidade positiva. O consumo vem dos registros de cozinha.
func (c *Classifier) ComputeAsOf(history, window domain.Dataset, products []domain.ProductDefinition) []domain.InventoryItem {
	items := make([]domain.InventoryItem, 0, len(products))

	for _, product := range products {
		_, _, onHand := movements(history, product)
		purchased, used, _ := movements(window, product)

		item := c.Classify(product.Label, purchased, used, onHand)
		item.ProductKey = product.Key
		items = append(items, item)
	}

	return items
}

// movements retorna entradas, saídas e o saldo (entradas - saídas) de um produto
func movements(dataset domain.Dataset, product domain.ProductDefinition) ([]domain.StockMovement, []domain.StockMovement, float64) {
	var purchased, used []domain.StockMovement
	var purchasedTotal, usedTotal utils.Accumulator

	for _, expense := range dataset.Expenses {
		if !matchesProduct(expense, product) {
			continue
		}
		purchased = append(purchased, domain.StockMovement{Date: expense.Date, Quantity: expense.Quantity})
		purchasedTotal.Add(expense.Quantity)
	}

	for _, record := range dataset.FoodUsage {
		quantity := record.Quantity(product.Key)
		if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
			continue
		}
		used = append(used, domain.StockMovement{Date: record.Date, Quantity: quantity})
		usedTotal.Add(quantity)
	}

	return purchased, used, purchasedTotal.Decimal().Sub(usedTotal.Decimal()).InexactFloat64()
}

func matchesProduct(expense domain.ExpenseRecord, product domain.ProductDefinition) bool {
	if expense.Quantity <= 0 || math.IsNaN(expense.Quantity) || math.IsInf(expense.Quantity, 0) {
		return false
	}
	if product.Unit != "" && !strings.EqualFold(strings.TrimSpace(expense.UnitOfMeasure), product.Unit) {
		return false
	}
	return product.Describes(expense)
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
