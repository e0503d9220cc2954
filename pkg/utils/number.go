package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// SanitizeAmount trata valores negativos, NaN ou infinitos como zero.
// O segundo retorno indica se o valor original era válido.
func SanitizeAmount(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// Accumulator soma valores com precisão decimal, de modo que o total não
// depende da ordem de entrada. Valores inválidos somam zero e são contados.
type Accumulator struct {
	total   decimal.Decimal
	ignored int
}

func (a *Accumulator) Add(v float64) {
	clean, ok := SanitizeAmount(v)
	if !ok {
		a.ignored++
		return
	}
	a.total = a.total.Add(decimal.NewFromFloat(clean))
}

func (a *Accumulator) AddDecimal(d decimal.Decimal) {
	a.total = a.total.Add(d)
}

func (a Accumulator) Decimal() decimal.Decimal {
	return a.total
}

func (a Accumulator) Float() float64 {
	return a.total.InexactFloat64()
}

func (a Accumulator) Ignored() int {
	return a.ignored
}

// Ratio divide com precisão decimal; divisor zero retorna zero
func Ratio(numerator, denominator decimal.Decimal) float64 {
	if denominator.IsZero() {
		return 0
	}
	return numerator.DivRound(denominator, 8).InexactFloat64()
}
