// Package finance provides the loan and investment math used alongside a
// price prediction: EMI, rental yield, and an affordability check. All
// functions are pure and perform no I/O.
package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// YieldTier classifies a rental yield into the investment bands shown to the
// user: below 3% is Low, 3–5% Average, 5% and above High.
type YieldTier int

const (
	YieldLow YieldTier = iota
	YieldAverage
	YieldHigh
)

func (t YieldTier) String() string {
	return [...]string{"Low", "Average", "High"}[t]
}

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
	three   = decimal.NewFromInt(3)
	five    = decimal.NewFromInt(5)
)

// EMI returns the monthly amortized payment for a loan of the given
// principal at a fixed annual percentage rate over tenureYears, using the
// standard annuity formula. A 0% rate degenerates the formula to a straight
// division of principal over the number of installments.
func EMI(principal, annualRatePct float64, tenureYears int) float64 {
	n := tenureYears * 12
	if annualRatePct == 0 {
		return round2(principal / float64(n))
	}

	r := annualRatePct / 1200
	factor := math.Pow(1+r, float64(n))
	return round2(principal * r * factor / (factor - 1))
}

// RentalYield returns the annualized rent as a percentage of the purchase
// price, rounded to 2 decimals, together with its tier. The ratio is computed
// in decimal arithmetic so that exact inputs yield exact percentages.
func RentalYield(purchasePrice, monthlyRent float64) (float64, YieldTier) {
	yield := decimal.NewFromFloat(monthlyRent).
		Mul(twelve).
		Div(decimal.NewFromFloat(purchasePrice)).
		Mul(hundred)

	tier := YieldHigh
	switch {
	case yield.LessThan(three):
		tier = YieldLow
	case yield.LessThan(five):
		tier = YieldAverage
	}

	return yield.Round(2).InexactFloat64(), tier
}

// MaxAffordableEMI returns the 35%-of-income ceiling used by the
// affordability rule.
func MaxAffordableEMI(monthlyIncome float64) float64 {
	return decimal.NewFromFloat(monthlyIncome).
		Mul(decimal.NewFromInt(35)).
		Div(hundred).
		Round(2).
		InexactFloat64()
}

// Affordable reports whether the EMI fits within 35% of monthly income.
// The boundary is compared exactly: an EMI of precisely 35% still passes.
func Affordable(monthlyIncome, emi float64) bool {
	ceiling := decimal.NewFromFloat(monthlyIncome).Mul(decimal.NewFromInt(35)).Div(hundred)
	return decimal.NewFromFloat(emi).LessThanOrEqual(ceiling)
}

// SuggestedMonthlyRent estimates a market rent at 3% of the purchase price
// annually, the default pre-filled for the yield calculator.
func SuggestedMonthlyRent(purchasePrice float64) float64 {
	return decimal.NewFromFloat(purchasePrice).
		Mul(three).
		Div(hundred).
		Div(twelve).
		Round(2).
		InexactFloat64()
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
