/*
ratios.go - Debt-to-income and loan-to-value ratios

Pure arithmetic over totals computed elsewhere. Both ratios short-circuit
to zero instead of dividing by zero: a file with no income or no purchase
price reports 0, never an error or NaN.
*/
package finance

import "github.com/shopspring/decimal"

// DTI returns the front-end and back-end debt-to-income ratios as
// fractions (0.31 means 31%). Front-end is proposed housing cost over
// income; back-end is all monthly liabilities over income. Zero income
// yields (0, 0).
func DTI(frontHousing, allLiabilities, totalIncome decimal.Decimal) (fe, be decimal.Decimal) {
	if totalIncome.IsZero() {
		return decimal.Zero, decimal.Zero
	}
	return frontHousing.Div(totalIncome), allLiabilities.Div(totalIncome)
}

// LTV returns loan-to-value as a percentage (80 means 80%).
// A zero purchase price yields 0.
func LTV(purchasePrice, loan decimal.Decimal) decimal.Decimal {
	if purchasePrice.IsZero() {
		return decimal.Zero
	}
	return Hundred.Mul(loan).Div(purchasePrice)
}
