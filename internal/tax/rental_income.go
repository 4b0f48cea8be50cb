package tax

import (
	"math"

	"tax-engine/internal/model"
	"tax-engine/internal/ratetable"
)

// CalculateRentalIncome computes taxable rental profit under one of two
// mutually exclusive regimes. Electing the flat property allowance forfeits
// both the expense deduction and mortgage-interest relief. Under actual
// expenses, net income may go negative (the taxable profit is clamped at zero
// separately) and the relief is a fixed-rate credit on the full mortgage
// interest regardless of the profit figure.
func CalculateRentalIncome(t *ratetable.RateTable, d model.RentalDeclaration) (model.RentalResult, error) {
	for _, in := range []struct {
		field string
		value float64
	}{
		{"rental_income.gross_income", d.GrossIncome},
		{"rental_income.expenses", d.Expenses},
		{"rental_income.mortgage_interest", d.MortgageInterest},
	} {
		if in.value < 0 {
			return model.RentalResult{}, &model.InvalidInputError{Field: in.field, Value: in.value}
		}
	}

	var (
		netIncome      float64
		expensesUsed   float64
		allowanceUsed  float64
		interestRelief float64
	)
	if d.PropertyAllowanceElection {
		netIncome = math.Max(0, d.GrossIncome-t.PropertyAllowance)
		allowanceUsed = t.PropertyAllowance
	} else {
		netIncome = d.GrossIncome - d.Expenses
		expensesUsed = d.Expenses
		interestRelief = d.MortgageInterest * t.MortgageInterestReliefRate
	}

	return model.RentalResult{
		GrossRentalIncome:         d.GrossIncome,
		AllowableExpenses:         expensesUsed,
		PropertyAllowanceUsed:     allowanceUsed,
		NetRentalIncome:           netIncome,
		TaxableRentalProfit:       math.Max(0, netIncome),
		MortgageInterest:          d.MortgageInterest,
		MortgageInterestRelief:    interestRelief,
		PropertyAllowanceElection: d.PropertyAllowanceElection,
	}, nil
}
