package model

// CalculationRequest is one liability computation. TaxYear selects a
// registered rate table; empty means the default year.
type CalculationRequest struct {
	TaxYear     string            `json:"tax_year,omitempty"`
	Declaration IncomeDeclaration `json:"declaration"`
}
