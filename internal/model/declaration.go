package model

// Gain/loss entry types.
const (
	GainTypeProperty = "property"
	GainTypeOther    = "other"
)

// IncomeDeclaration is one person's income position for a tax year. It is
// built once per calculation request and never mutated afterwards. Every
// field is optional: the extraction layer supplies best-effort values and the
// engine computes deterministically from the zero values of anything absent.
type IncomeDeclaration struct {
	EmploymentIncome     float64 `json:"employment_income"`
	SelfEmploymentIncome float64 `json:"self_employment_income"`
	PensionContributions float64 `json:"pension_contributions"`
	// Gift Aid donations as paid, i.e. net of basic-rate tax.
	GiftAidDonations float64 `json:"gift_aid_donations"`

	RentalIncome     RentalDeclaration     `json:"rental_income"`
	InvestmentIncome InvestmentDeclaration `json:"investment_income"`
	CapitalGains     []CapitalGainEntry    `json:"capital_gains,omitempty"`

	// Per-field extraction confidence, passed through untouched for the
	// validation layer. The engine never reads it.
	FieldConfidence map[string]float64 `json:"field_confidence,omitempty"`
}

type RentalDeclaration struct {
	GrossIncome      float64 `json:"gross_income"`
	Expenses         float64 `json:"expenses"`
	MortgageInterest float64 `json:"mortgage_interest"`
	// When set, the flat property allowance replaces actual expenses and
	// mortgage-interest relief.
	PropertyAllowanceElection bool `json:"property_allowance_election"`
}

type InvestmentDeclaration struct {
	Dividends float64 `json:"dividends"`
}

// CapitalGainEntry is a single disposal: positive amounts are gains, negative
// amounts are losses. The only declaration field where negative is meaningful.
type CapitalGainEntry struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}
