package model

// Result records are fully populated by their calculator and returned by
// value; nothing downstream mutates them. Field names and nesting are part of
// the external contract: the validation, optimization and reporting layers
// key off specific paths such as total_liability.income_tax and
// income_breakdown.dividends.dividend_tax.

// TaxBandBreakdown is the tax due per rate band for one tax type.
type TaxBandBreakdown struct {
	BasicRateTax      float64 `json:"basic_rate_tax"`
	HigherRateTax     float64 `json:"higher_rate_tax"`
	AdditionalRateTax float64 `json:"additional_rate_tax"`
}

type IncomeTaxResult struct {
	GrossIncome          float64          `json:"gross_income"`
	PensionContributions float64          `json:"pension_contributions"`
	GiftAidDonations     float64          `json:"gift_aid_donations"`
	GiftAidGross         float64          `json:"gift_aid_gross"`
	PersonalAllowance    float64          `json:"personal_allowance"`
	TaxableIncome        float64          `json:"taxable_income"`
	TaxBands             TaxBandBreakdown `json:"tax_bands"`
	TotalTax             float64          `json:"total_tax"`
	EffectiveRate        float64          `json:"effective_rate"`
	MarginalRate         float64          `json:"marginal_rate"`
}

type NationalInsuranceResult struct {
	EmploymentIncome     float64 `json:"employment_income"`
	SelfEmploymentIncome float64 `json:"self_employment_income"`
	Class1Employee       float64 `json:"class1_employee"`
	Class2SelfEmployed   float64 `json:"class2_self_employed"`
	Class4SelfEmployed   float64 `json:"class4_self_employed"`
	TotalNI              float64 `json:"total_ni"`
}

type CapitalGainsResult struct {
	TotalGrossGains        float64 `json:"total_gross_gains"`
	TotalLosses            float64 `json:"total_losses"`
	NetGainsAfterLosses    float64 `json:"net_gains_after_losses"`
	AnnualExemptAmountUsed float64 `json:"annual_exempt_amount_used"`
	TaxableGains           float64 `json:"taxable_gains"`
	PropertyTax            float64 `json:"property_tax"`
	OtherGainsTax          float64 `json:"other_gains_tax"`
	TotalCGT               float64 `json:"total_cgt"`
}

type RentalResult struct {
	GrossRentalIncome     float64 `json:"gross_rental_income"`
	AllowableExpenses     float64 `json:"allowable_expenses"`
	PropertyAllowanceUsed float64 `json:"property_allowance_used"`
	// NetRentalIncome may be negative under the actual-expenses regime;
	// TaxableRentalProfit is the figure clamped at zero for income tax.
	NetRentalIncome           float64 `json:"net_rental_income"`
	TaxableRentalProfit       float64 `json:"taxable_rental_profit"`
	MortgageInterest          float64 `json:"mortgage_interest"`
	MortgageInterestRelief    float64 `json:"mortgage_interest_relief"`
	PropertyAllowanceElection bool    `json:"property_allowance_election"`
}

type DividendResult struct {
	DividendIncome        float64          `json:"dividend_income"`
	DividendAllowanceUsed float64          `json:"dividend_allowance_used"`
	TaxableDividends      float64          `json:"taxable_dividends"`
	TaxBands              TaxBandBreakdown `json:"tax_bands"`
	DividendTax           float64          `json:"dividend_tax"`
	EffectiveDividendRate float64          `json:"effective_dividend_rate"`
}

type IncomeBreakdown struct {
	Employment   float64            `json:"employment"`
	Rental       RentalResult       `json:"rental"`
	Dividends    DividendResult     `json:"dividends"`
	CapitalGains CapitalGainsResult `json:"capital_gains"`
}

type TaxCalculations struct {
	IncomeTax         IncomeTaxResult         `json:"income_tax"`
	NationalInsurance NationalInsuranceResult `json:"national_insurance"`
	DividendTax       DividendResult          `json:"dividend_tax"`
	CapitalGainsTax   CapitalGainsResult      `json:"capital_gains_tax"`
}

// TotalLiability holds one scalar per tax type plus the mortgage-interest
// relief credit that nets against them.
type TotalLiability struct {
	IncomeTax              float64 `json:"income_tax"`
	DividendTax            float64 `json:"dividend_tax"`
	NationalInsurance      float64 `json:"national_insurance"`
	CapitalGainsTax        float64 `json:"capital_gains_tax"`
	MortgageInterestRelief float64 `json:"mortgage_interest_relief"`
}

// AggregateLiability is the sole object handed to external consumers.
type AggregateLiability struct {
	TaxYear          string          `json:"tax_year"`
	IncomeBreakdown  IncomeBreakdown `json:"income_breakdown"`
	TaxCalculations  TaxCalculations `json:"tax_calculations"`
	TotalLiability   TotalLiability  `json:"total_liability"`
	TotalIncome      float64         `json:"total_income"`
	NetTotalTax      float64         `json:"net_total_tax"`
	EffectiveTaxRate float64         `json:"effective_tax_rate"`
}
