package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"tax-engine/internal/model"
	"tax-engine/internal/ratetable"
	"tax-engine/internal/tax"
)

// Aggregate runs every calculator over one declaration and composes the
// aggregate liability. The order is fixed by data dependencies: rental profit
// feeds total income, total income positions the dividend bands, income tax
// covers employment plus rental profit, NI and CGT run independently. Any
// calculator error aborts the whole computation; a partial liability figure
// is actively misleading.
func Aggregate(table *ratetable.RateTable, decl *model.IncomeDeclaration) (*model.AggregateLiability, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	rental, err := tax.CalculateRentalIncome(table, decl.RentalIncome)
	if err != nil {
		return nil, err
	}

	dividends := decl.InvestmentIncome.Dividends
	totalIncome := decl.EmploymentIncome + rental.TaxableRentalProfit + dividends

	dividendTax, err := tax.CalculateDividendTax(table, dividends, totalIncome)
	if err != nil {
		return nil, err
	}

	incomeTax, err := tax.CalculateIncomeTax(table,
		decl.EmploymentIncome+rental.TaxableRentalProfit,
		decl.PensionContributions, decl.GiftAidDonations, 0)
	if err != nil {
		return nil, err
	}

	ni, err := tax.CalculateNationalInsurance(table, decl.EmploymentIncome, decl.SelfEmploymentIncome)
	if err != nil {
		return nil, err
	}

	cgt := tax.CalculateCapitalGains(table, decl.CapitalGains)

	totals := model.TotalLiability{
		IncomeTax:              incomeTax.TotalTax,
		DividendTax:            dividendTax.DividendTax,
		NationalInsurance:      ni.TotalNI,
		CapitalGainsTax:        cgt.TotalCGT,
		MortgageInterestRelief: rental.MortgageInterestRelief,
	}

	netTotalTax := totals.IncomeTax + totals.DividendTax + totals.NationalInsurance +
		totals.CapitalGainsTax - totals.MortgageInterestRelief

	effectiveRate := 0.0
	if totalIncome > 0 {
		effectiveRate = netTotalTax / totalIncome
	}

	return &model.AggregateLiability{
		TaxYear: table.TaxYear,
		IncomeBreakdown: model.IncomeBreakdown{
			Employment:   decl.EmploymentIncome,
			Rental:       rental,
			Dividends:    dividendTax,
			CapitalGains: cgt,
		},
		TaxCalculations: model.TaxCalculations{
			IncomeTax:         incomeTax,
			NationalInsurance: ni,
			DividendTax:       dividendTax,
			CapitalGainsTax:   cgt,
		},
		TotalLiability:   totals,
		TotalIncome:      totalIncome,
		NetTotalTax:      netTotalTax,
		EffectiveTaxRate: effectiveRate,
	}, nil
}

// Process wraps Aggregate in the calculation envelope: rate-table resolution,
// error-to-message mapping and response metadata.
func Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	outcome := model.OutcomeSuccess
	var liability *model.AggregateLiability
	var messages []model.CalculationMessage

	table, ok := ratetable.Get(req.TaxYear)
	if !ok {
		outcome = model.OutcomeFailure
		messages = append(messages, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeUnknownTaxYear,
			Message: "No rate table registered for tax year " + req.TaxYear,
		})
	} else {
		var err error
		liability, err = Aggregate(table, &req.Declaration)
		if err != nil {
			outcome = model.OutcomeFailure
			messages = append(messages, model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    classify(err),
				Message: err.Error(),
			})
		}
	}

	taxYear := req.TaxYear
	if table != nil {
		taxYear = table.TaxYear
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if messages == nil {
		messages = []model.CalculationMessage{}
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TaxYear:                taxYear,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		Liability: liability,
		Messages:  messages,
	}
}

func classify(err error) string {
	var cfg *ratetable.ConfigError
	if errors.As(err, &cfg) {
		return model.CodeBadRateTable
	}
	var input *model.InvalidInputError
	if errors.As(err, &input) {
		return model.CodeInvalidInput
	}
	return model.CodeCalculationFailed
}
