package tax

import (
	"math"

	"tax-engine/internal/model"
	"tax-engine/internal/ratetable"
)

// CalculateDividendTax taxes dividends above the allowance at rates set by
// the taxpayer's position within the overall income bands: taxable dividends
// first fill whatever basic-rate room the non-dividend income left, then the
// higher band, then the additional rate. totalIncome must include the
// dividends themselves, which is why the aggregator computes total income
// before calling here.
func CalculateDividendTax(t *ratetable.RateTable, dividendIncome, totalIncome float64) (model.DividendResult, error) {
	if dividendIncome < 0 {
		return model.DividendResult{}, &model.InvalidInputError{Field: "investment_income.dividends", Value: dividendIncome}
	}
	if totalIncome < 0 {
		return model.DividendResult{}, &model.InvalidInputError{Field: "total_income", Value: totalIncome}
	}

	taxableDividends := math.Max(0, dividendIncome-t.DividendAllowance)
	basicRoom := math.Max(0, t.BasicRateThreshold-(totalIncome-dividendIncome))

	bands, totalTax := DistributeAcrossBands(taxableDividends, []Band{
		{Name: bandBasic, Ceiling: basicRoom, Rate: t.DividendBasicRate},
		{Name: bandHigher, Ceiling: basicRoom + (t.HigherRateThreshold - t.BasicRateThreshold), Rate: t.DividendHigherRate},
		{Name: bandAdditional, Ceiling: math.Inf(1), Rate: t.DividendAdditionalRate},
	})

	effectiveRate := 0.0
	if dividendIncome > 0 {
		effectiveRate = totalTax / dividendIncome
	}

	return model.DividendResult{
		DividendIncome:        dividendIncome,
		DividendAllowanceUsed: math.Min(dividendIncome, t.DividendAllowance),
		TaxableDividends:      taxableDividends,
		TaxBands:              bandBreakdown(bands),
		DividendTax:           totalTax,
		EffectiveDividendRate: effectiveRate,
	}, nil
}
