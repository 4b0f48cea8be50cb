package tax

import (
	"math"

	"tax-engine/internal/model"
	"tax-engine/internal/ratetable"
)

// CalculateIncomeTax computes income tax over ordinary income. Pension relief
// is given at source by reducing gross income; Gift Aid donations are grossed
// up and extend the basic and higher band ceilings (a band-width extension,
// not an allowance increase). allowanceReduction is an explicit cut to the
// base personal allowance, normally 0.
//
// The reported marginal rate is looked up at the gift-aid-extended income
// against the untapered thresholds, while the allowance taper uses the
// pre-gift-aid adjusted gross income. The two income definitions differ on
// purpose; do not unify them.
func CalculateIncomeTax(t *ratetable.RateTable, grossIncome, pensionContributions, giftAidDonations, allowanceReduction float64) (model.IncomeTaxResult, error) {
	for _, in := range []struct {
		field string
		value float64
	}{
		{"gross_income", grossIncome},
		{"pension_contributions", pensionContributions},
		{"gift_aid_donations", giftAidDonations},
	} {
		if in.value < 0 {
			return model.IncomeTaxResult{}, &model.InvalidInputError{Field: in.field, Value: in.value}
		}
	}

	adjustedGross := grossIncome - pensionContributions
	giftAidGross := giftAidDonations * t.GiftAidGrossUp

	allowance := personalAllowance(t, adjustedGross, allowanceReduction)
	taxableIncome := math.Max(0, adjustedGross-allowance)

	bands, totalTax := DistributeAcrossBands(taxableIncome, []Band{
		{Name: bandBasic, Ceiling: t.BasicRateThreshold + giftAidGross, Rate: t.BasicRate},
		{Name: bandHigher, Ceiling: t.HigherRateThreshold + giftAidGross, Rate: t.HigherRate},
		{Name: bandAdditional, Ceiling: math.Inf(1), Rate: t.AdditionalRate},
	})

	effectiveRate := 0.0
	if grossIncome > 0 {
		effectiveRate = totalTax / grossIncome
	}

	return model.IncomeTaxResult{
		GrossIncome:          grossIncome,
		PensionContributions: pensionContributions,
		GiftAidDonations:     giftAidDonations,
		GiftAidGross:         giftAidGross,
		PersonalAllowance:    allowance,
		TaxableIncome:        taxableIncome,
		TaxBands:             bandBreakdown(bands),
		TotalTax:             totalTax,
		EffectiveRate:        effectiveRate,
		MarginalRate:         MarginalRate(t, adjustedGross+giftAidGross),
	}, nil
}

// MarginalRate is the step function over the untapered band thresholds:
// 0% up to the personal allowance, then basic, higher and additional.
func MarginalRate(t *ratetable.RateTable, income float64) float64 {
	switch {
	case income <= t.PersonalAllowance:
		return 0
	case income <= t.BasicRateThreshold:
		return t.BasicRate
	case income <= t.HigherRateThreshold:
		return t.HigherRate
	default:
		return t.AdditionalRate
	}
}

// personalAllowance applies the high-income taper: the base allowance (less
// any explicit reduction) shrinks by TaperRate per unit of income above the
// taper threshold, floored at zero.
func personalAllowance(t *ratetable.RateTable, income, reduction float64) float64 {
	base := t.PersonalAllowance - reduction
	if income > t.TaperThreshold {
		base -= (income - t.TaperThreshold) * t.TaperRate
	}
	return math.Max(0, base)
}

func bandBreakdown(bands []BandAmount) model.TaxBandBreakdown {
	var b model.TaxBandBreakdown
	for _, ba := range bands {
		switch ba.Name {
		case bandBasic:
			b.BasicRateTax = ba.Tax
		case bandHigher:
			b.HigherRateTax = ba.Tax
		case bandAdditional:
			b.AdditionalRateTax = ba.Tax
		}
	}
	return b
}
