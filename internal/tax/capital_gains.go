package tax

import (
	"math"

	"tax-engine/internal/model"
	"tax-engine/internal/ratetable"
)

// CalculateCapitalGains nets pooled losses against gross gains, applies the
// annual exempt amount to the net figure, then taxes property gains first (up
// to the smaller of taxable gains and total property gains) with the
// remainder at the standard rate. Property-first ordering decides which rate
// absorbs the exemption and which absorbs losses; it must not be reordered.
// Rates assume a basic-rate taxpayer, as the rest of the engine does.
func CalculateCapitalGains(t *ratetable.RateTable, entries []model.CapitalGainEntry) model.CapitalGainsResult {
	var propertyGains, otherGains, totalLosses float64
	for _, e := range entries {
		switch {
		case e.Amount < 0:
			totalLosses += -e.Amount
		case e.Type == model.GainTypeProperty:
			propertyGains += e.Amount
		default:
			otherGains += e.Amount
		}
	}

	grossGains := propertyGains + otherGains
	netGains := math.Max(0, grossGains-totalLosses)
	taxableGains := math.Max(0, netGains-t.CGTAnnualExemption)

	split, totalCGT := DistributeAcrossBands(taxableGains, []Band{
		{Name: "property", Ceiling: propertyGains, Rate: t.CGTPropertyBasicRate},
		{Name: "other", Ceiling: math.Inf(1), Rate: t.CGTBasicRate},
	})

	return model.CapitalGainsResult{
		TotalGrossGains:        grossGains,
		TotalLosses:            totalLosses,
		NetGainsAfterLosses:    netGains,
		AnnualExemptAmountUsed: math.Min(t.CGTAnnualExemption, netGains),
		TaxableGains:           taxableGains,
		PropertyTax:            split[0].Tax,
		OtherGainsTax:          split[1].Tax,
		TotalCGT:               totalCGT,
	}
}
