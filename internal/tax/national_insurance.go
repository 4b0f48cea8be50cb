package tax

import (
	"math"

	"tax-engine/internal/model"
	"tax-engine/internal/ratetable"
)

// Weeks in a contribution year for the Class 2 flat charge.
const class2WeeksPerYear = 52

// CalculateNationalInsurance computes the three NI sub-charges: Class 1 on
// employment income, and the flat Class 2 plus banded Class 4 on
// self-employment profits. The three are independent and additive.
func CalculateNationalInsurance(t *ratetable.RateTable, employmentIncome, selfEmploymentIncome float64) (model.NationalInsuranceResult, error) {
	if employmentIncome < 0 {
		return model.NationalInsuranceResult{}, &model.InvalidInputError{Field: "employment_income", Value: employmentIncome}
	}
	if selfEmploymentIncome < 0 {
		return model.NationalInsuranceResult{}, &model.InvalidInputError{Field: "self_employment_income", Value: selfEmploymentIncome}
	}

	_, class1 := DistributeAcrossBands(employmentIncome, []Band{
		{Name: "below_primary", Ceiling: t.NIPrimaryThreshold, Rate: 0},
		{Name: "main", Ceiling: t.NIUpperThreshold, Rate: t.NIBasicRate},
		{Name: "upper", Ceiling: math.Inf(1), Rate: t.NIHigherRate},
	})

	// Class 2 is a fixed weekly amount owed only when profits fall inside the
	// qualifying window; both boundaries are inclusive.
	class2 := 0.0
	if selfEmploymentIncome >= t.Class2LowerLimit && selfEmploymentIncome <= t.Class2UpperLimit {
		class2 = t.Class2WeeklyRate * class2WeeksPerYear
	}

	_, class4 := DistributeAcrossBands(selfEmploymentIncome, []Band{
		{Name: "below_primary", Ceiling: t.NIPrimaryThreshold, Rate: 0},
		{Name: "main", Ceiling: t.NIUpperThreshold, Rate: t.Class4BasicRate},
		{Name: "upper", Ceiling: math.Inf(1), Rate: t.Class4HigherRate},
	})

	return model.NationalInsuranceResult{
		EmploymentIncome:     employmentIncome,
		SelfEmploymentIncome: selfEmploymentIncome,
		Class1Employee:       class1,
		Class2SelfEmployed:   class2,
		Class4SelfEmployed:   class4,
		TotalNI:              class1 + class2 + class4,
	}, nil
}
