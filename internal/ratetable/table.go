package ratetable

import "fmt"

// RateTable holds every threshold, allowance and rate for one tax year.
// A table is validated once at construction and never mutated afterwards,
// so a single instance is safe to share across concurrent calculations.
type RateTable struct {
	TaxYear string `yaml:"tax_year" json:"tax_year"`

	// Income tax
	PersonalAllowance   float64 `yaml:"personal_allowance" json:"personal_allowance"`
	TaperThreshold      float64 `yaml:"taper_threshold" json:"taper_threshold"`
	TaperRate           float64 `yaml:"taper_rate" json:"taper_rate"`
	BasicRateThreshold  float64 `yaml:"basic_rate_threshold" json:"basic_rate_threshold"`
	HigherRateThreshold float64 `yaml:"higher_rate_threshold" json:"higher_rate_threshold"`
	BasicRate           float64 `yaml:"basic_rate" json:"basic_rate"`
	HigherRate          float64 `yaml:"higher_rate" json:"higher_rate"`
	AdditionalRate      float64 `yaml:"additional_rate" json:"additional_rate"`
	// Gift Aid donations arrive net of basic-rate tax; the gross-up factor
	// reconstructs the pre-deduction amount (1.25 for a 20% basic rate).
	GiftAidGrossUp float64 `yaml:"gift_aid_gross_up" json:"gift_aid_gross_up"`

	// National Insurance
	NIPrimaryThreshold float64 `yaml:"ni_primary_threshold" json:"ni_primary_threshold"`
	NIUpperThreshold   float64 `yaml:"ni_upper_threshold" json:"ni_upper_threshold"`
	NIBasicRate        float64 `yaml:"ni_basic_rate" json:"ni_basic_rate"`
	NIHigherRate       float64 `yaml:"ni_higher_rate" json:"ni_higher_rate"`
	Class2WeeklyRate   float64 `yaml:"class2_weekly_rate" json:"class2_weekly_rate"`
	Class2LowerLimit   float64 `yaml:"class2_lower_profits_limit" json:"class2_lower_profits_limit"`
	Class2UpperLimit   float64 `yaml:"class2_upper_profits_limit" json:"class2_upper_profits_limit"`
	Class4BasicRate    float64 `yaml:"class4_basic_rate" json:"class4_basic_rate"`
	Class4HigherRate   float64 `yaml:"class4_higher_rate" json:"class4_higher_rate"`

	// Capital gains
	CGTAnnualExemption    float64 `yaml:"cgt_annual_exemption" json:"cgt_annual_exemption"`
	CGTBasicRate          float64 `yaml:"cgt_basic_rate" json:"cgt_basic_rate"`
	CGTHigherRate         float64 `yaml:"cgt_higher_rate" json:"cgt_higher_rate"`
	CGTPropertyBasicRate  float64 `yaml:"cgt_property_basic_rate" json:"cgt_property_basic_rate"`
	CGTPropertyHigherRate float64 `yaml:"cgt_property_higher_rate" json:"cgt_property_higher_rate"`

	// Dividends
	DividendAllowance      float64 `yaml:"dividend_allowance" json:"dividend_allowance"`
	DividendBasicRate      float64 `yaml:"dividend_basic_rate" json:"dividend_basic_rate"`
	DividendHigherRate     float64 `yaml:"dividend_higher_rate" json:"dividend_higher_rate"`
	DividendAdditionalRate float64 `yaml:"dividend_additional_rate" json:"dividend_additional_rate"`

	// Property income
	PropertyAllowance          float64 `yaml:"property_allowance" json:"property_allowance"`
	MortgageInterestReliefRate float64 `yaml:"mortgage_interest_relief_rate" json:"mortgage_interest_relief_rate"`
}

// ConfigError reports a malformed rate table. A bad table must fail at
// construction time, never at computation time.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rate table: %s: %s", e.Field, e.Reason)
}

// Validate checks the table invariants: thresholds non-negative and strictly
// increasing where ordered, rates within [0,1], gross-up factor at least 1.
func (t *RateTable) Validate() error {
	thresholds := []struct {
		field string
		value float64
	}{
		{"personal_allowance", t.PersonalAllowance},
		{"taper_threshold", t.TaperThreshold},
		{"basic_rate_threshold", t.BasicRateThreshold},
		{"higher_rate_threshold", t.HigherRateThreshold},
		{"ni_primary_threshold", t.NIPrimaryThreshold},
		{"ni_upper_threshold", t.NIUpperThreshold},
		{"class2_weekly_rate", t.Class2WeeklyRate},
		{"class2_lower_profits_limit", t.Class2LowerLimit},
		{"class2_upper_profits_limit", t.Class2UpperLimit},
		{"cgt_annual_exemption", t.CGTAnnualExemption},
		{"dividend_allowance", t.DividendAllowance},
		{"property_allowance", t.PropertyAllowance},
	}
	for _, th := range thresholds {
		if th.value < 0 {
			return &ConfigError{Field: th.field, Reason: "must not be negative"}
		}
	}

	ordered := []struct {
		field string
		lo    float64
		hi    float64
	}{
		{"basic_rate_threshold", t.PersonalAllowance, t.BasicRateThreshold},
		{"higher_rate_threshold", t.BasicRateThreshold, t.HigherRateThreshold},
		{"ni_upper_threshold", t.NIPrimaryThreshold, t.NIUpperThreshold},
		{"class2_upper_profits_limit", t.Class2LowerLimit, t.Class2UpperLimit},
	}
	for _, o := range ordered {
		if o.hi <= o.lo {
			return &ConfigError{Field: o.field, Reason: "thresholds must be strictly increasing"}
		}
	}

	rates := []struct {
		field string
		value float64
	}{
		{"taper_rate", t.TaperRate},
		{"basic_rate", t.BasicRate},
		{"higher_rate", t.HigherRate},
		{"additional_rate", t.AdditionalRate},
		{"ni_basic_rate", t.NIBasicRate},
		{"ni_higher_rate", t.NIHigherRate},
		{"class4_basic_rate", t.Class4BasicRate},
		{"class4_higher_rate", t.Class4HigherRate},
		{"cgt_basic_rate", t.CGTBasicRate},
		{"cgt_higher_rate", t.CGTHigherRate},
		{"cgt_property_basic_rate", t.CGTPropertyBasicRate},
		{"cgt_property_higher_rate", t.CGTPropertyHigherRate},
		{"dividend_basic_rate", t.DividendBasicRate},
		{"dividend_higher_rate", t.DividendHigherRate},
		{"dividend_additional_rate", t.DividendAdditionalRate},
		{"mortgage_interest_relief_rate", t.MortgageInterestReliefRate},
	}
	for _, r := range rates {
		if r.value < 0 || r.value > 1 {
			return &ConfigError{Field: r.field, Reason: "rate must be within [0,1]"}
		}
	}

	if t.GiftAidGrossUp < 1 {
		return &ConfigError{Field: "gift_aid_gross_up", Reason: "gross-up factor must be at least 1"}
	}

	return nil
}
