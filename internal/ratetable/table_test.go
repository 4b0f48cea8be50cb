package ratetable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := Default()
	require.NotNil(t, table)

	assert.Equal(t, "2024/25", table.TaxYear)
	assert.Equal(t, 12570.0, table.PersonalAllowance)
	assert.Equal(t, 50270.0, table.BasicRateThreshold)
	assert.Equal(t, 125140.0, table.HigherRateThreshold)
	assert.Equal(t, 1.25, table.GiftAidGrossUp)
	assert.Equal(t, 3.45, table.Class2WeeklyRate)
	assert.NoError(t, table.Validate())

	// Default is a singleton; repeated calls return the same instance.
	assert.Same(t, table, Default())
}

func TestValidateRejectsNegativeThreshold(t *testing.T) {
	table := *Default()
	table.CGTAnnualExemption = -1

	err := table.Validate()
	require.Error(t, err)

	var cfg *ConfigError
	require.True(t, errors.As(err, &cfg))
	assert.Equal(t, "cgt_annual_exemption", cfg.Field)
}

func TestValidateRejectsNonIncreasingThresholds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RateTable)
		field  string
	}{
		{"basic below allowance", func(rt *RateTable) { rt.BasicRateThreshold = rt.PersonalAllowance }, "basic_rate_threshold"},
		{"higher below basic", func(rt *RateTable) { rt.HigherRateThreshold = rt.BasicRateThreshold - 1 }, "higher_rate_threshold"},
		{"ni upper below primary", func(rt *RateTable) { rt.NIUpperThreshold = rt.NIPrimaryThreshold }, "ni_upper_threshold"},
		{"class2 window inverted", func(rt *RateTable) { rt.Class2UpperLimit = rt.Class2LowerLimit - 1 }, "class2_upper_profits_limit"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table := *Default()
			tc.mutate(&table)

			var cfg *ConfigError
			err := table.Validate()
			require.True(t, errors.As(err, &cfg))
			assert.Equal(t, tc.field, cfg.Field)
		})
	}
}

func TestValidateRejectsOutOfRangeRate(t *testing.T) {
	table := *Default()
	table.HigherRate = 1.5

	var cfg *ConfigError
	err := table.Validate()
	require.True(t, errors.As(err, &cfg))
	assert.Equal(t, "higher_rate", cfg.Field)

	table = *Default()
	table.DividendBasicRate = -0.1
	require.Error(t, table.Validate())
}

func TestValidateRejectsGrossUpBelowOne(t *testing.T) {
	table := *Default()
	table.GiftAidGrossUp = 0.8

	var cfg *ConfigError
	err := table.Validate()
	require.True(t, errors.As(err, &cfg))
	assert.Equal(t, "gift_aid_gross_up", cfg.Field)
}

func TestParseRejectsInvalidTable(t *testing.T) {
	_, err := Parse([]byte("basic_rate: 2.0\n"))
	require.Error(t, err)

	_, err = Parse([]byte("not: [valid"))
	require.Error(t, err)
}

func TestRegistry(t *testing.T) {
	table := *Default()
	table.TaxYear = "2025/26"
	table.CGTAnnualExemption = 3000
	require.NoError(t, Register(&table))

	got, ok := Get("2025/26")
	require.True(t, ok)
	assert.Equal(t, 3000.0, got.CGTAnnualExemption)

	// Empty label resolves to the default year.
	got, ok = Get("")
	require.True(t, ok)
	assert.Equal(t, "2024/25", got.TaxYear)

	_, ok = Get("1999/00")
	assert.False(t, ok)
}

func TestRegisterRejectsInvalidTable(t *testing.T) {
	table := *Default()
	table.TaxYear = "2099/00"
	table.BasicRate = 7

	require.Error(t, Register(&table))

	_, ok := Get("2099/00")
	assert.False(t, ok)
}
