package tax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tax-engine/internal/model"
	"tax-engine/internal/ratetable"
)

func TestDividendsWithinAllowance(t *testing.T) {
	res, err := CalculateDividendTax(ratetable.Default(), 800, 30000)
	require.NoError(t, err)

	assert.InDelta(t, 800, res.DividendAllowanceUsed, 1e-9)
	assert.Zero(t, res.TaxableDividends)
	assert.Zero(t, res.DividendTax)
	assert.Zero(t, res.EffectiveDividendRate)
}

func TestDividendsAllBasicWhenTotalIncomeBelowThreshold(t *testing.T) {
	res, err := CalculateDividendTax(ratetable.Default(), 3000, 20000)
	require.NoError(t, err)

	assert.InDelta(t, 1000, res.DividendAllowanceUsed, 1e-9)
	assert.InDelta(t, 2000, res.TaxableDividends, 1e-9)
	assert.InDelta(t, 2000*0.0875, res.TaxBands.BasicRateTax, 1e-9)
	assert.Zero(t, res.TaxBands.HigherRateTax)
	assert.InDelta(t, 2000*0.0875, res.DividendTax, 1e-9)
}

func TestDividendsPositionedByOtherIncome(t *testing.T) {
	table := ratetable.Default()

	// Non-dividend income of 55,000 leaves no basic-rate room: the taxable
	// 4,000 is all taxed at the higher dividend rate.
	res, err := CalculateDividendTax(table, 5000, 60000)
	require.NoError(t, err)

	assert.InDelta(t, 4000, res.TaxableDividends, 1e-9)
	assert.Zero(t, res.TaxBands.BasicRateTax)
	assert.InDelta(t, 4000*0.3375, res.TaxBands.HigherRateTax, 1e-9)
	assert.InDelta(t, 1350, res.DividendTax, 1e-9)

	// Non-dividend income of 48,000 leaves 2,270 of basic-rate room; the
	// remainder of the taxable 4,000 spills into the higher band.
	res, err = CalculateDividendTax(table, 5000, 53000)
	require.NoError(t, err)

	assert.InDelta(t, 2270*0.0875, res.TaxBands.BasicRateTax, 1e-9)
	assert.InDelta(t, 1730*0.3375, res.TaxBands.HigherRateTax, 1e-9)
}

func TestDividendsSpillIntoAdditionalRate(t *testing.T) {
	table := ratetable.Default()

	// No basic room, and taxable dividends exceed the higher band width
	// (125,140 − 50,270 = 74,870).
	res, err := CalculateDividendTax(table, 81000, 140000)
	require.NoError(t, err)

	assert.InDelta(t, 80000, res.TaxableDividends, 1e-9)
	assert.Zero(t, res.TaxBands.BasicRateTax)
	assert.InDelta(t, 74870*0.3375, res.TaxBands.HigherRateTax, 1e-9)
	assert.InDelta(t, 5130*0.3925, res.TaxBands.AdditionalRateTax, 1e-9)
	assert.InDelta(t, res.TaxBands.HigherRateTax+res.TaxBands.AdditionalRateTax, res.DividendTax, 1e-9)
}

func TestDividendsRejectNegativeInputs(t *testing.T) {
	table := ratetable.Default()

	_, err := CalculateDividendTax(table, -1, 100)
	var inputErr *model.InvalidInputError
	require.True(t, errors.As(err, &inputErr))

	_, err = CalculateDividendTax(table, 100, -1)
	require.True(t, errors.As(err, &inputErr))
}
