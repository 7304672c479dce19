package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-greenprint/types"
)

func TestComputeSingleCategory(t *testing.T) {
	calc := NewCalculator(DefaultFactors())

	result := calc.Compute(types.EmissionFactors{
		UserID:      "user-1",
		Electricity: "100 kWh per month",
	})

	assert.Equal(t, "user-1", result.UserID)
	assert.InDelta(t, 600.0, result.TotalCarbonFootprint.Yearly, 1e-9)
	assert.InDelta(t, 50.0, result.TotalCarbonFootprint.Monthly, 1e-9)
	assert.InDelta(t, 600.0/52, result.TotalCarbonFootprint.Weekly, 1e-9)
	assert.InDelta(t, 600.0/365, result.TotalCarbonFootprint.Daily, 1e-9)

	require.Len(t, result.TopContributors, 1)
	assert.Equal(t, CategoryElectricity, result.TopContributors[0].Category)
	assert.InDelta(t, 600.0, result.TopContributors[0].Emission, 1e-9)
}

func TestComputeEmptyInput(t *testing.T) {
	calc := NewCalculator(DefaultFactors())

	result := calc.Compute(types.EmissionFactors{UserID: "user-2"})

	assert.Equal(t, "user-2", result.UserID)
	assert.Zero(t, result.TotalCarbonFootprint.Yearly)
	assert.Zero(t, result.TotalCarbonFootprint.Daily)
	assert.Empty(t, result.TopContributors)
}

func TestComputeContributorOrdering(t *testing.T) {
	calc := NewCalculator(DefaultFactors())

	// Electricity 600, LPG 357.6, food 1.2 yearly.
	result := calc.Compute(types.EmissionFactors{
		UserID:       "user-3",
		Electricity:  "100 kWh per month",
		LPG:          "10 kg per month",
		FoodAndDrink: "100 USD per month",
	})

	require.Len(t, result.TopContributors, 3)
	assert.Equal(t, CategoryElectricity, result.TopContributors[0].Category)
	assert.Equal(t, CategoryLPG, result.TopContributors[1].Category)
	assert.Equal(t, CategoryFood, result.TopContributors[2].Category)
}

func TestComputeTieBreaksInCanonicalOrder(t *testing.T) {
	// A custom table where two categories produce identical emissions.
	factors := FactorTable{Electricity: 1, LPG: 1}
	calc := NewCalculator(factors)

	result := calc.Compute(types.EmissionFactors{
		UserID:      "user-4",
		Electricity: "10 kWh per year",
		LPG:         "10 kg per year",
		Coal:        "10 kg per year", // coal factor is zero here
	})

	// Tied categories keep evaluation order; the zero-factor category is
	// excluded entirely.
	require.Len(t, result.TopContributors, 2)
	assert.Equal(t, CategoryElectricity, result.TopContributors[0].Category)
	assert.Equal(t, CategoryLPG, result.TopContributors[1].Category)
	assert.InDelta(t, 20.0, result.TotalCarbonFootprint.Yearly, 1e-9)
}

func TestComputeMixedSections(t *testing.T) {
	calc := NewCalculator(DefaultFactors())

	result := calc.Compute(types.EmissionFactors{
		UserID:      "user-5",
		Electricity: "100 kWh per month",
		Commute: []types.CommuteRoute{
			{Mode: types.ModeCar, FuelType: types.FuelGasoline, Distance: "10"},
		},
		Vehicles: []types.CustomActivity{
			{Name: "Oil change", Value: "50", Frequency: types.Monthly},
		},
	})

	// Commute distances are not frequency-normalized.
	wantYearly := 600.0 + 10*0.192 + 50*12*0.0005
	assert.InDelta(t, wantYearly, result.TotalCarbonFootprint.Yearly, 1e-9)

	require.Len(t, result.TopContributors, 3)
	assert.Equal(t, CategoryElectricity, result.TopContributors[0].Category)
	assert.Equal(t, CategoryCommute, result.TopContributors[1].Category)
	assert.Equal(t, CategoryVehicles, result.TopContributors[2].Category)
}

func TestComputeIsDeterministic(t *testing.T) {
	calc := NewCalculator(DefaultFactors())
	input := types.EmissionFactors{
		UserID:      "user-6",
		Electricity: "123.45 kWh per week",
		Telecoms:    "30 USD per month",
	}

	first := calc.Compute(input)
	second := calc.Compute(input)
	assert.Equal(t, first, second)
}
