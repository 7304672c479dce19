package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-greenprint/types"
)

func TestScalarEmission(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		factor float64
		want   float64
	}{
		{name: "monthly normalized to yearly", raw: "100 kWh per month", factor: 0.5, want: 600},
		{name: "weekly normalized to yearly", raw: "10 kg per week", factor: 2.98, want: 10 * 52 * 2.98},
		{name: "yearly passes through", raw: "500 USD per year", factor: 0.001, want: 0.5},
		{name: "bare numeric treated as yearly", raw: "500", factor: 0.001, want: 0.5},
		{name: "empty input is zero", raw: "", factor: 0.5, want: 0},
		{name: "garbage amount is zero", raw: "lots kWh per month", factor: 0.5, want: 0},
		// The unit label never switches the factor. 1 MWh is still
		// multiplied by the per-kWh figure.
		{name: "unit label is not converted", raw: "1 MWh per year", factor: 0.5, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scalarEmission(tt.raw, tt.factor), 1e-9)
		})
	}
}

func TestCommuteEmission(t *testing.T) {
	factors := DefaultFactors()

	tests := []struct {
		name   string
		routes []types.CommuteRoute
		want   float64
	}{
		{
			name: "gasoline car",
			routes: []types.CommuteRoute{
				{Mode: types.ModeCar, FuelType: types.FuelGasoline, Distance: "10"},
			},
			want: 1.92,
		},
		{
			name: "bus ignores fuel type",
			routes: []types.CommuteRoute{
				{Mode: types.ModeBus, FuelType: types.FuelDiesel, Distance: "10"},
			},
			want: 0.89,
		},
		{
			name: "modes without a factor are zero",
			routes: []types.CommuteRoute{
				{Mode: types.ModeTricycle, Distance: "10"},
				{Mode: types.ModeTrain, Distance: "10"},
				{Mode: types.ModeBike, Distance: "10"},
				{Mode: types.ModeWalk, Distance: "10"},
			},
			want: 0,
		},
		{
			name: "unparseable distance contributes nothing",
			routes: []types.CommuteRoute{
				{Mode: types.ModeCar, FuelType: types.FuelGasoline, Distance: ""},
				{Mode: types.ModeCar, FuelType: types.FuelElectric, Distance: "10"},
			},
			want: 0.53,
		},
		{
			name: "routes sum into one category",
			routes: []types.CommuteRoute{
				{Mode: types.ModeCar, FuelType: types.FuelDiesel, Distance: "10"},
				{Mode: types.ModeBus, Distance: "10"},
			},
			want: 1.71 + 0.89,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, commuteEmission(tt.routes, factors), 1e-9)
		})
	}
}

func TestActivityEmission(t *testing.T) {
	tests := []struct {
		name   string
		items  []types.CustomActivity
		factor float64
		want   float64
	}{
		{
			name: "monthly value normalized",
			items: []types.CustomActivity{
				{Name: "Oil change", Value: "50", Frequency: types.Monthly},
			},
			factor: 0.0005,
			want:   50 * 12 * 0.0005,
		},
		{
			// The label is display-only; the section factor always applies.
			name: "unit label ignored",
			items: []types.CustomActivity{
				{Name: "Gym", Value: "100", Unit: "sessions", Frequency: types.Yearly},
			},
			factor: 0.0004,
			want:   0.04,
		},
		{
			name: "bad values fail soft",
			items: []types.CustomActivity{
				{Name: "Broken", Value: "n/a", Frequency: types.Weekly},
				{Name: "Fine", Value: "10", Frequency: types.Yearly},
			},
			factor: 0.0004,
			want:   0.004,
		},
		{
			name:   "empty section is zero",
			items:  nil,
			factor: 0.0005,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, activityEmission(tt.items, tt.factor), 1e-9)
		})
	}
}
