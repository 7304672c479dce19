package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-greenprint/types"
)

func TestParseNonNegative(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "plain integer", in: "120", want: 120},
		{name: "decimal", in: "45.5", want: 45.5},
		{name: "leading and trailing spaces", in: "  12 ", want: 12},
		{name: "empty string", in: "", want: 0},
		{name: "whitespace only", in: "   ", want: 0},
		{name: "not a number", in: "abc", want: 0},
		{name: "negative clamps to zero", in: "-5", want: 0},
		{name: "infinity clamps to zero", in: "Inf", want: 0},
		{name: "NaN clamps to zero", in: "NaN", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNonNegative(tt.in))
		})
	}
}

func TestYearlyAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		freq   types.Frequency
		want   float64
	}{
		{name: "weekly times 52", amount: 10, freq: types.Weekly, want: 520},
		{name: "monthly times 12", amount: 10, freq: types.Monthly, want: 120},
		{name: "yearly unchanged", amount: 10, freq: types.Yearly, want: 10},
		{name: "missing frequency treated as yearly", amount: 10, freq: "", want: 10},
		{name: "unknown frequency treated as yearly", amount: 10, freq: "fortnight", want: 10},
		{name: "zero amount stays zero", amount: 0, freq: types.Weekly, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YearlyAmount(tt.amount, tt.freq))
		})
	}
}
