package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Quantity
	}{
		{
			name: "full composite string",
			in:   "120 kWh per month",
			want: Quantity{Amount: "120", Unit: "kWh", Frequency: Monthly},
		},
		{
			name: "weekly spending",
			in:   "45.50 USD per week",
			want: Quantity{Amount: "45.50", Unit: "USD", Frequency: Weekly},
		},
		{
			name: "bare numeric has no frequency",
			in:   "300",
			want: Quantity{Amount: "300"},
		},
		{
			name: "empty string",
			in:   "",
			want: Quantity{},
		},
		{
			name: "whitespace only",
			in:   "   ",
			want: Quantity{},
		},
		{
			name: "amount and unit without frequency",
			in:   "12 kg",
			want: Quantity{Amount: "12", Unit: "kg"},
		},
		{
			name: "extra whitespace between tokens",
			in:   "  10   kWh   per   year ",
			want: Quantity{Amount: "10", Unit: "kWh", Frequency: Yearly},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuantity(tt.in))
		})
	}
}

func TestQuantityString(t *testing.T) {
	q := Quantity{Amount: "120", Unit: "kWh", Frequency: Monthly}
	assert.Equal(t, "120 kWh per month", q.String())

	// An untouched form field round-trips as empty.
	assert.Equal(t, "", Quantity{}.String())
}

func TestQuantityRoundTrip(t *testing.T) {
	in := "75 kg per week"
	assert.Equal(t, in, ParseQuantity(in).String())
}
