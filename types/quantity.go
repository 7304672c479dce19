package types

import (
	"fmt"
	"strings"
)

// Quantity is the structured form of the composite strings the carbon
// form writes for the twelve scalar categories, e.g. "120 kWh per month".
// The wire format is whitespace separated: token 0 is the amount, token 1
// the unit, token 2 the literal word "per" and token 3 the frequency.
// Tokens 1-2 are carried for display only.
type Quantity struct {
	Amount    string
	Unit      string
	Frequency Frequency
}

// ParseQuantity splits a composite string into its parts. A bare numeric
// string parses to an amount with no frequency (treated as yearly by the
// calculator), and a missing or garbled token is just left empty; the
// calculator's fail-soft numeric parsing turns those into zero.
func ParseQuantity(s string) Quantity {
	var q Quantity
	fields := strings.Fields(s)
	if len(fields) > 0 {
		q.Amount = fields[0]
	}
	if len(fields) > 1 {
		q.Unit = fields[1]
	}
	if len(fields) > 3 {
		q.Frequency = Frequency(fields[3])
	}
	return q
}

// String serializes back to the wire format. An all-empty quantity
// serializes to the empty string so untouched form fields round-trip.
func (q Quantity) String() string {
	if q.Amount == "" && q.Unit == "" && q.Frequency == "" {
		return ""
	}
	return fmt.Sprintf("%s %s per %s", q.Amount, q.Unit, q.Frequency)
}
