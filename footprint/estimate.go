package footprint

import "go-greenprint/types"

// scalarEmission estimates one of the twelve composite-string categories:
// parse the quantity, normalize its amount to a yearly figure, multiply by
// the category factor. Everything fails soft to zero.
func scalarEmission(raw string, factor float64) float64 {
	q := types.ParseQuantity(raw)
	return YearlyAmount(ParseNonNegative(q.Amount), q.Frequency) * factor
}

// commuteEmission sums per-route emissions into the single commute
// category. Route distances are applied to the resolved (mode, fuelType)
// factor as entered; they are deliberately NOT frequency-normalized, the
// distance is whatever basis the form declared it on.
func commuteEmission(routes []types.CommuteRoute, t FactorTable) float64 {
	var total float64
	for _, route := range routes {
		distance := ParseNonNegative(route.Distance)
		total += distance * t.CommuteFactor(route.Mode, route.FuelType)
	}
	return total
}

// activityEmission reduces a custom activity section with a single flat
// factor. The user-supplied unit label is display-only and ignored here.
func activityEmission(items []types.CustomActivity, factor float64) float64 {
	var total float64
	for _, item := range items {
		total += YearlyAmount(ParseNonNegative(item.Value), item.Frequency) * factor
	}
	return total
}
