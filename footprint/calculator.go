package footprint

import (
	"sort"

	"go-greenprint/types"
)

// Calculator is the deterministic carbon footprint calculator. It is pure
// arithmetic over an immutable factor table: same input, same snapshot,
// no I/O and no errors.
type Calculator struct {
	factors FactorTable
}

func NewCalculator(factors FactorTable) *Calculator {
	return &Calculator{factors: factors}
}

// Compute converts one user's full input set into a result snapshot.
//
// Categories are evaluated in a fixed canonical order (the factor table's
// scalar categories, then commute, vehicles, other) so that ties in the
// contributor ranking stay stable. The yearly total is the sum of every
// category; daily/weekly/monthly are derived from it by fixed divisors
// and are exact by construction. No rounding is applied - display
// precision is the caller's concern.
func (calc *Calculator) Compute(input types.EmissionFactors) types.CarbonFootprintResult {
	t := calc.factors

	categories := []types.Contributor{
		{Category: CategoryElectricity, Emission: scalarEmission(input.Electricity, t.Electricity)},
		{Category: CategoryLPG, Emission: scalarEmission(input.LPG, t.LPG)},
		{Category: CategoryCoal, Emission: scalarEmission(input.Coal, t.Coal)},
		{Category: CategoryPharma, Emission: scalarEmission(input.Pharmaceuticals, t.Pharmaceuticals)},
		{Category: CategoryClothes, Emission: scalarEmission(input.ClothesTextilesShoes, t.ClothesTextilesShoes)},
		{Category: CategoryFurniture, Emission: scalarEmission(input.FurnitureOtherGoods, t.FurnitureOtherGoods)},
		{Category: CategoryFood, Emission: scalarEmission(input.FoodAndDrink, t.FoodAndDrink)},
		{Category: CategoryComputers, Emission: scalarEmission(input.ComputersITEquipment, t.ComputersITEquipment)},
		{Category: CategoryTVEquipment, Emission: scalarEmission(input.TVRadioPhoneEquipment, t.TVRadioPhone)},
		{Category: CategoryRecreational, Emission: scalarEmission(input.RecreationalCulturalSports, t.Recreational)},
		{Category: CategoryHotels, Emission: scalarEmission(input.HotelsRestaurantsPubs, t.HotelsRestaurants)},
		{Category: CategoryTelecoms, Emission: scalarEmission(input.Telecoms, t.Telecoms)},
		{Category: CategoryCommute, Emission: commuteEmission(input.Commute, t)},
		{Category: CategoryVehicles, Emission: activityEmission(input.Vehicles, t.VehicleMaintenance)},
		{Category: CategoryOther, Emission: activityEmission(input.Other, t.OtherActivity)},
	}

	var yearly float64
	for _, c := range categories {
		yearly += c.Emission
	}

	// Zero categories contribute nothing to the total and are never
	// listed as top contributors.
	contributors := make([]types.Contributor, 0, len(categories))
	for _, c := range categories {
		if c.Emission > 0 {
			contributors = append(contributors, c)
		}
	}
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Emission > contributors[j].Emission
	})

	return types.CarbonFootprintResult{
		UserID: input.UserID,
		TotalCarbonFootprint: types.TotalFootprint{
			Daily:   yearly / daysPerYear,
			Weekly:  yearly / weeksPerYear,
			Monthly: yearly / monthsPerYear,
			Yearly:  yearly,
		},
		TopContributors: contributors,
	}
}
