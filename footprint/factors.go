package footprint

import "go-greenprint/types"

// Category keys as they appear in stored snapshots and in the UI.
const (
	CategoryElectricity  = "electricity"
	CategoryLPG          = "lpg"
	CategoryCoal         = "coal"
	CategoryPharma       = "pharmaceuticals"
	CategoryClothes      = "clothes_textiles_shoes"
	CategoryFurniture    = "furniture_other_goods"
	CategoryFood         = "food_and_drink"
	CategoryComputers    = "computers_it_equipment"
	CategoryTVEquipment  = "tv_radio_phone_equipment"
	CategoryRecreational = "recreational_cultural_sports"
	CategoryHotels       = "hotels_restaurants_pubs"
	CategoryTelecoms     = "telecoms"
	CategoryCommute      = "commute"
	CategoryVehicles     = "vehicles"
	CategoryOther        = "other"
)

// FactorTable is the full emission factor configuration, injected into the
// calculator so tests can swap factors without touching calculation logic.
//
// Scalar factors are kg CO2e per declared unit (kWh for electricity, kg
// for LPG/coal, currency unit for spending categories). The declared unit
// label is never converted: a quantity entered as MWh or tons is still
// multiplied by the kWh/kg factor. That matches the shipped app and is a
// known compatibility quirk, not a rounding choice.
type FactorTable struct {
	// Utilities
	Electricity float64 // per kWh
	LPG         float64 // per kg
	Coal        float64 // per kg

	// Spending categories, per currency unit
	Pharmaceuticals      float64
	ClothesTextilesShoes float64
	FurnitureOtherGoods  float64
	FoodAndDrink         float64
	ComputersITEquipment float64
	TVRadioPhone         float64
	Recreational         float64
	HotelsRestaurants    float64
	Telecoms             float64

	// Commute, kg CO2e per km
	CarGasoline float64
	CarDiesel   float64
	CarElectric float64
	Bus         float64

	// Custom activity sections, per currency unit
	VehicleMaintenance float64
	OtherActivity      float64
}

// DefaultFactors returns the production emission factor table.
func DefaultFactors() FactorTable {
	return FactorTable{
		Electricity: 0.5,
		LPG:         2.98,
		Coal:        2.42,

		Pharmaceuticals:      0.0005,
		ClothesTextilesShoes: 0.0008,
		FurnitureOtherGoods:  0.0006,
		FoodAndDrink:         0.001,
		ComputersITEquipment: 0.0007,
		TVRadioPhone:         0.0006,
		Recreational:         0.0004,
		HotelsRestaurants:    0.0009,
		Telecoms:             0.0003,

		CarGasoline: 0.192,
		CarDiesel:   0.171,
		CarElectric: 0.053,
		Bus:         0.089,

		VehicleMaintenance: 0.0005,
		OtherActivity:      0.0004,
	}
}

// CommuteFactor resolves the per-km factor for a (mode, fuelType) pair.
// Bike and Walk are zero, and any combination without an entry resolves
// to zero as well so an unknown mode never aborts a computation.
func (t FactorTable) CommuteFactor(mode types.CommuteMode, fuel types.FuelType) float64 {
	switch mode {
	case types.ModeCar:
		switch fuel {
		case types.FuelGasoline:
			return t.CarGasoline
		case types.FuelDiesel:
			return t.CarDiesel
		case types.FuelElectric:
			return t.CarElectric
		}
		return 0
	case types.ModeBus:
		return t.Bus
	default:
		return 0
	}
}
