package types

type Frequency string

const (
	Weekly  Frequency = "week"
	Monthly Frequency = "month"
	Yearly  Frequency = "year"
)

type CommuteMode string

const (
	ModeCar        CommuteMode = "Car"
	ModeBus        CommuteMode = "Bus"
	ModeTrain      CommuteMode = "Train"
	ModeTricycle   CommuteMode = "Tricycle"
	ModeMotorcycle CommuteMode = "Motorcycle"
	ModeBike       CommuteMode = "Bike"
	ModeWalk       CommuteMode = "Walk"
)

type FuelType string

const (
	FuelGasoline FuelType = "Gasoline"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
)

// EmissionFactors is a user's latest self-reported household activity.
// Exactly one row exists per user, keyed by user_id.
//
// The twelve scalar categories are stored as composite strings in the
// "<amount> <unit> per <frequency>" wire format (see Quantity); a bare
// numeric string is also accepted at some call sites and treated as a
// yearly amount.
type EmissionFactors struct {
	UserID string `firestore:"user_id" json:"user_id"`

	// Utilities
	Electricity string `firestore:"electricity" json:"electricity"`
	LPG         string `firestore:"lpg" json:"lpg"`
	Coal        string `firestore:"coal" json:"coal"`

	// Food & Lifestyle
	Pharmaceuticals      string `firestore:"pharmaceuticals" json:"pharmaceuticals"`
	ClothesTextilesShoes string `firestore:"clothes_textiles_shoes" json:"clothes_textiles_shoes"`
	FurnitureOtherGoods  string `firestore:"furniture_other_goods" json:"furniture_other_goods"`
	FoodAndDrink         string `firestore:"food_and_drink" json:"food_and_drink"`

	// Technology & Entertainment
	ComputersITEquipment       string `firestore:"computers_it_equipment" json:"computers_it_equipment"`
	TVRadioPhoneEquipment      string `firestore:"tv_radio_phone_equipment" json:"tv_radio_phone_equipment"`
	RecreationalCulturalSports string `firestore:"recreational_cultural_sports" json:"recreational_cultural_sports"`

	// Services
	HotelsRestaurantsPubs string `firestore:"hotels_restaurants_pubs" json:"hotels_restaurants_pubs"`
	Telecoms              string `firestore:"telecoms" json:"telecoms"`

	Commute  []CommuteRoute   `firestore:"commute" json:"commute"`
	Vehicles []CustomActivity `firestore:"vehicles" json:"vehicles"`
	Other    []CustomActivity `firestore:"other" json:"other"`
}

// CommuteRoute is a single recurring route. The ID is assigned by the
// client for list diffing and is not a persistence key.
type CommuteRoute struct {
	ID       string      `firestore:"id" json:"id"`
	From     string      `firestore:"from" json:"from"`
	To       string      `firestore:"to" json:"to"`
	Mode     CommuteMode `firestore:"mode" json:"mode"`
	FuelType FuelType    `firestore:"fuel_type,omitempty" json:"fuel_type,omitempty"` // only set when Mode is Car
	// Distance is km as a numeric string; empty until the user (or the
	// distance backfill job) fills it in.
	Distance  string `firestore:"distance" json:"distance"`
	FuelUsage string `firestore:"fuel_usage,omitempty" json:"fuel_usage,omitempty"`
}

// CustomActivity is a user-defined spending line item. The unit label is
// display-only; computation always applies the owning section's factor.
type CustomActivity struct {
	ID        string    `firestore:"id" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Value     string    `firestore:"value" json:"value"` // currency amount as a numeric string
	Unit      string    `firestore:"unit" json:"unit"`
	Frequency Frequency `firestore:"frequency" json:"frequency"`
}

// TotalFootprint holds the per-period projections of a single yearly
// total, all in kg CO2e. Daily/weekly/monthly are derived from Yearly by
// fixed divisors, never measured independently.
type TotalFootprint struct {
	Daily   float64 `firestore:"daily" json:"daily"`
	Weekly  float64 `firestore:"weekly" json:"weekly"`
	Monthly float64 `firestore:"monthly" json:"monthly"`
	Yearly  float64 `firestore:"yearly" json:"yearly"`
}

// Contributor is one category's share of the yearly total.
type Contributor struct {
	Category string  `firestore:"category" json:"category"`
	Emission float64 `firestore:"emission" json:"emission"`
}

// CarbonFootprintResult is the latest computed snapshot for a user.
// One row per user, replaced wholesale on every recomputation.
type CarbonFootprintResult struct {
	UserID               string         `firestore:"user_id" json:"user_id"`
	TotalCarbonFootprint TotalFootprint `firestore:"total_carbon_footprint" json:"total_carbon_footprint"`
	// TopContributors lists the non-zero categories sorted descending by
	// emission. The UI conventionally shows the first three.
	TopContributors []Contributor `firestore:"top_contributors" json:"top_contributors"`
}
