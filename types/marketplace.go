package types

// EcoImpact summarizes what buying a marketplace product saves.
type EcoImpact struct {
	CO2Saved    float64 `firestore:"co2_saved" json:"co2_saved"`
	WaterSaved  float64 `firestore:"water_saved" json:"water_saved"`
	EnergySaved float64 `firestore:"energy_saved" json:"energy_saved"`
}

// Product is a marketplace item redeemable with earned points. Amount is
// the point price.
type Product struct {
	ID           string    `firestore:"-" json:"id"`
	Name         string    `firestore:"name" json:"name"`
	Description  string    `firestore:"description" json:"description"`
	Amount       int64     `firestore:"amount" json:"amount"`
	ImageURL     string    `firestore:"image_url" json:"image_url"`
	Category     string    `firestore:"category" json:"category"`
	Rating       float64   `firestore:"rating" json:"rating"`
	ReviewsCount int64     `firestore:"reviews_count" json:"reviews_count"`
	EcoImpact    EcoImpact `firestore:"eco_impact" json:"eco_impact"`
	CreatedAt    string    `firestore:"created_at" json:"created_at"`
}
