package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-greenprint/footprint"
	"go-greenprint/types"
)

// GetDemoFootprint computes a footprint for a canned household so the
// client can render the result screen without an account.
func GetDemoFootprint(c *gin.Context) {
	input := types.EmissionFactors{
		UserID:       "demo",
		Electricity:  "250 kWh per month",
		LPG:          "11 kg per month",
		FoodAndDrink: "400 USD per month",
		Commute: []types.CommuteRoute{
			{
				ID:       "demo-route",
				From:     "Home",
				To:       "Office",
				Mode:     types.ModeCar,
				FuelType: types.FuelGasoline,
				Distance: "12",
			},
		},
	}

	calc := footprint.NewCalculator(footprint.DefaultFactors())
	c.JSON(http.StatusOK, calc.Compute(input))
}
