package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-greenprint/processor"
	"go-greenprint/types"
)

// GetCarbonData returns the user's saved activity inputs, or an empty
// default set for first-time users.
func GetCarbonData(c *gin.Context, svc *processor.FootprintService) {
	userID := c.Param("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
		return
	}

	input, err := svc.LoadInputs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, input)
}

// SaveCarbonData saves the submitted activity inputs, recomputes the
// footprint snapshot and returns it. The inputs save and the snapshot
// save are separate writes; if the recompute fails the inputs are
// already persisted and the next save will recompute again.
func SaveCarbonData(c *gin.Context, svc *processor.FootprintService) {
	userID := c.Param("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
		return
	}

	var input types.EmissionFactors
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// The route owns the row key, not the payload.
	input.UserID = userID

	if err := svc.SaveInputs(c.Request.Context(), input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := svc.RecomputeAndSave(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetFootprint returns the latest computed snapshot, or an all-zero
// default when nothing has been computed yet.
func GetFootprint(c *gin.Context, svc *processor.FootprintService) {
	userID := c.Param("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
		return
	}

	result, err := svc.LoadResult(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
