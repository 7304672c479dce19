package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-greenprint/db"
)

// GetUserPoints returns the user's current point balance.
func GetUserPoints(c *gin.Context, repo *db.PointsRepository) {
	userID := c.Param("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
		return
	}

	points, err := repo.GetUserPoints(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "points": points})
}

// GetPointHistory returns the user's point ledger, newest first.
func GetPointHistory(c *gin.Context, repo *db.PointsRepository) {
	userID := c.Param("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
		return
	}

	entries, err := repo.GetPointTransactions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": entries})
}

// AddPoints appends a ledger entry and adjusts the balance. Exposed for
// manual adjustments; task approvals award points through their own flow.
func AddPoints(c *gin.Context, repo *db.PointsRepository) {
	var request struct {
		UserID string `json:"user_id" binding:"required"`
		Points int64  `json:"points" binding:"required"`
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := repo.AddPoints(c.Request.Context(), request.UserID, request.Points, request.Reason)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}
