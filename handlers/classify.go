package handlers

import (
	"net/http"

	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"

	"go-greenprint/classify"
)

// SuggestCategory classifies a free-text activity description into one
// of the app's spending categories so the client can pre-select a
// section for a custom entry.
func SuggestCategory(c *gin.Context, langClient *language.Client) {
	var request struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := classify.SuggestCategory(langClient, request.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}
