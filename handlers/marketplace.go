package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-greenprint/db"
)

// GetProducts returns the marketplace catalog, optionally filtered by
// the category query parameter.
func GetProducts(c *gin.Context, repo *db.MarketplaceRepository) {
	category := c.Query("category")

	var err error
	var products interface{}
	if category != "" {
		products, err = repo.GetProductsByCategory(c.Request.Context(), category)
	} else {
		products, err = repo.GetProducts(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct returns a single marketplace product.
func GetProduct(c *gin.Context, repo *db.MarketplaceRepository) {
	productID := c.Param("productID")

	product, err := repo.GetProduct(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// PurchaseProduct redeems a product for points and reports the outcome
// message. An unaffordable purchase is a normal outcome, not an error.
func PurchaseProduct(c *gin.Context, repo *db.MarketplaceRepository) {
	var request struct {
		UserID    string `json:"user_id" binding:"required"`
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := repo.PurchaseProduct(c.Request.Context(), request.UserID, request.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   message,
		"purchased": message == db.PurchaseOK,
	})
}
