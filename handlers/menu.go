package handlers

import (
	"net/http"
	"strings"

	"restaurant-order-api/config"
	"restaurant-order-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateDishRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`
	IsVipOnly   bool            `json:"is_vip_only"`
	ChefID      *uint           `json:"chef_id"`
}

// GetMenu returns all dishes; ?vip=true|false filters by VIP visibility
func GetMenu(c *gin.Context) {
	var dishes []models.Dish
	query := config.DB

	if vip := c.Query("vip"); vip == "true" || vip == "false" {
		query = query.Where("is_vip_only = ?", vip == "true")
	}

	query.Find(&dishes)
	c.JSON(http.StatusOK, gin.H{"count": len(dishes), "dishes": dishes})
}

// CreateDish inserts a new menu item. Dishes are immutable once created.
func CreateDish(c *gin.Context) {
	var req CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, description, price are required"})
		return
	}

	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be > 0"})
		return
	}

	dish := models.Dish{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsVipOnly:   req.IsVipOnly,
		ChefID:      req.ChefID,
	}

	if err := config.DB.Create(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dish"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Dish created", "dish": dish})
}
