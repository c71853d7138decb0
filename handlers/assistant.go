package handlers

import (
	"net/http"
	"strings"

	"restaurant-order-api/config"
	"restaurant-order-api/models"
	"restaurant-order-api/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ChatRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type RecommendRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	MaxPrice   any    `json:"max_price"`
	Preference string `json:"preference"`
	MaxResults int    `json:"max_results"`
}

// Chat forwards the user's message, with menu context, to the LLM assistant
func Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and message are required"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if !user.CanTransact() {
		c.JSON(http.StatusForbidden, gin.H{"error": "User is not allowed to use the assistant"})
		return
	}

	// Menu context for the model: the 20 cheapest dishes
	var dishes []models.Dish
	config.DB.Order("price asc").Limit(20).Find(&dishes)

	prompt := services.BuildAssistantPrompt(dishes, user.Role, strings.TrimSpace(req.Message))

	client := services.NewAssistantClient(config.OllamaURL, config.OllamaModel, config.AssistantTimeout)
	answer, err := client.Chat(c.Request.Context(), prompt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answer":    answer,
		"user_role": user.Role,
	})
}

// Recommend ranks dishes for the user with the in-memory scorer
func Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if !user.CanTransact() {
		c.JSON(http.StatusForbidden, gin.H{"error": "User is not allowed to place orders"})
		return
	}

	var dishes []models.Dish
	config.DB.Find(&dishes)

	maxPrice := parseMaxPrice(req.MaxPrice)
	recommendations := services.Recommend(dishes, user.Role, maxPrice, req.Preference, req.MaxResults)
	if recommendations == nil {
		recommendations = []services.RecommendedDish{}
	}

	summary := "Recommendations"
	var parts []string
	if maxPrice != nil {
		parts = append(parts, "under $"+maxPrice.String())
	}
	if pref := strings.ToLower(strings.TrimSpace(req.Preference)); pref != "" {
		parts = append(parts, "matching '"+pref+"'")
	}
	if len(parts) > 0 {
		summary += " " + strings.Join(parts, " and ")
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         summary,
		"user_role":       user.Role,
		"recommendations": recommendations,
	})
}

// parseMaxPrice accepts a number or numeric string; anything else is
// ignored rather than rejected.
func parseMaxPrice(v any) *decimal.Decimal {
	switch val := v.(type) {
	case float64:
		d := decimal.NewFromFloat(val)
		return &d
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(val)); err == nil {
			return &d
		}
	}
	return nil
}
