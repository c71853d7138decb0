package handlers

import (
	"net/http"

	"restaurant-order-api/config"
	"restaurant-order-api/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DepositRequest struct {
	UserID uint            `json:"user_id" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// Deposit adds funds to a user's wallet balance
func Deposit(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and amount are required"})
		return
	}

	user, err := services.NewWalletService(config.DB).Deposit(req.UserID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deposit successful",
		"user": gin.H{
			"id":              user.ID,
			"name":            user.Name,
			"email":           user.Email,
			"deposit_balance": user.DepositBalance,
		},
	})
}
