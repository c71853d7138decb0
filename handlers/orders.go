package handlers

import (
	"net/http"
	"strconv"

	"restaurant-order-api/config"
	"restaurant-order-api/services"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	Items  []struct {
		DishID   uint `json:"dish_id" binding:"required"`
		Quantity *int `json:"quantity"`
	} `json:"items" binding:"required,min=1,dive"`
}

// PlaceOrder validates and executes an order as one atomic transaction
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and items are required"})
		return
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		lines = append(lines, services.OrderLine{DishID: item.DishID, Quantity: quantity})
	}

	result, err := services.NewOrderService(config.DB).PlaceOrder(req.UserID, lines)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Order.Items))
	for _, item := range result.Order.Items {
		items = append(items, gin.H{
			"dish_id":    item.DishID,
			"quantity":   item.Quantity,
			"unit_price": item.UnitPrice,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created",
		"order": gin.H{
			"id":          result.Order.ID,
			"customer_id": result.Order.CustomerID,
			"status":      result.Order.Status,
			"subtotal":    result.Subtotal,
			"discount":    result.Discount,
			"total":       result.Total,
			"created_at":  result.Order.CreatedAt,
			"items":       items,
		},
		"user_balance": result.UserBalance,
		"vip_status": gin.H{
			"role":          result.Role,
			"just_promoted": result.JustPromoted,
		},
	})
}

// GetUserOrders returns all orders for a given user, newest first
func GetUserOrders(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	orders, err := services.NewOrderService(config.DB).OrdersForUser(uint(userID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
