package handlers

import (
	"fmt"
	"net/http"

	"restaurant-order-api/config"
	"restaurant-order-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// NOTE: the admin surface is unauthenticated, matching the reference
// system. Locking it down is follow-on auth work, not part of this core.

// AdminGetAllUsers returns all users with key stats
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Order("id asc").Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminGetAllOrders returns all orders with items, plus dashboard aggregates
func AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	query.Order("created_at desc").Find(&orders)

	// Admin dashboard: aggregate by status
	summary := map[string]int{}
	totalRevenue := decimal.Zero
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status != models.StatusCancelled {
			totalRevenue = totalRevenue.Add(o.TotalPrice)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

// AdminUpdateUserStatus updates a user's active / blacklisted flags.
// Fields omitted from the body are left unchanged.
func AdminUpdateUserStatus(c *gin.Context) {
	var req struct {
		IsActive      *bool `json:"is_active"`
		IsBlacklisted *bool `json:"is_blacklisted"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsBlacklisted != nil {
		user.IsBlacklisted = *req.IsBlacklisted
	}
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated", "user": user})
}

// AdminUpdateUserRole sets a user's role to any value from the closed enum
func AdminUpdateUserRole(c *gin.Context) {
	var req struct {
		Role models.UserRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role is required"})
		return
	}

	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid role. Must be one of %v.", models.AllRoles()),
		})
		return
	}

	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.Role = req.Role
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User role updated", "user": user})
}

// AdminUpdateOrderStatus sets an order's status to any value from the
// closed enum. No transition restrictions beyond enum membership.
func AdminUpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid status. Must be one of %v.", models.AllOrderStatuses()),
		})
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	order.Status = req.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
}
