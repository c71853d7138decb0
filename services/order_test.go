package services

import (
	"testing"

	"restaurant-order-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderBasicMath(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleCustomer, "100")
	burger := seedDish(t, db, "Burger", "10", false)
	fries := seedDish(t, db, "Fries", "5", false)

	result, err := svc.PlaceOrder(user.ID, []OrderLine{
		{DishID: burger.ID, Quantity: 2},
		{DishID: fries.ID, Quantity: 1},
	})
	require.NoError(t, err)

	requireDecimal(t, "25", result.Subtotal)
	requireDecimal(t, "0", result.Discount)
	requireDecimal(t, "25", result.Total)
	requireDecimal(t, "75", result.UserBalance)
	assert.Equal(t, models.StatusPaid, result.Order.Status)
	assert.False(t, result.JustPromoted)

	require.Len(t, result.Order.Items, 2)
	requireDecimal(t, "10", result.Order.Items[0].UnitPrice)
	assert.Equal(t, 2, result.Order.Items[0].Quantity)

	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	requireDecimal(t, "75", saved.DepositBalance)
	requireDecimal(t, "25", saved.TotalSpent)
	assert.Equal(t, 1, saved.OrderCount)
	assert.Equal(t, models.RoleCustomer, saved.Role)
}

func TestPlaceOrderVIPDiscount(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleVIP, "100")
	lobster := seedDish(t, db, "Lobster", "100", false)

	result, err := svc.PlaceOrder(user.ID, []OrderLine{{DishID: lobster.ID, Quantity: 1}})
	require.NoError(t, err)

	requireDecimal(t, "100", result.Subtotal)
	requireDecimal(t, "5.00", result.Discount)
	requireDecimal(t, "95", result.Total)
	requireDecimal(t, "5", result.UserBalance)
}

func TestPlaceOrderDiscountRounding(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleVIP, "100")
	dish := seedDish(t, db, "Tapas", "12.49", false)

	result, err := svc.PlaceOrder(user.ID, []OrderLine{{DishID: dish.ID, Quantity: 1}})
	require.NoError(t, err)

	// 12.49 * 0.05 = 0.6245, rounds to 0.62
	requireDecimal(t, "0.62", result.Discount)
	requireDecimal(t, "11.87", result.Total)
}

func TestPlaceOrderVIPOnlyRejectedInFull(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleCustomer, "100")
	caviar := seedDish(t, db, "Caviar", "50", true)
	burger := seedDish(t, db, "Burger", "10", false)

	_, err := svc.PlaceOrder(user.ID, []OrderLine{
		{DishID: burger.ID, Quantity: 1},
		{DishID: caviar.ID, Quantity: 1},
	})
	svcErr := requireKind(t, err, KindForbidden)
	assert.Equal(t, []uint{caviar.ID}, svcErr.Fields["vip_only_dish_ids"])

	// Whole order rejected: nothing persisted, balance untouched
	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)

	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	requireDecimal(t, "100", saved.DepositBalance)
	assert.Equal(t, 0, saved.OrderCount)
}

func TestPlaceOrderVIPCanOrderVIPOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleVIP, "100")
	caviar := seedDish(t, db, "Caviar", "50", true)

	result, err := svc.PlaceOrder(user.ID, []OrderLine{{DishID: caviar.ID, Quantity: 1}})
	require.NoError(t, err)
	requireDecimal(t, "2.50", result.Discount)
	requireDecimal(t, "47.50", result.Total)
}

func TestPlaceOrderInsufficientFunds(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleCustomer, "10")
	burger := seedDish(t, db, "Burger", "10", false)

	_, err := svc.PlaceOrder(user.ID, []OrderLine{{DishID: burger.ID, Quantity: 3}})
	svcErr := requireKind(t, err, KindInsufficientFunds)
	requireDecimal(t, "30", svcErr.Fields["required"].(decimal.Decimal))
	requireDecimal(t, "10", svcErr.Fields["current_balance"].(decimal.Decimal))

	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	requireDecimal(t, "10", saved.DepositBalance)
	requireDecimal(t, "0", saved.TotalSpent)
	assert.Equal(t, 0, saved.OrderCount)

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)
}

func TestPlaceOrderExactBalanceAllowed(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleCustomer, "30")
	burger := seedDish(t, db, "Burger", "10", false)

	result, err := svc.PlaceOrder(user.ID, []OrderLine{{DishID: burger.ID, Quantity: 3}})
	require.NoError(t, err)
	requireDecimal(t, "0", result.UserBalance)
}

func TestPlaceOrderUnknownDishes(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleCustomer, "100")
	burger := seedDish(t, db, "Burger", "10", false)

	_, err := svc.PlaceOrder(user.ID, []OrderLine{
		{DishID: burger.ID, Quantity: 1},
		{DishID: 999, Quantity: 1},
	})
	svcErr := requireKind(t, err, KindInvalidRequest)
	assert.Equal(t, []uint{999}, svcErr.Fields["missing_dish_ids"])
}

func TestPlaceOrderQuantityBelowOne(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleCustomer, "100")
	burger := seedDish(t, db, "Burger", "10", false)

	_, err := svc.PlaceOrder(user.ID, []OrderLine{{DishID: burger.ID, Quantity: 0}})
	requireKind(t, err, KindInvalidRequest)
}

func TestPlaceOrderEmptyRequest(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.PlaceOrder(0, []OrderLine{{DishID: 1, Quantity: 1}})
	requireKind(t, err, KindInvalidRequest)

	user := seedUser(t, db, models.RoleCustomer, "100")
	_, err = svc.PlaceOrder(user.ID, nil)
	requireKind(t, err, KindInvalidRequest)
}

func TestPlaceOrderUserNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	burger := seedDish(t, db, "Burger", "10", false)

	_, err := svc.PlaceOrder(999, []OrderLine{{DishID: burger.ID, Quantity: 1}})
	requireKind(t, err, KindNotFound)
}

func TestPlaceOrderBlockedUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	burger := seedDish(t, db, "Burger", "10", false)

	blacklisted := seedUser(t, db, models.RoleCustomer, "100")
	require.NoError(t, db.Model(&blacklisted).Update("is_blacklisted", true).Error)
	_, err := svc.PlaceOrder(blacklisted.ID, []OrderLine{{DishID: burger.ID, Quantity: 1}})
	requireKind(t, err, KindForbidden)

	inactive := seedUser(t, db, models.RoleCustomer, "100")
	require.NoError(t, db.Model(&inactive).Update("is_active", false).Error)
	_, err = svc.PlaceOrder(inactive.ID, []OrderLine{{DishID: burger.ID, Quantity: 1}})
	requireKind(t, err, KindForbidden)
}

func TestVIPPromotionBySpend(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleCustomer, "100")
	require.NoError(t, db.Model(&user).Update("total_spent", dec("150")).Error)
	dish := seedDish(t, db, "Steak", "50", false)

	result, err := svc.PlaceOrder(user.ID, []OrderLine{{DishID: dish.ID, Quantity: 1}})
	require.NoError(t, err)

	// Spend crosses 200 exactly on this order: promoted, but this order's
	// discount was decided from the pre-promotion role.
	assert.True(t, result.JustPromoted)
	assert.Equal(t, models.RoleVIP, result.Role)
	requireDecimal(t, "0", result.Discount)
	requireDecimal(t, "50", result.Total)

	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	assert.Equal(t, models.RoleVIP, saved.Role)
	requireDecimal(t, "200", saved.TotalSpent)
}

func TestVIPPromotionByOrderCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleCustomer, "100")
	require.NoError(t, db.Model(&user).Update("order_count", 4).Error)
	fries := seedDish(t, db, "Fries", "5", false)

	result, err := svc.PlaceOrder(user.ID, []OrderLine{{DishID: fries.ID, Quantity: 1}})
	require.NoError(t, err)
	assert.True(t, result.JustPromoted)
	assert.Equal(t, models.RoleVIP, result.Role)
}

func TestNoPromotionBelowThresholds(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleCustomer, "100")
	fries := seedDish(t, db, "Fries", "5", false)

	result, err := svc.PlaceOrder(user.ID, []OrderLine{{DishID: fries.ID, Quantity: 1}})
	require.NoError(t, err)
	assert.False(t, result.JustPromoted)
	assert.Equal(t, models.RoleCustomer, result.Role)
}

func TestAlreadyVIPNotRePromoted(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleVIP, "1000")
	require.NoError(t, db.Model(&user).Update("total_spent", dec("500")).Error)
	dish := seedDish(t, db, "Steak", "50", false)

	result, err := svc.PlaceOrder(user.ID, []OrderLine{{DishID: dish.ID, Quantity: 1}})
	require.NoError(t, err)
	assert.False(t, result.JustPromoted)
	assert.Equal(t, models.RoleVIP, result.Role)
}

func TestOrdersForUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db)
	user := seedUser(t, db, models.RoleCustomer, "100")
	burger := seedDish(t, db, "Burger", "10", false)

	_, err := svc.PlaceOrder(user.ID, []OrderLine{{DishID: burger.ID, Quantity: 1}})
	require.NoError(t, err)
	_, err = svc.PlaceOrder(user.ID, []OrderLine{{DishID: burger.ID, Quantity: 2}})
	require.NoError(t, err)

	orders, err := svc.OrdersForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Len(t, orders[0].Items, 1)

	_, err = svc.OrdersForUser(999)
	requireKind(t, err, KindNotFound)
}
