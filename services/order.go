package services

import (
	"errors"
	"fmt"

	"restaurant-order-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VIP promotion thresholds: lifetime spend or lifetime order count.
var (
	vipSpendThreshold      = decimal.NewFromInt(200)
	vipOrderCountThreshold = 5
)

// vipDiscountRate is the flat discount applied to VIP subtotals.
var vipDiscountRate = decimal.NewFromFloat(0.05)

// OrderLine is one requested line of an order.
type OrderLine struct {
	DishID   uint
	Quantity int
}

// OrderResult is everything the API reports back after a successful placement.
type OrderResult struct {
	Order        models.Order
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal
	UserBalance  decimal.Decimal
	Role         models.UserRole
	JustPromoted bool
}

// OrderService owns the order-placement workflow. All validation happens
// before any write; the writes (order, items, user debit, promotion) commit
// as a single transaction or not at all.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// PlaceOrder validates and executes an order placement. The customer's
// balance is read and debited inside one transaction, so two concurrent
// orders cannot both pass the balance check against a stale balance.
func (s *OrderService) PlaceOrder(customerID uint, lines []OrderLine) (*OrderResult, error) {
	if customerID == 0 || len(lines) == 0 {
		return nil, newError(KindInvalidRequest, "user_id and items are required")
	}

	var result *OrderResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newError(KindNotFound, "User not found")
			}
			return err
		}
		if !user.CanTransact() {
			return newError(KindForbidden, "User is not allowed to place orders")
		}

		dishIDs := make([]uint, 0, len(lines))
		for _, line := range lines {
			if line.DishID == 0 {
				return newError(KindInvalidRequest, "Each item must include dish_id")
			}
			dishIDs = append(dishIDs, line.DishID)
		}

		var dishes []models.Dish
		if err := tx.Where("id IN ?", dishIDs).Find(&dishes).Error; err != nil {
			return err
		}
		dishByID := make(map[uint]models.Dish, len(dishes))
		for _, d := range dishes {
			dishByID[d.ID] = d
		}

		var missing []uint
		for _, id := range dishIDs {
			if _, ok := dishByID[id]; !ok {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			return newError(KindInvalidRequest, fmt.Sprintf("Unknown dish_id(s): %v", missing)).
				withField("missing_dish_ids", missing)
		}

		for _, line := range lines {
			if line.Quantity < 1 {
				return newError(KindInvalidRequest, "quantity must be >= 1")
			}
		}

		// VIP-only pass: allowed lines accumulate into the subtotal while
		// offending dish ids are collected; any offender rejects the whole
		// order and the tentative subtotal is discarded.
		subtotal := decimal.Zero
		var vipOnlyDishIDs []uint
		items := make([]models.OrderItem, 0, len(lines))

		for _, line := range lines {
			dish := dishByID[line.DishID]
			if dish.IsVipOnly && user.Role != models.RoleVIP {
				vipOnlyDishIDs = append(vipOnlyDishIDs, dish.ID)
				continue
			}
			subtotal = subtotal.Add(dish.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, models.OrderItem{
				DishID:    dish.ID,
				Quantity:  line.Quantity,
				UnitPrice: dish.Price,
			})
		}
		if len(vipOnlyDishIDs) > 0 {
			return newError(KindForbidden, "Non-VIP users cannot order VIP-only dishes.").
				withField("vip_only_dish_ids", vipOnlyDishIDs).
				withField("user_role", user.Role)
		}

		// Discount is decided from the customer's current role, before any
		// promotion this order may trigger.
		discount := decimal.Zero
		if user.Role == models.RoleVIP {
			discount = subtotal.Mul(vipDiscountRate).Round(2)
		}
		total := subtotal.Sub(discount)

		if user.DepositBalance.LessThan(total) {
			return newError(KindInsufficientFunds, "Insufficient balance").
				withField("required", total).
				withField("current_balance", user.DepositBalance)
		}

		order := models.Order{
			CustomerID:      user.ID,
			Status:          models.StatusPaid,
			TotalPrice:      total,
			DiscountApplied: discount,
			Items:           items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		user.DepositBalance = user.DepositBalance.Sub(total)
		user.TotalSpent = user.TotalSpent.Add(total)
		user.OrderCount++
		justPromoted := maybePromoteVIP(&user)

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		result = &OrderResult{
			Order:        order,
			Subtotal:     subtotal,
			Discount:     discount,
			Total:        total,
			UserBalance:  user.DepositBalance,
			Role:         user.Role,
			JustPromoted: justPromoted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// OrdersForUser returns the user's orders, newest first, items included.
func (s *OrderService) OrdersForUser(userID uint) ([]models.Order, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, "User not found")
		}
		return nil, err
	}

	var orders []models.Order
	err := s.db.Preload("Items").
		Where("customer_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// maybePromoteVIP applies the one-way VIP upgrade using the user's
// already-updated spend and order count. Reports true on promotion.
func maybePromoteVIP(u *models.User) bool {
	if u.Role == models.RoleVIP {
		return false
	}
	if u.TotalSpent.GreaterThanOrEqual(vipSpendThreshold) || u.OrderCount >= vipOrderCountThreshold {
		u.Role = models.RoleVIP
		return true
	}
	return false
}
