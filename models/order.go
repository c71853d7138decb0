package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusPreparing OrderStatus = "preparing"
	StatusOnTheWay  OrderStatus = "on_the_way"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// AllOrderStatuses lists every valid status, sorted, for validation error messages.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{StatusCancelled, StatusDelivered, StatusOnTheWay, StatusPaid, StatusPending, StatusPreparing}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusPreparing, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	CustomerID      uint            `json:"customer_id" gorm:"not null"`
	Customer        User            `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Status          OrderStatus     `json:"status" gorm:"not null;default:'pending'"`
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2)"`
	DiscountApplied decimal.Decimal `json:"discount_applied" gorm:"type:decimal(10,2)"`
	Items           []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem belongs to exactly one order; created with it, never standalone.
type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null"`
	DishID    uint            `json:"dish_id" gorm:"not null"`
	Dish      Dish            `json:"dish,omitempty" gorm:"foreignKey:DishID"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"` // snapshot price at time of order
}
