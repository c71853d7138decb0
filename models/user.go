package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleVIP      UserRole = "vip"
	RoleChef     UserRole = "chef"
	RoleManager  UserRole = "manager"
	RoleDelivery UserRole = "delivery"
)

// AllRoles lists every valid role, sorted, for validation error messages.
func AllRoles() []UserRole {
	return []UserRole{RoleChef, RoleCustomer, RoleDelivery, RoleManager, RoleVIP}
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleVIP, RoleChef, RoleManager, RoleDelivery:
		return true
	}
	return false
}

type User struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"not null"`
	Email          string          `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash   string          `json:"-" gorm:"not null"`
	Role           UserRole        `json:"role" gorm:"not null;default:'customer'"`
	DepositBalance decimal.Decimal `json:"deposit_balance" gorm:"type:decimal(10,2);default:0"`
	TotalSpent     decimal.Decimal `json:"total_spent" gorm:"type:decimal(10,2);default:0"`
	OrderCount     int             `json:"order_count" gorm:"default:0"`
	Warnings       int             `json:"warnings" gorm:"default:0"`
	IsBlacklisted  bool            `json:"is_blacklisted" gorm:"default:false"`
	IsActive       bool            `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CanTransact reports whether the user may place orders or move money.
func (u *User) CanTransact() bool {
	return u.IsActive && !u.IsBlacklisted
}
