package services

import (
	"errors"

	"restaurant-order-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletService credits deposit balances. Deposits only add; there is no
// withdrawal path, so the non-negative balance invariant cannot be broken here.
type WalletService struct {
	db *gorm.DB
}

func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{db: db}
}

// Deposit adds amount to the user's balance and returns the updated user.
func (s *WalletService) Deposit(userID uint, amount decimal.Decimal) (*models.User, error) {
	if userID == 0 {
		return nil, newError(KindInvalidRequest, "user_id and amount are required")
	}
	if !amount.IsPositive() {
		return nil, newError(KindInvalidRequest, "amount must be > 0")
	}

	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newError(KindNotFound, "User not found")
			}
			return err
		}
		if !user.CanTransact() {
			return newError(KindForbidden, "User is not allowed to deposit")
		}

		user.DepositBalance = user.DepositBalance.Add(amount)
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
