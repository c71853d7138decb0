package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"restaurant-order-api/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role models.UserRole, balance string) models.User {
	t.Helper()
	userSeq++
	user := models.User{
		Name:           fmt.Sprintf("Test User %d", userSeq),
		Email:          fmt.Sprintf("user%d@example.com", userSeq),
		PasswordHash:   "not-a-real-hash",
		Role:           role,
		DepositBalance: dec(balance),
		IsActive:       true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedDish(t *testing.T, db *gorm.DB, name, price string, vipOnly bool) models.Dish {
	t.Helper()
	dish := models.Dish{
		Name:        name,
		Description: name + " description",
		Price:       dec(price),
		IsVipOnly:   vipOnly,
	}
	require.NoError(t, db.Create(&dish).Error)
	return dish
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireKind(t *testing.T, err error, kind ErrorKind) *Error {
	t.Helper()
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, kind, svcErr.Kind)
	return svcErr
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(dec(want)), "want %s, got %s", want, got)
}
