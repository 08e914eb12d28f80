package services

import (
	"fmt"
	"testing"

	"github.com/Ataalp23/emlak-talep-backend/internal/dto"
	"github.com/Ataalp23/emlak-talep-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB returns an isolated in-memory store per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.BuyerRequest{},
		&models.Offer{},
		&models.Message{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, phone, userType string) *models.User {
	t.Helper()

	user, err := NewUserService(db).RegisterOrFetch(dto.CreateUserRequest{
		Phone:    phone,
		UserType: userType,
	})
	require.NoError(t, err)
	return user
}
