package repository

import (
	"fmt"
	"testing"

	"selectz/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.PaymentIntent{},
		&models.Coupon{},
		&models.CouponUsage{},
		&models.CreditsBalance{},
		&models.Job{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
