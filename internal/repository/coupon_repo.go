package repository

import (
	"errors"
	"time"

	"selectz/internal/models"

	"gorm.io/gorm"
)

var ErrCouponNotFound = errors.New("coupon not found")

type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var c models.Coupon
	err := r.db.Where("code = ?", code).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) GetByID(id uint) (*models.Coupon, error) {
	var c models.Coupon
	err := r.db.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CountUsage returns the global redemption count for a coupon.
func (r *CouponRepository) CountUsage(couponID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CouponUsage{}).Where("coupon_id = ?", couponID).Count(&count).Error
	return count, err
}

// CountUsageByUser returns how many times one user has redeemed a coupon.
func (r *CouponRepository) CountUsageByUser(couponID uint, userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.CouponUsage{}).
		Where("coupon_id = ? AND user_id = ?", couponID, userID).
		Count(&count).Error
	return count, err
}

// RecordUsage writes a redemption row inside the settlement transaction. The
// unique index on order_id makes a replayed settlement a hard conflict rather
// than a double count.
func (r *CouponRepository) RecordUsage(tx *gorm.DB, u *models.CouponUsage) error {
	if u.UsedAt.IsZero() {
		u.UsedAt = time.Now()
	}
	return tx.Create(u).Error
}
