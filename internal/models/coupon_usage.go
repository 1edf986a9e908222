package models

import (
	"time"
)

// CouponUsage is one redemption record, written by the settlement transaction
// when a captured payment carried a coupon. Usage caps are counted from these rows.
type CouponUsage struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CouponID       uint      `gorm:"not null;index" json:"coupon_id"`
	UserID         string    `gorm:"size:64;not null;index" json:"user_id"`
	OrderID        string    `gorm:"size:255;uniqueIndex;not null" json:"order_id"`
	AmountBefore   int64     `gorm:"not null" json:"amount_before"`
	DiscountAmount int64     `gorm:"not null" json:"discount_amount"`
	AmountAfter    int64     `gorm:"not null" json:"amount_after"`
	UsedAt         time.Time `json:"used_at"`
}

func (CouponUsage) TableName() string {
	return "coupon_usages"
}
