package models

import (
	"time"
)

const (
	IntentStatusPending  = "pending"
	IntentStatusCaptured = "captured"
	IntentStatusFailed   = "failed"
)

const (
	PurposeJobPosting = "job_posting"
	PurposeCredits    = "credits"
)

// PaymentIntent tracks one attempted purchase from order creation to settlement.
// Rows are never deleted; status only moves pending -> captured|failed.
type PaymentIntent struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	OrderID        string     `gorm:"size:255;uniqueIndex;not null" json:"order_id"`
	UserID         string     `gorm:"size:64;not null;index" json:"user_id"`
	Amount         int64      `gorm:"not null" json:"amount"` // paise
	Currency       string     `gorm:"size:3;default:'INR'" json:"currency"`
	Purpose        string     `gorm:"size:20;not null" json:"purpose"` // job_posting, credits
	JobID          *string    `gorm:"size:64" json:"job_id,omitempty"`
	CreditsAmount  *int       `json:"credits_amount,omitempty"`
	CouponID       *uint      `json:"coupon_id,omitempty"`
	CouponCode     string     `gorm:"size:64" json:"coupon_code,omitempty"`
	DiscountAmount int64      `json:"discount_amount"` // paise, 0 when no coupon
	Status         string     `gorm:"size:20;not null;index" json:"status"`
	PaymentID      string     `gorm:"size:255" json:"payment_id,omitempty"` // processor payment id, set at settlement
	SettledAt      *time.Time `json:"settled_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (PaymentIntent) TableName() string {
	return "payment_intents"
}
