package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFlat       = "flat"
)

// Coupon is a named discount rule. Eligibility windows, usage caps and the
// applicable product list are all optional; a zero/null bound means "no limit".
type Coupon struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Code              string         `gorm:"size:64;uniqueIndex;not null" json:"code"`
	DiscountType      string         `gorm:"size:20;not null" json:"discount_type"` // percentage, flat
	DiscountValue     int64          `gorm:"not null" json:"discount_value"`
	Active            bool           `gorm:"not null;default:true" json:"active"`
	ValidFrom         *time.Time     `json:"valid_from,omitempty"`
	ValidTo           *time.Time     `json:"valid_to,omitempty"`
	MaxUses           *int           `json:"max_uses,omitempty"`
	MaxUsesPerUser    *int           `json:"max_uses_per_user,omitempty"`
	MinPurchaseAmount *int64         `json:"min_purchase_amount,omitempty"`
	ApplicableTo      string         `gorm:"type:text" json:"applicable_to,omitempty"` // JSON array of product types
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Coupon) TableName() string {
	return "coupons"
}

// ApplicableProducts parses the stored JSON list. Empty or malformed means
// the coupon applies to every product type.
func (c *Coupon) ApplicableProducts() []string {
	if c.ApplicableTo == "" {
		return nil
	}
	var products []string
	if err := json.Unmarshal([]byte(c.ApplicableTo), &products); err != nil {
		return nil
	}
	return products
}
