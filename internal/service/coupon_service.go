package service

import (
	"fmt"
	"time"

	"selectz/internal/models"
	"selectz/internal/repository"

	"github.com/rs/zerolog"
)

// ValidationResult is what the checkout flow renders: either a computed
// discount or a human-readable rejection. Never an internal error string.
type ValidationResult struct {
	Valid          bool   `json:"valid"`
	DiscountType   string `json:"discount_type,omitempty"`
	DiscountValue  int64  `json:"discount_value,omitempty"`
	DiscountAmount int64  `json:"discount_amount,omitempty"`
	Message        string `json:"message"`
	CouponID       uint   `json:"coupon_id,omitempty"`
}

type CouponService struct {
	couponRepo *repository.CouponRepository
	logger     zerolog.Logger
}

func NewCouponService(couponRepo *repository.CouponRepository, logger zerolog.Logger) *CouponService {
	return &CouponService{couponRepo: couponRepo, logger: logger}
}

func invalid(msg string) ValidationResult {
	return ValidationResult{Valid: false, Message: msg}
}

// Validate runs the ordered eligibility checks and computes the discount.
// First failing check wins; no partial discount on failure. Storage errors
// other than not-found degrade to a generic invalid result so checkout can
// show a message instead of crashing.
func (s *CouponService) Validate(code, userID, productType string, purchaseAmount int64) ValidationResult {
	coupon, err := s.couponRepo.GetByCode(code)
	if err == repository.ErrCouponNotFound {
		return invalid("Coupon not found")
	}
	if err != nil {
		s.logger.Error().Err(err).Str("code", code).Msg("coupon lookup failed")
		return invalid("Internal error")
	}

	if !coupon.Active {
		return invalid("Coupon is not active")
	}

	now := time.Now()
	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return invalid("Coupon is not yet valid")
	}
	if coupon.ValidTo != nil && now.After(*coupon.ValidTo) {
		return invalid("Coupon has expired")
	}

	if coupon.MaxUses != nil {
		used, err := s.couponRepo.CountUsage(coupon.ID)
		if err != nil {
			s.logger.Error().Err(err).Uint("coupon_id", coupon.ID).Msg("usage count failed")
			return invalid("Internal error")
		}
		if used >= int64(*coupon.MaxUses) {
			return invalid("Coupon usage limit reached")
		}
	}

	if coupon.MaxUsesPerUser != nil {
		used, err := s.couponRepo.CountUsageByUser(coupon.ID, userID)
		if err != nil {
			s.logger.Error().Err(err).Uint("coupon_id", coupon.ID).Msg("per-user usage count failed")
			return invalid("Internal error")
		}
		if used >= int64(*coupon.MaxUsesPerUser) {
			return invalid("Coupon usage limit reached for this user")
		}
	}

	if coupon.MinPurchaseAmount != nil && purchaseAmount < *coupon.MinPurchaseAmount {
		return invalid(fmt.Sprintf("Minimum purchase amount is ₹%d", *coupon.MinPurchaseAmount))
	}

	if products := coupon.ApplicableProducts(); len(products) > 0 {
		applicable := false
		for _, p := range products {
			if p == productType {
				applicable = true
				break
			}
		}
		if !applicable {
			return invalid("Coupon is not applicable for this product")
		}
	}

	return ValidationResult{
		Valid:          true,
		DiscountType:   coupon.DiscountType,
		DiscountValue:  coupon.DiscountValue,
		DiscountAmount: ComputeDiscount(coupon, purchaseAmount),
		Message:        "Coupon applied successfully",
		CouponID:       coupon.ID,
	}
}

// ComputeDiscount returns the discount for a purchase amount, clamped so the
// total never goes negative. Percentage discounts round down.
func ComputeDiscount(coupon *models.Coupon, purchaseAmount int64) int64 {
	var discount int64
	switch coupon.DiscountType {
	case models.DiscountTypePercentage:
		discount = purchaseAmount * coupon.DiscountValue / 100
	case models.DiscountTypeFlat:
		discount = coupon.DiscountValue
	}
	if discount > purchaseAmount {
		discount = purchaseAmount
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}
