package handler

import (
	"net/http"

	"selectz/internal/metrics"
	"selectz/internal/middleware"
	"selectz/internal/service"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponSvc *service.CouponService
}

func NewCouponHandler(couponSvc *service.CouponService) *CouponHandler {
	return &CouponHandler{couponSvc: couponSvc}
}

// Validate checks a coupon against a prospective purchase and returns the
// computed discount. A business-rule rejection is a normal 200 response with
// valid=false; only malformed input is a 400.
func (h *CouponHandler) Validate(c *gin.Context) {
	var req struct {
		Code           string `json:"in_code" binding:"required"`
		UserID         string `json:"in_user_id" binding:"required"`
		ProductType    string `json:"in_product_type" binding:"required"`
		PurchaseAmount int64  `json:"in_purchase_amount" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "in_code, in_user_id, in_product_type and in_purchase_amount are required"})
		return
	}

	result := h.couponSvc.Validate(req.Code, req.UserID, req.ProductType, req.PurchaseAmount)
	verdict := "invalid"
	if result.Valid {
		verdict = "valid"
	}
	metrics.CouponValidations.WithLabelValues(verdict).Inc()
	if !result.Valid {
		logger := middleware.GetLogger(c)
		logger.Debug().
			Str("code", req.Code).
			Str("reason", result.Message).
			Msg("coupon rejected")
	}
	c.JSON(http.StatusOK, result)
}
