package handler

import (
	"net/http"

	"selectz/config"
	"selectz/internal/metrics"
	"selectz/internal/middleware"
	"selectz/internal/models"
	"selectz/internal/repository"
	"selectz/internal/service"
	"selectz/pkg/payment"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cfg        *config.Config
	intentRepo *repository.PaymentIntentRepository
	couponSvc  *service.CouponService
	provider   payment.Provider
}

func NewOrderHandler(cfg *config.Config, intentRepo *repository.PaymentIntentRepository, couponSvc *service.CouponService, provider payment.Provider) *OrderHandler {
	return &OrderHandler{cfg: cfg, intentRepo: intentRepo, couponSvc: couponSvc, provider: provider}
}

// Create makes a remote order at the processor and persists a pending
// PaymentIntent carrying everything settlement needs later (purpose, credits
// amount or job id, coupon discount). Amounts come in as rupees; the remote
// order and the stored intent are in paise.
func (h *OrderHandler) Create(c *gin.Context) {
	logger := middleware.GetLogger(c)
	var req struct {
		Amount        int64   `json:"amount" binding:"required,min=1"`
		Currency      string  `json:"currency" binding:"required"`
		Description   string  `json:"description" binding:"required"`
		UserID        string  `json:"user_id" binding:"required"`
		PaymentType   string  `json:"payment_type" binding:"required,oneof=job_posting credits"`
		CreditsAmount *int    `json:"credits_amount"`
		JobID         *string `json:"job_id"`
		CouponCode    string  `json:"coupon_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "amount, currency, description, user_id and payment_type are required"})
		return
	}
	if req.PaymentType == models.PurposeCredits && (req.CreditsAmount == nil || *req.CreditsAmount <= 0) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "credits_amount required for credits purchase"})
		return
	}
	if req.PaymentType == models.PurposeJobPosting && (req.JobID == nil || *req.JobID == "") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "job_id required for job_posting purchase"})
		return
	}

	// Re-validate the coupon server-side; the client's earlier validation call
	// is advisory only.
	amount := req.Amount
	var couponID *uint
	var discount int64
	if req.CouponCode != "" {
		result := h.couponSvc.Validate(req.CouponCode, req.UserID, req.PaymentType, req.Amount)
		if !result.Valid {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": result.Message})
			return
		}
		discount = result.DiscountAmount
		amount = req.Amount - discount
		couponID = &result.CouponID
	}

	receipt := "selectz-" + uuid.New().String()
	notes := map[string]string{
		"user_id":      req.UserID,
		"payment_type": req.PaymentType,
	}
	if req.JobID != nil {
		notes["job_id"] = *req.JobID
	}

	order, err := h.provider.CreateOrder(c.Request.Context(), payment.OrderRequest{
		Amount:      amount * 100,
		Currency:    req.Currency,
		Receipt:     receipt,
		Description: req.Description,
		Notes:       notes,
	})
	if err != nil {
		logger.Error().Err(err).Str("receipt", receipt).Msg("remote order failed")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "payment processor error"})
		return
	}

	intent := &models.PaymentIntent{
		OrderID:        order.OrderID,
		UserID:         req.UserID,
		Amount:         amount * 100,
		Currency:       req.Currency,
		Purpose:        req.PaymentType,
		JobID:          req.JobID,
		CreditsAmount:  req.CreditsAmount,
		CouponID:       couponID,
		CouponCode:     req.CouponCode,
		DiscountAmount: discount * 100,
		Status:         models.IntentStatusPending,
	}
	if err := h.intentRepo.Create(intent); err != nil {
		// The remote order now has no local record; settlement for it will be
		// rejected as unknown. Loud log so it can be reconciled manually.
		logger.Error().Err(err).Str("order_id", order.OrderID).Msg("intent persist failed after remote order created")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "order could not be recorded"})
		return
	}
	metrics.OrdersCreated.Inc()
	logger.Info().
		Str("order_id", order.OrderID).
		Str("purpose", req.PaymentType).
		Int64("amount_paise", intent.Amount).
		Msg("order created")

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"order_id": order.OrderID,
		"amount":   intent.Amount,
		"currency": intent.Currency,
		"key_id":   h.cfg.Razorpay.KeyID,
	})
}

// List returns a user's payment intents, newest first.
func (h *OrderHandler) List(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id required"})
		return
	}
	intents, err := h.intentRepo.ListByUser(userID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": intents})
}
