package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"selectz/config"
	"selectz/internal/metrics"
	"selectz/internal/middleware"
	"selectz/internal/service"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "x-razorpay-signature"

// webhookPayload is the processor's payment entity. Notes echo the business
// metadata the Order Initiator attached, but settlement trusts only the
// stored intent, never the notes.
type webhookPayload struct {
	Entity struct {
		ID        string            `json:"id"`
		Amount    int64             `json:"amount"`
		Currency  string            `json:"currency"`
		Status    string            `json:"status"`
		OrderID   string            `json:"order_id"`
		PaymentID string            `json:"payment_id"`
		Notes     map[string]string `json:"notes"`
	} `json:"entity"`
}

type WebhookHandler struct {
	settlementSvc *service.SettlementService
	cfg           *config.Config
}

func NewWebhookHandler(settlementSvc *service.SettlementService, cfg *config.Config) *WebhookHandler {
	return &WebhookHandler{settlementSvc: settlementSvc, cfg: cfg}
}

// Handle processes a processor webhook. Nothing is mutated before the
// signature over the raw body verifies. 400 on any failure so the processor's
// retry mechanism redelivers; settlement is idempotent, so redelivery is safe.
func (h *WebhookHandler) Handle(c *gin.Context) {
	logger := middleware.GetLogger(c)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body"})
		return
	}

	sig := c.GetHeader(signatureHeader)
	if sig == "" || h.cfg.Razorpay.WebhookSecret == "" {
		metrics.WebhookEvents.WithLabelValues("invalid_signature").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing signature"})
		return
	}
	if !h.verifySignature(body, sig) {
		metrics.WebhookEvents.WithLabelValues("invalid_signature").Inc()
		logger.Warn().Msg("webhook signature mismatch")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid signature"})
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}
	if payload.Entity.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "order_id required"})
		return
	}
	paymentID := payload.Entity.PaymentID
	if paymentID == "" {
		paymentID = payload.Entity.ID
	}

	result, err := h.settlementSvc.Settle(payload.Entity.OrderID, paymentID, payload.Entity.Status)
	switch {
	case errors.Is(err, service.ErrUnknownOrder):
		metrics.WebhookEvents.WithLabelValues("unknown_order").Inc()
		logger.Warn().Str("order_id", payload.Entity.OrderID).Msg("webhook for unknown order")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unknown order"})
		return
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unsupported payment status"})
		return
	case err != nil:
		metrics.WebhookEvents.WithLabelValues("error").Inc()
		logger.Error().Err(err).Str("order_id", payload.Entity.OrderID).Msg("settlement failed")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "settlement failed"})
		return
	}

	outcome := result.Intent.Status
	if result.Replayed {
		outcome = "replayed"
	}
	metrics.WebhookEvents.WithLabelValues(outcome).Inc()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WebhookHandler) verifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(h.cfg.Razorpay.WebhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}
