package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"selectz/internal/models"
	"selectz/internal/repository"
	"selectz/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func newCouponRouter(db *gorm.DB) *gin.Engine {
	svc := service.NewCouponService(repository.NewCouponRepository(db), zerolog.Nop())
	h := NewCouponHandler(svc)
	r := gin.New()
	r.POST("/api/v1/coupons/validate", h.Validate)
	return r
}

func postValidate(r *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/coupons/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateEndpoint(t *testing.T) {
	db := newTestDB(t)
	r := newCouponRouter(db)
	if err := db.Create(&models.Coupon{
		Code: "SAVE10", DiscountType: models.DiscountTypePercentage, DiscountValue: 10, Active: true,
	}).Error; err != nil {
		t.Fatalf("seed coupon: %v", err)
	}

	w := postValidate(r, map[string]interface{}{
		"in_code":            "SAVE10",
		"in_user_id":         "user-1",
		"in_product_type":    "job_posting",
		"in_purchase_amount": 5000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res service.ValidationResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if !res.Valid || res.DiscountAmount != 500 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestValidateEndpointBusinessRejectionIs200(t *testing.T) {
	db := newTestDB(t)
	r := newCouponRouter(db)

	w := postValidate(r, map[string]interface{}{
		"in_code":            "MISSING",
		"in_user_id":         "user-1",
		"in_product_type":    "credits",
		"in_purchase_amount": 5000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("business rejection is a normal outcome, expected 200, got %d", w.Code)
	}
	var res service.ValidationResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Valid || res.Message != "Coupon not found" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestValidateEndpointMalformedInput(t *testing.T) {
	db := newTestDB(t)
	r := newCouponRouter(db)

	w := postValidate(r, map[string]interface{}{"in_code": "SAVE10"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}
}
