package repository

import (
	"errors"
	"testing"

	"selectz/internal/models"
)

func TestTransitionPendingToCaptured(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentIntentRepository(db)
	err := db.Create(&models.PaymentIntent{
		OrderID: "order_t1",
		UserID:  "emp-1",
		Amount:  1000,
		Purpose: models.PurposeCredits,
		Status:  models.IntentStatusPending,
	}).Error
	if err != nil {
		t.Fatal(err)
	}

	p, err := repo.Transition(db, "order_t1", models.IntentStatusCaptured, "pay_1")
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if p.Status != models.IntentStatusCaptured || p.PaymentID != "pay_1" {
		t.Errorf("unexpected intent: %+v", p)
	}
	if p.SettledAt == nil {
		t.Error("expected settled_at to be set")
	}
}

func TestTransitionTerminalIsAlreadySettled(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentIntentRepository(db)
	err := db.Create(&models.PaymentIntent{
		OrderID: "order_t2",
		UserID:  "emp-1",
		Amount:  1000,
		Purpose: models.PurposeCredits,
		Status:  models.IntentStatusCaptured,
	}).Error
	if err != nil {
		t.Fatal(err)
	}

	p, err := repo.Transition(db, "order_t2", models.IntentStatusFailed, "pay_2")
	if !errors.Is(err, ErrAlreadySettled) {
		t.Fatalf("expected ErrAlreadySettled, got %v", err)
	}
	if p == nil || p.Status != models.IntentStatusCaptured {
		t.Errorf("terminal status must be returned unchanged, got %+v", p)
	}
}

func TestTransitionUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentIntentRepository(db)

	_, err := repo.Transition(db, "order_nope", models.IntentStatusCaptured, "pay_3")
	if !errors.Is(err, ErrIntentNotFound) {
		t.Fatalf("expected ErrIntentNotFound, got %v", err)
	}
}
