package repository

import (
	"testing"
)

func TestCreditsAddAccumulates(t *testing.T) {
	db := newTestDB(t)
	repo := NewCreditsRepository(db)

	if err := repo.Add(db, "emp-1", 10); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := repo.Add(db, "emp-1", 5); err != nil {
		t.Fatalf("second add: %v", err)
	}

	b, err := repo.GetByEmployer("emp-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b.Balance != 15 {
		t.Errorf("expected balance 15, got %d", b.Balance)
	}
	if b.TotalPurchased != 15 {
		t.Errorf("expected total_purchased 15, got %d", b.TotalPurchased)
	}
}

func TestCreditsGetUnknownEmployerIsZero(t *testing.T) {
	db := newTestDB(t)
	repo := NewCreditsRepository(db)

	b, err := repo.GetByEmployer("emp-never")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b.Balance != 0 || b.TotalPurchased != 0 {
		t.Errorf("expected zero balance for unknown employer, got %+v", b)
	}
}
