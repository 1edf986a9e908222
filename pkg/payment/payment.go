package payment

import (
	"context"
)

// OrderRequest describes a remote order to create at the processor.
// Amount is in the smallest currency subunit (paise).
type OrderRequest struct {
	Amount      int64
	Currency    string
	Receipt     string
	Description string
	Notes       map[string]string
}

// OrderResponse is the processor's view of the created order. OrderID becomes
// the identity of the local payment intent.
type OrderResponse struct {
	OrderID  string
	Amount   int64
	Currency string
	Status   string
}

type Provider interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error)
}
