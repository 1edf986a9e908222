package payment

import (
	"context"
	"fmt"
	"time"
)

// StubProvider is a no-op provider for development and tests.
type StubProvider struct{}

func (s *StubProvider) CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	return &OrderResponse{
		OrderID:  fmt.Sprintf("order_stub_%d", time.Now().UnixNano()),
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   "created",
	}, nil
}
