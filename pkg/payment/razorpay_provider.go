package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RazorpayProvider creates orders via the Razorpay Orders API using basic auth.
type RazorpayProvider struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	client    *http.Client
}

func NewRazorpayProvider(baseURL, keyID, keySecret string) *RazorpayProvider {
	if baseURL == "" {
		baseURL = "https://api.razorpay.com"
	}
	return &RazorpayProvider{
		BaseURL:   baseURL,
		KeyID:     keyID,
		KeySecret: keySecret,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type razorpayOrderReq struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type razorpayOrderResp struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

func (p *RazorpayProvider) CreateOrder(ctx context.Context, orderReq OrderRequest) (*OrderResponse, error) {
	payload := razorpayOrderReq{
		Amount:   orderReq.Amount,
		Currency: orderReq.Currency,
		Receipt:  orderReq.Receipt,
		Notes:    orderReq.Notes,
	}
	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(p.KeyID, p.KeySecret)
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("razorpay order: %d %s", resp.StatusCode, string(respBody))
	}
	var out razorpayOrderResp
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, fmt.Errorf("razorpay: order response missing id")
	}
	return &OrderResponse{
		OrderID:  out.ID,
		Amount:   out.Amount,
		Currency: out.Currency,
		Status:   out.Status,
	}, nil
}
