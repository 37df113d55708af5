package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentStatusChecker reports whether a brand has a payment method on
// file. The publishing gate fails closed when the check errors.
type PaymentStatusChecker interface {
	HasPaymentMethod(ctx context.Context, brandID uuid.UUID) (bool, error)
}

// BillingClient talks to the external billing service.
type BillingClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewBillingClient(baseURL string, httpClient *http.Client, log *zap.Logger) *BillingClient {
	return &BillingClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

func (c *BillingClient) HasPaymentMethod(ctx context.Context, brandID uuid.UUID) (bool, error) {
	endpoint := fmt.Sprintf("%s/brands/payment-status?brand_id=%s", c.baseURL, url.QueryEscape(brandID.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("billing service unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("billing service returned %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		HasPaymentMethod bool `json:"hasPaymentMethod"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, err
	}
	return result.HasPaymentMethod, nil
}
