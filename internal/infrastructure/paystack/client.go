// Package paystack is a minimal client for the two Paystack transaction
// endpoints the unlock flow needs. Amounts cross this boundary in the
// provider's minor currency unit (kobo).
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production Paystack API origin
const DefaultBaseURL = "https://api.paystack.co"

// Client talks to the Paystack transaction API
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Paystack client. An empty baseURL selects production.
func NewClient(secretKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		secretKey:  secretKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Metadata is attached to a transaction at initialize time and echoed back
// verbatim by verify.
type Metadata struct {
	ListingID string `json:"listingId"`
	UserID    string `json:"userId"`
	Purpose   string `json:"purpose"`
}

// InitializeRequest is the body for POST /transaction/initialize
type InitializeRequest struct {
	Email    string   `json:"email"`
	Amount   int64    `json:"amount"`
	Metadata Metadata `json:"metadata"`
}

// VerifyResponse is the envelope for GET /transaction/verify/:reference.
// Status is the overall call outcome; Data.Status is the transaction state.
type VerifyResponse struct {
	Status  bool       `json:"status"`
	Message string     `json:"message"`
	Data    VerifyData `json:"data"`
}

// VerifyData carries the transaction details of a verify response
type VerifyData struct {
	Status    string   `json:"status"`
	Reference string   `json:"reference"`
	Amount    int64    `json:"amount"`
	Metadata  Metadata `json:"metadata"`
}

// Initialize starts a transaction and returns the provider's raw payload
// unchanged, so the checkout reference and URL reach the client exactly as
// Paystack sent them.
func (c *Client) Initialize(ctx context.Context, input *InitializeRequest) (json.RawMessage, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode initialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Verify fetches the state of a transaction by reference
func (c *Client) Verify(ctx context.Context, reference string) (*VerifyResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var resp VerifyResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode verify response: %w", err)
	}
	return &resp, nil
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read paystack response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("paystack returned %d: %s", resp.StatusCode, string(body))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("paystack returned malformed JSON")
	}
	return json.RawMessage(body), nil
}
