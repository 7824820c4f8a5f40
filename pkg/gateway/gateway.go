// Package gateway is the outbound client for the mobile-money gateway API.
//
// The gateway exposes two endpoints, both bearer-token authorized:
//
//	POST {base}/api/create-transaction   {number, amount, name}
//	GET  {base}/api/status-transaction?tranid=...
//
// Responses are loosely structured, so the raw decoded body travels with
// every result for the caller to persist.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"paylink/pkg/logger"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cast"
)

// Config carries the gateway connection settings.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	RetryCount int
}

// Client talks to the gateway over HTTP.
type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

// NewClient builds a gateway client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second)

	return &Client{
		client:  client,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// CreateTransactionRequest is the create-transaction payload. Amount is a
// whole unit, the gateway rejects fractions.
type CreateTransactionRequest struct {
	Number string `json:"number"`
	Amount int64  `json:"amount"`
	Name   string `json:"name"`
}

// TransactionResult is a decoded gateway response. TransactionID and Status
// are best-effort extractions; Raw always holds the full body.
type TransactionResult struct {
	TransactionID string
	Status        string
	Message       string
	Raw           map[string]interface{}
}

// CreateTransaction starts a mobile-money charge.
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*TransactionResult, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", c.apiKey)).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(fmt.Sprintf("%s/api/create-transaction", c.baseURL))

	if err != nil {
		logger.ErrorString("Gateway", "CreateTransaction", err.Error())
		return nil, fmt.Errorf("gateway create-transaction call failed: %w", err)
	}

	return c.decode(resp)
}

// StatusTransaction queries the gateway for a transaction's current state.
func (c *Client) StatusTransaction(ctx context.Context, tranID string) (*TransactionResult, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", c.apiKey)).
		SetQueryParam("tranid", tranID).
		Get(fmt.Sprintf("%s/api/status-transaction", c.baseURL))

	if err != nil {
		logger.ErrorString("Gateway", "StatusTransaction", err.Error())
		return nil, fmt.Errorf("gateway status-transaction call failed: %w", err)
	}

	return c.decode(resp)
}

func (c *Client) decode(resp *resty.Response) (*TransactionResult, error) {
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode(), resp.String())
	}

	raw := map[string]interface{}{}
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("gateway returned malformed response: %w", err)
	}

	result := &TransactionResult{Raw: raw}
	for _, key := range []string{"tranid", "transaction_id", "order_id", "id"} {
		if v, ok := raw[key]; ok {
			if s := cast.ToString(v); s != "" {
				result.TransactionID = s
				break
			}
		}
	}
	result.Status = cast.ToString(raw["status"])
	result.Message = cast.ToString(raw["message"])

	return result, nil
}
