// Package client is a typed Go client for the intelligence API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	platformhttp "github.com/sameer-dev-stack/Royal-Class-Events/internal/platform/http"
	"github.com/sameer-dev-stack/Royal-Class-Events/models"
)

// Options configures a Client.
type Options struct {
	BaseURL        string
	Timeout        time.Duration
	RequestsPerSec float64
	MaxRetries     int
}

// Client calls the intelligence API.
type Client struct {
	baseURL string
	http    *platformhttp.Client
}

// New returns a client for the service at opts.BaseURL.
func New(opts Options) *Client {
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http: platformhttp.NewClient(platformhttp.ClientOptions{
			Timeout:        opts.Timeout,
			RequestsPerSec: opts.RequestsPerSec,
			MaxRetries:     opts.MaxRetries,
		}),
	}
}

// ForecastRequest is the body of a revenue forecast call.
type ForecastRequest struct {
	DemandScore float64           `json:"demand_score"`
	Capacity    int               `json:"capacity"`
	TicketPrice float64           `json:"ticket_price"`
	TicketType  models.TicketType `json:"ticket_type,omitempty"`
}

// SuggestRequest is the body of a price suggestion call.
type SuggestRequest struct {
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	DemandScore float64 `json:"demand_score"`
	Capacity    int     `json:"capacity"`
}

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int            `json:"-"`
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	RequestID  string         `json:"request_id"`
	Details    []FieldProblem `json:"details"`
}

// FieldProblem names one rejected request field.
type FieldProblem struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("intelligence api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("intelligence api: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// Info returns the service description served at the root path.
func (c *Client) Info(ctx context.Context) (models.ServiceInfo, error) {
	var out models.ServiceInfo
	err := c.call(ctx, http.MethodGet, "/", nil, &out)
	return out, err
}

// PredictDemand scores expected demand for an event. An empty ticket type is
// sent as free.
func (c *Client) PredictDemand(ctx context.Context, event models.EventAttributes) (models.DemandResult, error) {
	if event.TicketType == "" {
		event.TicketType = models.TicketFree
	}
	var out models.DemandResult
	err := c.call(ctx, http.MethodPost, "/predict-demand", event, envelope(&out))
	return out, err
}

// ForecastRevenue projects sales and revenue from a demand score.
func (c *Client) ForecastRevenue(ctx context.Context, req ForecastRequest) (models.RevenueForecast, error) {
	var out models.RevenueForecast
	err := c.call(ctx, http.MethodPost, "/forecast-revenue", req, envelope(&out))
	return out, err
}

// SuggestPrice recommends an initial ticket price band.
func (c *Client) SuggestPrice(ctx context.Context, req SuggestRequest) (models.PriceSuggestion, error) {
	var out models.PriceSuggestion
	err := c.call(ctx, http.MethodPost, "/suggest-price", req, envelope(&out))
	return out, err
}

// CalculateDynamicPrice reprices tickets from current sales.
func (c *Client) CalculateDynamicPrice(ctx context.Context, in models.DynamicPriceInput) (models.DynamicPriceResult, error) {
	var out models.DynamicPriceResult
	err := c.call(ctx, http.MethodPost, "/calculate-dynamic-price", in, envelope(&out))
	return out, err
}

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func envelope(data any) *successEnvelope {
	return &successEnvelope{Data: data}
}

func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
	}

	resp, err := c.http.DoRequest(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		return req, nil
	})
	if err != nil {
		var statusErr *platformhttp.HTTPStatusError
		if errors.As(err, &statusErr) {
			return decodeAPIError(statusErr)
		}
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	if env, ok := out.(*successEnvelope); ok && !env.Success {
		return fmt.Errorf("call %s: response not marked successful", path)
	}
	return nil
}

func decodeAPIError(statusErr *platformhttp.HTTPStatusError) error {
	apiErr := &APIError{StatusCode: statusErr.StatusCode}
	var body struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(statusErr.Body, &body); err == nil && body.Error != nil {
		body.Error.StatusCode = statusErr.StatusCode
		apiErr = body.Error
	}
	return apiErr
}
