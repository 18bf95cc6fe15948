// Package catalog implements the reference-fetcher port against the remote
// catalog service: batch lookups of product, promotion and department records
// by code. Retry and backoff belong to the operator of the catalog service,
// not to this client.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/marketledger/backend/internal/domain/enrichment"
)

// maxResponseSize limits the response body size to prevent memory exhaustion
const maxResponseSize = 10 * 1024 * 1024 // 10MB max response

var (
	// ErrMissingBaseURL indicates the catalog base URL is not configured
	ErrMissingBaseURL = errors.New("catalog: base URL is required")
	// ErrUnavailable indicates the catalog service could not be reached
	ErrUnavailable = errors.New("catalog: service unavailable")
	// ErrRequestFailed indicates the catalog rejected the request
	ErrRequestFailed = errors.New("catalog: request failed")
	// ErrInvalidResponse indicates an unparseable catalog response
	ErrInvalidResponse = errors.New("catalog: invalid response")
)

// Config holds the catalog client settings.
type Config struct {
	// BaseURL is the catalog service root, e.g. https://catalog.internal
	BaseURL string
	// APIKey authenticates batch lookups; optional for internal deployments
	APIKey string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
	// BatchSize caps how many codes go into one lookup request
	BatchSize int
}

// Validate validates the catalog configuration.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	return nil
}

// Client is the HTTP catalog client. It implements the enrichment service's
// ReferenceFetcher port.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a catalog client with the given configuration.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	timeout := config.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	batch := config.BatchSize
	if batch <= 0 {
		batch = 200
	}
	cfg := *config
	cfg.TimeoutSeconds = timeout
	cfg.BatchSize = batch

	return &Client{
		config: &cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}, nil
}

// batchResponse is the catalog's envelope for batch lookups. Records come
// back as raw objects; product payloads keep their schema-variant keys and
// are normalized here, at the boundary.
type batchResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    []map[string]any `json:"data"`
}

// FetchProducts resolves item codes to canonical product records. Codes the
// catalog does not know are simply absent from the result.
func (c *Client) FetchProducts(ctx context.Context, codes []string) (map[string]*enrichment.OrderProduct, error) {
	records := make(map[string]*enrichment.OrderProduct, len(codes))
	err := c.fetchBatches(ctx, "/api/v1/products/batch", codes, func(payload map[string]any) {
		product := enrichment.NormalizeProduct(payload)
		if product == nil || product.MaterialCode == nil {
			return
		}
		records[*product.MaterialCode] = product
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FetchPromotions resolves normalized promotion codes to promotion records.
func (c *Client) FetchPromotions(ctx context.Context, codes []string) (map[string]*enrichment.OrderPromotion, error) {
	records := make(map[string]*enrichment.OrderPromotion, len(codes))
	err := c.fetchBatches(ctx, "/api/v1/promotions/batch", codes, func(payload map[string]any) {
		code, _ := payload["code"].(string)
		if code == "" {
			return
		}
		promotion := &enrichment.OrderPromotion{Code: code}
		if name, ok := payload["name"].(string); ok {
			promotion.Name = name
		}
		if flag, ok := payload["muaHangGiamGia"].(bool); ok {
			promotion.MuaHangGiamGia = &flag
		}
		records[code] = promotion
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FetchDepartments resolves branch codes to department records.
func (c *Client) FetchDepartments(ctx context.Context, codes []string) (map[string]*enrichment.OrderDepartment, error) {
	records := make(map[string]*enrichment.OrderDepartment, len(codes))
	err := c.fetchBatches(ctx, "/api/v1/departments/batch", codes, func(payload map[string]any) {
		code, _ := payload["code"].(string)
		if code == "" {
			return
		}
		department := &enrichment.OrderDepartment{Code: code}
		if name, ok := payload["name"].(string); ok {
			department.Name = name
		}
		if region, ok := payload["region"].(string); ok {
			department.Region = region
		}
		records[code] = department
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// fetchBatches splits the codes into batch-sized lookup requests and feeds
// every returned record to collect.
func (c *Client) fetchBatches(ctx context.Context, path string, codes []string, collect func(map[string]any)) error {
	for start := 0; start < len(codes); start += c.config.BatchSize {
		end := start + c.config.BatchSize
		if end > len(codes) {
			end = len(codes)
		}
		resp, err := c.doRequest(ctx, path, codes[start:end])
		if err != nil {
			return err
		}
		for _, payload := range resp.Data {
			collect(payload)
		}
	}
	return nil
}

// doRequest performs one batch lookup against the catalog service.
func (c *Client) doRequest(ctx context.Context, path string, codes []string) (*batchResponse, error) {
	body, err := json.Marshal(map[string]any{"codes": codes})
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrRequestFailed, resp.StatusCode)
	}

	var parsed batchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if !parsed.Success {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, parsed.Message)
	}

	return &parsed, nil
}
