package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/mgreer/arc-tracker/internal/config"
	"github.com/mgreer/arc-tracker/internal/logging"
)

// TransportError reports a failed request: either a non-success HTTP
// status (Status > 0, Body holds the raw response payload) or a network
// failure (Status == 0, Err holds the underlying error).
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("store returned HTTP %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client dispatches Request values against one resource collection.
// It performs network I/O only; it never holds application state.
type Client struct {
	baseURL string
	table   string
	apiKey  string
	http    *http.Client
	logger  logging.Logger
}

// NewClient creates a client for the configured collection. The
// credential is forwarded verbatim on every request; a misconfigured
// base URL is not an error here, it surfaces as a transport failure on
// first use (the store's degraded path handles that).
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		table:   cfg.Table,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		logger:  logging.Get().Named("rest_client"),
	}
}

var opMethods = map[Op]string{
	OpList:   http.MethodGet,
	OpInsert: http.MethodPost,
	OpUpdate: http.MethodPatch,
	OpDelete: http.MethodDelete,
}

// Do issues exactly one HTTP request for the described operation.
// Success is decided solely by the HTTP status class; response bodies
// are decoded but never validated. There are no retries and no partial
// results: on error the returned records are always nil.
func (c *Client) Do(ctx context.Context, req Request) ([]map[string]any, error) {
	method, ok := opMethods[req.Op]
	if !ok {
		return nil, &TransportError{Err: fmt.Errorf("unknown operation %v", req.Op)}
	}
	if (req.Op == OpUpdate || req.Op == OpDelete) && req.KeyColumn == "" {
		return nil, &TransportError{Err: fmt.Errorf("%v request is not scoped; call ForKey first", req.Op)}
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, c.table)
	query := url.Values{}
	if req.Op == OpList && len(req.Columns) > 0 {
		query.Set("select", strings.Join(req.Columns, ","))
	}
	if req.KeyColumn != "" {
		query.Set(req.KeyColumn, "eq."+req.KeyValue)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if req.Payload != nil {
		data, err := json.Marshal(req.Payload)
		if err != nil {
			return nil, &TransportError{Err: fmt.Errorf("encoding payload: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("building request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("apikey", c.apiKey)
	if req.Op == OpInsert {
		// Ask the store to echo created rows so callers see assigned ids.
		httpReq.Header.Set("Prefer", "return=representation")
	}

	reqID := uuid.New().String()[:8]
	c.logger.Debug("Dispatching request", "request_id", reqID, "op", req.Op.String(), "method", method, "url", endpoint)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Debug("Request failed", "request_id", reqID, "error", err)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	c.logger.Debug("Request completed", "request_id", reqID, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(respBody))
		if msg == "" {
			msg = fmt.Sprintf("%v failed with status %s", req.Op, resp.Status)
		}
		return nil, &TransportError{Status: resp.StatusCode, Body: msg}
	}

	if req.Op == OpDelete || len(respBody) == 0 {
		return nil, nil
	}

	records, err := decodeRecords(respBody)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decoding response: %w", err)}
	}
	return records, nil
}

// decodeRecords accepts either a JSON array of records or a single
// record object (some stores echo mutations as a bare object).
func decodeRecords(data []byte) ([]map[string]any, error) {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}
	var single map[string]any
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, errors.New("response is neither a record array nor a record object")
	}
	return []map[string]any{single}, nil
}
