package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stealthcompany.com/medrec-client/internal/metrics"
	"stealthcompany.com/medrec-client/internal/session"
)

// ErrRequestInFlight is returned when a dispatch is attempted while another
// request from this client is still pending. One user action maps to exactly
// one request attempt; the guard keeps repeated clicks from producing
// duplicate writes.
var ErrRequestInFlight = errors.New("request already in flight")

// Client dispatches authenticated requests against the record backend.
// It performs no retries and no response interpretation beyond reading the
// body; classification into UI outcomes is Classify's job.
type Client struct {
	httpClient *http.Client
	baseURL    string
	store      *session.Store
	inFlight   atomic.Bool
}

// Response is the raw result of one dispatched request.
type Response struct {
	Status int
	Body   []byte
}

// NewClient creates a client for the backend at baseURL. The timeout bounds
// every request; there is no unbounded hang path.
func NewClient(baseURL string, timeout time.Duration, store *session.Store) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		store:   store,
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues one HTTP request with the stored bearer credential attached.
// body, when non-nil, is JSON-encoded and sent with Content-Type
// application/json. The caller owns interpretation of the status code.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrRequestInFlight
	}
	defer c.inFlight.Store(false)

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// The credential is re-read from the store on every request so a logout
	// from a parallel invocation takes effect immediately.
	sess, err := c.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Warn().
			Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Msg("Request failed")
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("Failed to close response body")
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("duration", duration).
		Msg("Request completed")

	return &Response{Status: resp.StatusCode, Body: respBody}, nil
}

// dispatch issues one request and classifies the result. Every typed
// operation funnels through here so the outcome policy is applied uniformly.
func (c *Client) dispatch(ctx context.Context, method, path string, query url.Values, body any) Outcome {
	start := time.Now()
	resp, err := c.do(ctx, method, path, query, body)
	if err != nil && errors.Is(err, ErrRequestInFlight) {
		// Not a transport failure: the first request is still the one
		// attempt for this action.
		return Outcome{Kind: Rejected, Reason: "Request already in progress."}
	}

	outcome := Classify(resp, err)
	metrics.RecordRequest(path, outcome.Kind.String(), time.Since(start))
	return outcome
}
