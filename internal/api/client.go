package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL is the backend origin used when none is configured.
const DefaultBaseURL = "http://127.0.0.1:5000"

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 8 << 20

// Client talks to the SQL Trail validation backend.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	logger  *zap.Logger
	newID   func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithTimeout sets the per-request timeout of the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("backend URL %q: missing host", baseURL)
	}

	c := &Client{
		baseURL: u,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  zap.NewNop(),
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchQuestion returns one question chosen by the backend (GET /question).
func (c *Client) FetchQuestion(ctx context.Context) (*Question, error) {
	body, err := c.do(ctx, http.MethodGet, "/question", nil, nil)
	if err != nil {
		return nil, err
	}
	return DecodeQuestion(body)
}

// FetchQuestions returns every question of a track (GET /questions?slug=).
func (c *Client) FetchQuestions(ctx context.Context, slug string) ([]Question, error) {
	if slug == "" {
		return nil, ErrEmptySlug
	}
	body, err := c.do(ctx, http.MethodGet, "/questions", url.Values{"slug": {slug}}, nil)
	if err != nil {
		return nil, err
	}
	return DecodeQuestions(body)
}

// Validate submits a learner query (POST /validate). The response shape is
// chosen by the request: track requests get nested results.
func (c *Client) Validate(ctx context.Context, req ValidateRequest) (*Outcome, error) {
	body, err := c.do(ctx, http.MethodPost, "/validate", nil, req)
	if err != nil {
		return nil, err
	}
	return DecodeOutcome(req.Shape(), body)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	op := method + " " + path

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", op, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	reqID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	log := c.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", reqID),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("backend request failed", zap.Duration("latency", time.Since(start)), zap.Error(err))
		return nil, &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Warn("reading backend response failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, &TransportError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	log.Info("backend request",
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
		zap.Int("bytes", len(body)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Status:    resp.StatusCode,
			Message:   errorMessage(body),
			RequestID: reqID,
		}
	}
	return body, nil
}

// errorMessage extracts the backend's {"error": "..."} text, if any.
func errorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Error
}
