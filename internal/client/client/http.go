package client

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
	"time"

	"github.com/dmitrijs2005/bankclient/internal/client/models"
	"github.com/dmitrijs2005/bankclient/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeader carries a per-call UUID so client and server logs can be joined.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody caps how much of a failed response is kept as the reason.
const maxErrorBody = 4 << 10

type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     logging.Logger
}

// NewHTTPClient returns a client for the API rooted at baseURL. A zero timeout
// leaves deadlines to the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse server url: unsupported scheme %q", u.Scheme)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
		log:     log,
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, identity, password string) error {
	return c.do(ctx, http.MethodPost, "/api/user/login", models.Credentials{ID: identity, Password: password}, nil)
}

func (c *HTTPClient) Register(ctx context.Context, r models.Registration) error {
	return c.do(ctx, http.MethodPost, "/api/user/register", r, nil)
}

func (c *HTTPClient) GetUser(ctx context.Context, identity string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/user/"+url.PathEscape(identity), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListAccounts(ctx context.Context, uid models.UID) ([]models.Account, error) {
	var accounts []models.Account
	if err := c.do(ctx, http.MethodGet, "/api/account/my/"+url.PathEscape(uid.String()), nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// do sends one request. in, when non-nil, is sent as a JSON body; out, when
// non-nil, receives the decoded 2xx body.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err)
		// A caller that gave up is not an unreachable server.
		if errors.Is(ctx.Err(), context.Canceled) {
			return fmt.Errorf("%s %s: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "response", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &RemoteError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
