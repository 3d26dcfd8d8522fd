package client

// Package client is the HTTP transport shared by every resource client. It
// owns authentication headers, request ids, status-to-error mapping and the
// JSON codec. Resource paths live with their domain packages.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amparo-care/amparo/config"
	"github.com/amparo-care/amparo/errors"
)

const (
	requestIdHeader = "X-Request-Id"
	maxErrorBody    = 2048
)

// TokenSource supplies the bearer token attached to every request. An empty
// token means the request goes out unauthenticated (login, register).
type TokenSource interface {
	SessionToken() string
}

type Client struct {
	http    *http.Client
	baseUrl string
	tokens  TokenSource
	logger  *zap.SugaredLogger
}

func NewClient(cfg *config.Config, tokens TokenSource, logger *zap.SugaredLogger) *Client {
	timeout := cfg.ApiTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseUrl: strings.TrimRight(cfg.ApiUrl, "/"),
		tokens:  tokens,
		logger:  logger,
	}
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("unable to encode %s %s request: %w", method, path, err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIdHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.SessionToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Errorw("request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	c.logger.Debugw("request completed",
		"method", method,
		"path", path,
		"status", res.StatusCode,
		"duration", time.Since(start),
	)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return c.errorFromResponse(method, path, res)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("unable to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// errorFromResponse maps the status code to one of the errors package
// sentinels and carries the backend message when one is present.
func (c *Client) errorFromResponse(method, path string, res *http.Response) error {
	err := errors.FromStatusCode(res.StatusCode)

	var message struct {
		Message string `json:"message"`
	}
	raw, readErr := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if readErr == nil && json.Unmarshal(raw, &message) == nil && message.Message != "" {
		return fmt.Errorf("%s %s: %s: %w", method, path, message.Message, err)
	}
	return fmt.Errorf("%s %s: %w", method, path, err)
}
