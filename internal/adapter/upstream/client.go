// Package upstream talks to the ads platform REST API.
//
// Every response is wrapped in an envelope {"success", "message", "data"}.
// The envelope is inspected with gjson; "data" is decoded into transfer
// objects that are validated before they become domain values, so nothing
// untyped leaves this package.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"adsdesk/internal/config/configs"
)

const maxBodySize = 8 << 20

// Client implements port.AdsAPI over HTTP.
type Client struct {
	http     *retryablehttp.Client
	baseURL  url.URL
	token    string
	platform string
}

// New builds a client from configuration. Retry attempts are logged through
// logger.
func New(cfg configs.Upstream, logger *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = logger.With(slog.String("component", "upstream"))
	// hand back the last response instead of a generic "giving up" error so
	// the envelope message survives
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return &Client{
		http:     rc,
		baseURL:  cfg.BaseURL,
		token:    cfg.Token,
		platform: cfg.Platform,
	}
}

type envelope struct {
	message string
	data    gjson.Result
}

// do sends one request and unwraps the envelope. op names the operation in
// errors.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) (envelope, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return envelope{}, fmt.Errorf("upstream %s: encode request: %w", op, err)
		}
	}

	u := c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	if c.platform != "" {
		q.Set("platform", c.platform)
	}
	u.RawQuery = q.Encode()

	var rawBody interface{}
	if payload != nil {
		rawBody = bytes.NewReader(payload)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, u.String(), rawBody)
	if err != nil {
		return envelope{}, fmt.Errorf("upstream %s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return envelope{}, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return envelope{}, &TransportError{Op: op, Err: err}
	}
	return unwrap(op, resp.StatusCode, raw)
}

func unwrap(op string, status int, raw []byte) (envelope, error) {
	valid := gjson.ValidBytes(raw)
	var env envelope
	if valid {
		res := gjson.ParseBytes(raw)
		env.message = res.Get("message").String()
		env.data = res.Get("data")
		if status >= 200 && status < 300 {
			if s := res.Get("success"); s.Exists() && !s.Bool() {
				return env, &RejectedError{Op: op, StatusCode: status, Message: env.message}
			}
			return env, nil
		}
	}
	if status < 200 || status >= 300 {
		return env, &RejectedError{Op: op, StatusCode: status, Message: env.message}
	}
	return env, fmt.Errorf("upstream %s: %w: body is not JSON", op, ErrMalformedResponse)
}

// decode unmarshals the envelope data into v.
func decode(op string, data gjson.Result, v any) error {
	if !data.Exists() || data.Type == gjson.Null {
		return fmt.Errorf("upstream %s: %w: missing data", op, ErrMalformedResponse)
	}
	if err := json.Unmarshal([]byte(data.Raw), v); err != nil {
		return fmt.Errorf("upstream %s: %w: %v", op, ErrMalformedResponse, err)
	}
	return nil
}
