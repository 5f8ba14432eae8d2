package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/novamart-dev/storefront-session/pkg/config"
	pkgerrors "github.com/novamart-dev/storefront-session/pkg/errors"
	"github.com/novamart-dev/storefront-session/pkg/logger"
)

// ErrorBody is the structured error shape returned by the storefront
// backend; `detail` carries the human-readable message.
type ErrorBody struct {
	Detail string `json:"detail"`
	Status int    `json:"-"`
}

// Client is a thin JSON client for the storefront backend API. All failures
// normalize to coded network errors; the caller decides what reaches the
// user.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logg    *logger.Logger
}

// New builds a client from the API config.
func New(cfg config.APIConfig, logg *logger.Logger) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing api base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", cfg.BaseURL)
	}
	return &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		logg:    logg,
	}, nil
}

// Get issues a GET request and decodes the response into dest.
func (c *Client) Get(ctx context.Context, path string, query url.Values, dest any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, dest)
}

// Post issues a POST request with a JSON body and decodes the response into
// dest.
func (c *Client) Post(ctx context.Context, path string, body, dest any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, dest)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	target := *c.baseURL
	target.Path = strings.TrimSuffix(target.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if c.logg != nil {
			c.logg.Warn(ctx, fmt.Sprintf("%s %s failed: %v", method, path, err))
		}
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "request failed")
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(ctx, method, path, resp)
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "decode response")
	}
	return nil
}

func (c *Client) statusError(ctx context.Context, method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	body := ErrorBody{Status: resp.StatusCode}
	if len(raw) > 0 {
		var parsed ErrorBody
		if err := json.Unmarshal(raw, &parsed); err == nil {
			body.Detail = parsed.Detail
		}
	}

	if c.logg != nil {
		c.logg.Warn(ctx, fmt.Sprintf("%s %s returned %d", method, path, resp.StatusCode))
	}

	return pkgerrors.
		New(pkgerrors.CodeNetwork, fmt.Sprintf("unexpected status %d", resp.StatusCode)).
		WithDetails(body)
}

// Detail extracts the server-provided error message from err, if any.
func Detail(err error) (string, bool) {
	typed := pkgerrors.As(err)
	if typed == nil {
		return "", false
	}
	body, ok := typed.Details().(ErrorBody)
	if !ok || body.Detail == "" {
		return "", false
	}
	return body.Detail, true
}
