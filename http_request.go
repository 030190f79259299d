package regclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// doJSON performs one request/response round trip against the versioned API.
// No retries and no caching happen at this layer; transport failures and
// non-2xx statuses surface to the caller unchanged.
func (c *Client) doJSON(ctx context.Context, method, p string, query url.Values, body any) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.baseTimeout)
	defer cancel()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, p, err)
		}
		rd = bytes.NewReader(b)
	}

	u := c.baseURL + apiPrefix + p
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(reqCtx, method, u, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.ua)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "ApiKey "+c.apiKey)
	}
	copyHeaders(req.Header, c.headerExtra)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Best effort: the envelope may be absent on proxy-level failures.
		_ = json.Unmarshal(b, apiErr)
		return nil, apiErr
	}
	return b, nil
}

// get / post / del are the outbound contract the operation methods use.

func (c *Client) get(ctx context.Context, p string, query url.Values) ([]byte, error) {
	return c.doJSON(ctx, http.MethodGet, p, query, nil)
}

func (c *Client) post(ctx context.Context, p string, body any, query url.Values) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPost, p, query, body)
}

func (c *Client) del(ctx context.Context, p string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, p, nil, nil)
	return err
}
