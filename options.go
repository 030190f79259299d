package regclient

import (
	"strings"
	"time"
)

type Option func(*Client)

func WithHTTPDoer(d Doer) Option         { return func(c *Client) { c.hc = d } }
func WithAPIKey(key string) Option       { return func(c *Client) { c.apiKey = key } }
func WithUserAgent(ua string) Option     { return func(c *Client) { c.ua = ua } }
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.baseTimeout = d } }
func WithHeader(k, v string) Option      { return func(c *Client) { c.headerExtra.Add(k, v) } }
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}
