package regclient

import (
	"context"
	"encoding/json"
	"time"
)

// RenewOptions holds the optional parts of a renewal. Quote asks for pricing
// instead of performing the renewal and is only sent when explicitly set.
type RenewOptions struct {
	Billables BillableCollection
	Quote     *bool
}

// Renew extends the registration by period years and returns the new expiry.
func (c *Client) Renew(ctx context.Context, name string, period int, opts RenewOptions) (time.Time, error) {
	p := map[string]any{"period": period}
	if opts.Billables != nil {
		p["billables"] = opts.Billables
	}
	b, err := c.post(ctx, domainPath(name, "renew"), p, quoteQuery(opts.Quote))
	if err != nil {
		return time.Time{}, err
	}
	var res expiryResult
	if err := json.Unmarshal(b, &res); err != nil {
		return time.Time{}, err
	}
	return res.ExpiryDate, nil
}

// RestoreOptions holds the optional parts of a restore.
type RestoreOptions struct {
	Billables BillableCollection
	Quote     *bool
}

// Restore recovers a deleted domain from redemption and returns the new
// expiry. A reason is required by the registry.
func (c *Client) Restore(ctx context.Context, name, reason string, opts RestoreOptions) (time.Time, error) {
	p := map[string]any{"reason": reason}
	if opts.Billables != nil {
		p["billables"] = opts.Billables
	}
	b, err := c.post(ctx, domainPath(name, "restore"), p, quoteQuery(opts.Quote))
	if err != nil {
		return time.Time{}, err
	}
	var res expiryResult
	if err := json.Unmarshal(b, &res); err != nil {
		return time.Time{}, err
	}
	return res.ExpiryDate, nil
}
