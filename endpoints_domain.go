package regclient

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Details returns the registry's record for a single domain.
func (c *Client) Details(ctx context.Context, name string) (*DomainDetails, error) {
	b, err := c.get(ctx, domainPath(name), nil)
	if err != nil {
		return nil, err
	}
	var d DomainDetails
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListOptions filters a domain listing. Nil fields are left out of the query
// entirely; a pointer to a zero value is sent as that value.
type ListOptions struct {
	Limit  *int
	Offset *int
	Search *string
}

// List returns a paginated domain listing.
func (c *Client) List(ctx context.Context, opts ListOptions) (*DomainDetailsCollection, error) {
	q := url.Values{}
	if opts.Limit != nil {
		q.Set("limit", strconv.Itoa(*opts.Limit))
	}
	if opts.Offset != nil {
		q.Set("offset", strconv.Itoa(*opts.Offset))
	}
	if opts.Search != nil {
		q.Set("search", *opts.Search)
	}
	b, err := c.get(ctx, "/domains", q)
	if err != nil {
		return nil, err
	}
	var col DomainDetailsCollection
	if err := json.Unmarshal(b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// Check reports availability of a candidate domain name. languageCode may be
// empty for non-IDN names.
func (c *Client) Check(ctx context.Context, name, languageCode string) (*DomainAvailability, error) {
	var q url.Values
	if languageCode != "" {
		q = url.Values{"languageCode": []string{languageCode}}
	}
	b, err := c.get(ctx, domainPath(name, "check"), q)
	if err != nil {
		return nil, err
	}
	var a DomainAvailability
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes a domain from the account.
func (c *Client) Delete(ctx context.Context, name string) error {
	return c.del(ctx, domainPath(name))
}
