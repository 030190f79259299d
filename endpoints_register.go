package regclient

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// RegisterRequest carries the fields for a domain registration. Customer and
// Registrant are required; nil optional fields are omitted from the payload
// so the registry applies its defaults.
type RegisterRequest struct {
	Customer   string
	Registrant string

	PrivacyProtect *bool // defaults to false
	Period         *int
	Authcode       *string
	LanguageCode   *string
	AutoRenew      *bool    // defaults to true
	NS             []string // defaults to the empty set
	SkipValidation *bool
	LaunchPhase    *string

	Zone      *Zone
	Contacts  ContactCollection
	KeyData   KeyDataCollection
	Billables BillableCollection

	// Quote asks the registry for pricing instead of performing the
	// registration. Sent as a request option, not a payload field.
	Quote *bool
}

func (r *RegisterRequest) payload() map[string]any {
	privacy := false
	if r.PrivacyProtect != nil {
		privacy = *r.PrivacyProtect
	}
	autoRenew := true
	if r.AutoRenew != nil {
		autoRenew = *r.AutoRenew
	}
	ns := r.NS
	if ns == nil {
		ns = []string{}
	}

	p := map[string]any{
		"customer":       r.Customer,
		"registrant":     r.Registrant,
		"privacyProtect": privacy,
		"autoRenew":      autoRenew,
		"ns":             ns,
	}
	putOpt(p, "period", r.Period)
	putOpt(p, "authcode", r.Authcode)
	putOpt(p, "languageCode", r.LanguageCode)
	putOpt(p, "skipValidation", r.SkipValidation)
	putOpt(p, "launchPhase", r.LaunchPhase)
	if r.Zone != nil {
		p["zone"] = r.Zone
	}
	if r.Contacts != nil {
		p["contacts"] = r.Contacts
	}
	if r.KeyData != nil {
		p["keyData"] = r.KeyData
	}
	if r.Billables != nil {
		p["billables"] = r.Billables
	}
	return p
}

// Register creates a new domain registration.
func (c *Client) Register(ctx context.Context, name string, req RegisterRequest) (*DomainRegistration, error) {
	b, err := c.post(ctx, domainPath(name), req.payload(), quoteQuery(req.Quote))
	if err != nil {
		return nil, err
	}
	var reg DomainRegistration
	if err := json.Unmarshal(b, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// UpdateRequest carries a partial domain update. Only provided fields reach
// the payload; the registry leaves everything else unchanged.
type UpdateRequest struct {
	Registrant      *string
	PrivacyProtect  *bool
	Period          *int
	Authcode        *string
	LanguageCode    *string
	AutoRenew       *bool
	NS              []string
	Statuses        []DomainStatus // serialized under key "status"
	DesignatedAgent *DesignatedAgent

	Zone      *Zone
	Contacts  ContactCollection
	KeyData   KeyDataCollection
	Billables BillableCollection
}

func (r *UpdateRequest) payload() (map[string]any, error) {
	p := map[string]any{}
	putOpt(p, "registrant", r.Registrant)
	putOpt(p, "privacyProtect", r.PrivacyProtect)
	putOpt(p, "period", r.Period)
	putOpt(p, "authcode", r.Authcode)
	putOpt(p, "languageCode", r.LanguageCode)
	putOpt(p, "autoRenew", r.AutoRenew)
	if r.NS != nil {
		p["ns"] = r.NS
	}
	if r.Statuses != nil {
		for _, s := range r.Statuses {
			if !s.Valid() {
				return nil, &InvalidEnumError{Field: "status", Value: string(s)}
			}
		}
		p["status"] = r.Statuses
	}
	if r.DesignatedAgent != nil {
		if !r.DesignatedAgent.Valid() {
			return nil, &InvalidEnumError{Field: "designatedAgent", Value: string(*r.DesignatedAgent)}
		}
		p["designatedAgent"] = *r.DesignatedAgent
	}
	if r.Zone != nil {
		p["zone"] = r.Zone
	}
	if r.Contacts != nil {
		p["contacts"] = r.Contacts
	}
	if r.KeyData != nil {
		p["keyData"] = r.KeyData
	}
	if r.Billables != nil {
		p["billables"] = r.Billables
	}
	return p, nil
}

// Update applies a partial update to an existing domain. Enum fields are
// validated before any request is issued.
func (c *Client) Update(ctx context.Context, name string, req UpdateRequest) error {
	p, err := req.payload()
	if err != nil {
		return err
	}
	_, err = c.post(ctx, domainPath(name, "update"), p, nil)
	return err
}

// quoteQuery renders the quote request option, present only when set.
func quoteQuery(quote *bool) url.Values {
	if quote == nil {
		return nil
	}
	return url.Values{"quote": []string{strconv.FormatBool(*quote)}}
}
