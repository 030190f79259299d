package regclient

import (
	"context"
	"encoding/json"
	"strconv"
)

// TransferRequest carries the fields for an inbound transfer. Customer and
// Registrant are required; nil optional fields are omitted from the payload.
type TransferRequest struct {
	Customer   string
	Registrant string

	PrivacyProtect *bool
	Period         *int
	Authcode       *string
	AutoRenew      *bool
	NS             []string

	TransferContacts ContactCollection
	DesignatedAgent  *DesignatedAgent

	Zone      *Zone
	Contacts  ContactCollection
	KeyData   KeyDataCollection
	Billables BillableCollection
}

func (r *TransferRequest) payload() (map[string]any, error) {
	p := map[string]any{
		"customer":   r.Customer,
		"registrant": r.Registrant,
	}
	putOpt(p, "privacyProtect", r.PrivacyProtect)
	putOpt(p, "period", r.Period)
	putOpt(p, "authcode", r.Authcode)
	putOpt(p, "autoRenew", r.AutoRenew)
	if r.NS != nil {
		p["ns"] = r.NS
	}
	if r.TransferContacts != nil {
		p["transferContacts"] = r.TransferContacts
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

// Transfer requests an inbound transfer of a domain into the account. The
// designated agent value is validated before any request is issued.
func (c *Client) Transfer(ctx context.Context, name string, req TransferRequest) error {
	p, err := req.payload()
	if err != nil {
		return err
	}
	_, err = c.post(ctx, domainPath(name, "transfer"), p, nil)
	return err
}

// PushTransfer hands the domain over to the named receiving registrar.
func (c *Client) PushTransfer(ctx context.Context, name, recipient string) error {
	body := map[string]any{"recipient": recipient}
	_, err := c.post(ctx, domainPath(name, "transfer", "push"), body, nil)
	return err
}

// TransferInfo returns the state of a transfer process.
func (c *Client) TransferInfo(ctx context.Context, name string, processID int64) (*DomainTransferStatus, error) {
	b, err := c.get(ctx, domainPath(name, "transfer", strconv.FormatInt(processID, 10)), nil)
	if err != nil {
		return nil, err
	}
	var st DomainTransferStatus
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, err
	}
	return &st, nil
}
