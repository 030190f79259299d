package regclient

// Typed registry objects. Response shapes decode with encoding/json; the
// composite sub-structures (Zone, contacts, key data, billables) also appear
// verbatim inside outgoing register/update/transfer payloads.

import "time"

// Contact attaches a contact handle to a domain under a registry role.
type Contact struct {
	Role   string `json:"role"`
	Handle string `json:"handle"`
}

// ContactCollection is the set of role contacts sent with a domain mutation.
type ContactCollection []Contact

// KeyData is a DNSSEC public key (DNSKEY) attached to a domain.
type KeyData struct {
	Protocol  int    `json:"protocol"`
	Flags     int    `json:"flags"`
	Algorithm int    `json:"algorithm"`
	PublicKey string `json:"publicKey"`
}

// KeyDataCollection is the DNSSEC key set sent with a domain mutation.
type KeyDataCollection []KeyData

// Billable is a line-item cost attached to operations that may incur a charge.
type Billable struct {
	Product  string `json:"product"`
	Action   string `json:"action"`
	Quantity int    `json:"quantity"`
	Amount   int    `json:"amount,omitempty"`
}

// BillableCollection is the expected charge list sent with a billable operation.
type BillableCollection []Billable

// Zone describes the DNS zone configuration applied on registration or update.
type Zone struct {
	Template string `json:"template,omitempty"`
	Link     *bool  `json:"link,omitempty"`
	DNSSEC   *bool  `json:"dnssec,omitempty"`
	Master   string `json:"master,omitempty"`
}

// DomainDetails is the registry's view of a single domain.
type DomainDetails struct {
	DomainName     string            `json:"domainName"`
	Registry       string            `json:"registry,omitempty"`
	Customer       string            `json:"customer,omitempty"`
	Registrant     string            `json:"registrant,omitempty"`
	PrivacyProtect bool              `json:"privacyProtect,omitempty"`
	Status         []DomainStatus    `json:"status,omitempty"`
	Authcode       string            `json:"authcode,omitempty"`
	LanguageCode   string            `json:"languageCode,omitempty"`
	AutoRenew      bool              `json:"autoRenew,omitempty"`
	NS             []string          `json:"ns,omitempty"`
	ChildHosts     []string          `json:"childHosts,omitempty"`
	Premium        bool              `json:"premium,omitempty"`
	CreatedDate    time.Time         `json:"createdDate,omitzero"`
	UpdatedDate    time.Time         `json:"updatedDate,omitzero"`
	ExpiryDate     time.Time         `json:"expiryDate,omitzero"`
	Zone           *Zone             `json:"zone,omitempty"`
	Contacts       ContactCollection `json:"contacts,omitempty"`
	KeyData        KeyDataCollection `json:"keyData,omitempty"`
}

// Pagination describes the window of a collection response.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// DomainDetailsCollection is a paginated domain listing.
type DomainDetailsCollection struct {
	Entities   []DomainDetails `json:"entities"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// DomainAvailability is the check result for a candidate domain name.
type DomainAvailability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
	Premium   bool   `json:"premium,omitempty"`
	Price     int    `json:"price,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

// DomainRegistration is the result of a successful registration.
type DomainRegistration struct {
	ExpiryDate time.Time `json:"expiryDate"`
}

// TransferLogEntry is one step in a transfer process log.
type TransferLogEntry struct {
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
	Message string    `json:"message,omitempty"`
}

// DomainTransferStatus describes an inbound transfer process.
type DomainTransferStatus struct {
	ProcessID     int64              `json:"processId"`
	Type          string             `json:"type,omitempty"`
	Status        string             `json:"status"`
	Registrar     string             `json:"registrar,omitempty"`
	RequestedDate time.Time          `json:"requestedDate,omitzero"`
	ActionDate    time.Time          `json:"actionDate,omitzero"`
	ExpiryDate    time.Time          `json:"expiryDate,omitzero"`
	Log           []TransferLogEntry `json:"log,omitempty"`
}

// expiryResult is the envelope returned by renew and restore.
type expiryResult struct {
	ExpiryDate time.Time `json:"expiryDate"`
}
