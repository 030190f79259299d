package regclient

// Closed value sets used by update and transfer requests. Values are passed
// through to the registry verbatim; only membership is checked.

func makeSet[T comparable](vs ...T) map[T]struct{} {
	m := make(map[T]struct{}, len(vs))
	for _, v := range vs {
		m[v] = struct{}{}
	}
	return m
}

// DomainStatus is an EPP-style domain status code.
type DomainStatus string

const (
	StatusOK                       DomainStatus = "OK"
	StatusInactive                 DomainStatus = "INACTIVE"
	StatusPendingCreate            DomainStatus = "PENDING_CREATE"
	StatusPendingTransfer          DomainStatus = "PENDING_TRANSFER"
	StatusPendingUpdate            DomainStatus = "PENDING_UPDATE"
	StatusPendingRenew             DomainStatus = "PENDING_RENEW"
	StatusPendingDelete            DomainStatus = "PENDING_DELETE"
	StatusPendingRestore           DomainStatus = "PENDING_RESTORE"
	StatusPendingValidation        DomainStatus = "PENDING_VALIDATION"
	StatusAddPeriod                DomainStatus = "ADD_PERIOD"
	StatusAutoRenewPeriod          DomainStatus = "AUTO_RENEW_PERIOD"
	StatusRenewPeriod              DomainStatus = "RENEW_PERIOD"
	StatusTransferPeriod           DomainStatus = "TRANSFER_PERIOD"
	StatusRedemptionPeriod         DomainStatus = "REDEMPTION_PERIOD"
	StatusClientHold               DomainStatus = "CLIENT_HOLD"
	StatusClientDeleteProhibited   DomainStatus = "CLIENT_DELETE_PROHIBITED"
	StatusClientRenewProhibited    DomainStatus = "CLIENT_RENEW_PROHIBITED"
	StatusClientTransferProhibited DomainStatus = "CLIENT_TRANSFER_PROHIBITED"
	StatusClientUpdateProhibited   DomainStatus = "CLIENT_UPDATE_PROHIBITED"
	StatusServerHold               DomainStatus = "SERVER_HOLD"
	StatusServerDeleteProhibited   DomainStatus = "SERVER_DELETE_PROHIBITED"
	StatusServerRenewProhibited    DomainStatus = "SERVER_RENEW_PROHIBITED"
	StatusServerTransferProhibited DomainStatus = "SERVER_TRANSFER_PROHIBITED"
	StatusServerUpdateProhibited   DomainStatus = "SERVER_UPDATE_PROHIBITED"
	StatusDeleteRequested          DomainStatus = "DELETE_REQUESTED"
	StatusExpired                  DomainStatus = "EXPIRED"
)

var domainStatuses = makeSet(
	StatusOK, StatusInactive,
	StatusPendingCreate, StatusPendingTransfer, StatusPendingUpdate,
	StatusPendingRenew, StatusPendingDelete, StatusPendingRestore,
	StatusPendingValidation,
	StatusAddPeriod, StatusAutoRenewPeriod, StatusRenewPeriod,
	StatusTransferPeriod, StatusRedemptionPeriod,
	StatusClientHold, StatusClientDeleteProhibited, StatusClientRenewProhibited,
	StatusClientTransferProhibited, StatusClientUpdateProhibited,
	StatusServerHold, StatusServerDeleteProhibited, StatusServerRenewProhibited,
	StatusServerTransferProhibited, StatusServerUpdateProhibited,
	StatusDeleteRequested, StatusExpired,
)

// Valid reports whether s is a member of the closed status set.
func (s DomainStatus) Valid() bool { _, ok := domainStatuses[s]; return ok }

// DesignatedAgent names which party consents to a registrant change.
type DesignatedAgent string

const (
	DesignatedAgentNone DesignatedAgent = "NONE"
	DesignatedAgentOld  DesignatedAgent = "OLD"
	DesignatedAgentNew  DesignatedAgent = "NEW"
	DesignatedAgentBoth DesignatedAgent = "BOTH"
)

var designatedAgents = makeSet(
	DesignatedAgentNone, DesignatedAgentOld, DesignatedAgentNew, DesignatedAgentBoth,
)

// Valid reports whether a is a member of the closed agent set.
func (a DesignatedAgent) Valid() bool { _, ok := designatedAgents[a]; return ok }
