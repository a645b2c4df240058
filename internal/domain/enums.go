package domain

// OperationMode is the commercial arrangement governing how a proposal
// line item's subtotal is computed.
type OperationMode string

const (
	ModeDirectSale   OperationMode = "DIRECT_SALE"
	ModeAgencySale   OperationMode = "AGENCY_SALE"
	ModeDirectRental OperationMode = "DIRECT_RENTAL"
	ModeAgencyRental OperationMode = "AGENCY_RENTAL"
)

// IsValid checks if the operation mode is valid
func (m OperationMode) IsValid() bool {
	switch m {
	case ModeDirectSale, ModeAgencySale, ModeDirectRental, ModeAgencyRental:
		return true
	default:
		return false
	}
}

// IsRental reports whether subtotals multiply by the rental period.
func (m OperationMode) IsRental() bool {
	return m == ModeDirectRental || m == ModeAgencyRental
}

// ProposalStatus represents the lifecycle state of a commercial proposal
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "DRAFT"
	ProposalStatusSent     ProposalStatus = "SENT"
	ProposalStatusAccepted ProposalStatus = "ACCEPTED"
	ProposalStatusRejected ProposalStatus = "REJECTED"
	ProposalStatusExpired  ProposalStatus = "EXPIRED"
)

// IsValid checks if the proposal status is valid
func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusDraft,
		ProposalStatusSent,
		ProposalStatusAccepted,
		ProposalStatusRejected,
		ProposalStatusExpired:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid
func (s ProposalStatus) CanTransitionTo(newStatus ProposalStatus) bool {
	switch s {
	case ProposalStatusDraft:
		return newStatus == ProposalStatusSent ||
			newStatus == ProposalStatusExpired
	case ProposalStatusSent:
		return newStatus == ProposalStatusAccepted ||
			newStatus == ProposalStatusRejected ||
			newStatus == ProposalStatusExpired
	case ProposalStatusAccepted, ProposalStatusRejected, ProposalStatusExpired:
		return false // Terminal states
	default:
		return false
	}
}
