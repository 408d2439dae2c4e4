package constants

import (
	"fmt"
	"strings"
)

// ProcurementStatus is the lifecycle state of a procurement request.
type ProcurementStatus string

const (
	ProcurementDraft     ProcurementStatus = "DRAFT"
	ProcurementSubmitted ProcurementStatus = "SUBMITTED"
	ProcurementApproved  ProcurementStatus = "APPROVED"
	ProcurementRejected  ProcurementStatus = "REJECTED"
	ProcurementPurchased ProcurementStatus = "PURCHASED"
	ProcurementCompleted ProcurementStatus = "COMPLETED"
)

// procurementTransitions lists the states each state may move to.
// REJECTED and COMPLETED are terminal.
var procurementTransitions = map[ProcurementStatus][]ProcurementStatus{
	ProcurementDraft:     {ProcurementSubmitted},
	ProcurementSubmitted: {ProcurementApproved, ProcurementRejected},
	ProcurementApproved:  {ProcurementPurchased},
	ProcurementPurchased: {ProcurementCompleted},
}

func CanTransitionProcurement(from, to ProcurementStatus) bool {
	for _, next := range procurementTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ParseProcurementStatus(raw string) (ProcurementStatus, error) {
	s := ProcurementStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case ProcurementDraft, ProcurementSubmitted, ProcurementApproved,
		ProcurementRejected, ProcurementPurchased, ProcurementCompleted:
		return s, nil
	default:
		return "", fmt.Errorf("invalid procurement status: %q", raw)
	}
}

// ==========================
// Proof types
// ==========================
const (
	ProofTypeReceipt  = "RECEIPT"
	ProofTypeInvoice  = "INVOICE"
	ProofTypeDelivery = "DELIVERY"
	ProofTypeOther    = "OTHER"
)

var ProofTypes = []string{
	ProofTypeReceipt,
	ProofTypeInvoice,
	ProofTypeDelivery,
	ProofTypeOther,
}

func IsValidProofType(raw string) bool {
	up := strings.ToUpper(strings.TrimSpace(raw))
	for _, t := range ProofTypes {
		if t == up {
			return true
		}
	}
	return false
}
