package domain

import "time"

// AuditAction identifies the kind of state change an audit entry records.
type AuditAction string

const (
	ActionRegistration     AuditAction = "REGISTRATION"
	ActionReportSubmitted  AuditAction = "REPORT_SUBMITTED"
	ActionReportApproved   AuditAction = "REPORT_APPROVED"
	ActionReportRejected   AuditAction = "REPORT_REJECTED"
	ActionStatusChange     AuditAction = "STATUS_CHANGE"
	ActionUpdateDetails    AuditAction = "UPDATE_DETAILS"
	ActionTransactionAdded AuditAction = "TRANSACTION_ADDED"
)

// GenesisHash is the previousHash sentinel for the first entry of an
// entity's audit chain.
const GenesisHash = "0x00000000"

// AuditLogEntry is one immutable link of an entity's audit chain.
//
// Entries are prepended, so History[0] is always the newest entry and
// its PreviousHash equals History[1].Hash (or GenesisHash when the
// chain was empty). The chain is a display/audit trail only: the hash
// links make tampering visible on recomputation but carry no
// cryptographic anchoring.
type AuditLogEntry struct {
	EntryID      string      `json:"entryID"`
	Timestamp    time.Time   `json:"timestamp"`
	Action       AuditAction `json:"action"`
	Details      string      `json:"details"`
	Actor        string      `json:"actor"`
	PreviousHash string      `json:"previousHash"`
	Hash         string      `json:"hash"`
}
