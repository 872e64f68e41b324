package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportStatus is the state of an annual report for one fiscal year.
//
// Missing is implicit (no record exists). A business actor files a
// report into Submitted; only an admin actor moves it to Approved or
// Rejected. Re-filing is always permitted and resets the record to
// Submitted, replacing the previous one.
type ReportStatus string

const (
	ReportMissing   ReportStatus = "MISSING"
	ReportSubmitted ReportStatus = "SUBMITTED"
	ReportApproved  ReportStatus = "APPROVED"
	ReportRejected  ReportStatus = "REJECTED"
)

// AnnualReport is a yearly filing owned by exactly one entity.
type AnnualReport struct {
	Year              int             `json:"year"`
	Status            ReportStatus    `json:"status"`
	Revenue           decimal.Decimal `json:"revenue"`
	TransactionVolume int64           `json:"transactionVolume"`
	SubmissionDate    time.Time       `json:"submissionDate"`
	FiledBy           string          `json:"filedBy"`
}
