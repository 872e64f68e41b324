package dto

import (
	"time"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitReportRequest files an annual report for one fiscal year. A
// submission for a year that already has a record replaces it.
type SubmitReportRequest struct {
	Year              int             `json:"year" binding:"required,gte=1990,lte=2100"`
	Revenue           decimal.Decimal `json:"revenue" binding:"required"`
	TransactionVolume int64           `json:"transactionVolume" binding:"gte=0"`
	PublishWebsite    bool            `json:"publishWebsite"`
}

// ReviewReportRequest approves or rejects a submitted report.
type ReviewReportRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// ReportResponse mirrors domain.AnnualReport.
type ReportResponse struct {
	Year              int             `json:"year"`
	Status            string          `json:"status"`
	Revenue           decimal.Decimal `json:"revenue"`
	TransactionVolume int64           `json:"transactionVolume"`
	SubmissionDate    time.Time       `json:"submissionDate"`
	FiledBy           string          `json:"filedBy"`
}

// ToReportResponse converts a domain report.
func ToReportResponse(r *domain.AnnualReport) ReportResponse {
	return ReportResponse{
		Year:              r.Year,
		Status:            string(r.Status),
		Revenue:           r.Revenue,
		TransactionVolume: r.TransactionVolume,
		SubmissionDate:    r.SubmissionDate,
		FiledBy:           r.FiledBy,
	}
}

// ToListReportsResponse converts a slice of domain reports.
func ToListReportsResponse(reports []domain.AnnualReport) []ReportResponse {
	out := make([]ReportResponse, len(reports))
	for i := range reports {
		out[i] = ToReportResponse(&reports[i])
	}
	return out
}
