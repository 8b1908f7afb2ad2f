package domain

import "time"

// ReportSummary aggregates platform activity over a date range. Read-only
// projection, never mutated.
type ReportSummary struct {
	TotalJobs         int64       `json:"total_jobs"`
	TotalApplications int64       `json:"total_applications"`
	Accepted          int64       `json:"accepted"`
	Rejected          int64       `json:"rejected"`
	Pending           int64       `json:"pending"`
	Details           []ReportRow `json:"details"`
}

type ReportRow struct {
	Company       string            `json:"company"`
	ApplicantName string            `json:"applicant_name"`
	JobTitle      string            `json:"job_title"`
	Status        ApplicationStatus `json:"status"`
	AppliedAt     time.Time         `json:"applied_at"`
}
