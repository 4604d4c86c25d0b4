package response

import "time"

type MaintenanceRequest struct {
	ID               int64     `json:"request_id"`
	CarID            int64     `json:"car_id"`
	ReportedBy       int64     `json:"reported_by"`
	IssueDescription string    `json:"issue_description"`
	ReportedAt       time.Time `json:"reported_date"`
	IsResolved       bool      `json:"is_resolved"`
}
