package entity

import "time"

type MaintenanceRequest struct {
	ID               int64     `db:"id"`
	CarID            int64     `db:"car_id"`
	ReportedByID     int64     `db:"reported_by_id"`
	IssueDescription string    `db:"issue_description"`
	ReportedAt       time.Time `db:"reported_at"`
	IsResolved       bool      `db:"is_resolved"`
}
