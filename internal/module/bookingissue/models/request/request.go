package request

type CreateIssue struct {
	BookingID   int64  `json:"booking_id" validate:"required,gt=0"`
	IssueType   string `json:"issue_type" validate:"max=50"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateStatus struct {
	Status string `json:"status" validate:"required"`
}
