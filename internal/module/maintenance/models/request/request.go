package request

type CreateMaintenanceRequest struct {
	CarID            int64  `json:"car_id" validate:"required,gt=0"`
	IssueDescription string `json:"issue_description" validate:"max=2000"`
}
