package request

type Register struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	Email       string `json:"email" validate:"required,email,max=150"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	// RoleID and RoleName are honoured only when an admin registers the user.
	RoleID   int64  `json:"role_id" validate:"gte=0"`
	RoleName string `json:"role_name"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUser struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
	RoleID      *int64 `json:"role_id" validate:"omitempty,gt=0"`
	IsActive    bool   `json:"is_active"`
}

type ChangeRole struct {
	RoleID   *int64 `json:"role_id" validate:"omitempty,gt=0"`
	RoleName string `json:"role_name"`
}

type SetActive struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
