package api

type PasswordChange struct {
	Current string `json:"current" validate:"required"`
	New     string `json:"new" validate:"required,password"`
	Confirm string `json:"confirm" validate:"required,eqfield=New"`
}

type UpdateUserRequest struct {
	Username *string         `json:"username" validate:"omitempty,min=2,max=100"`
	Email    *string         `json:"email" validate:"omitempty,email"`
	Password *PasswordChange `json:"password"`
}

type FieldOutcome struct {
	Field   string `json:"field"`
	Updated bool   `json:"updated"`
	Error   string `json:"error,omitempty"`
}

type UpdateUserResponse struct {
	Outcomes []FieldOutcome `json:"outcomes"`
	Message  string         `json:"message,omitempty"`
}

type UploadPhotoResponse struct {
	ProfileImageUrl string `json:"profileImageUrl"`
}

type SupportResponse struct {
	Email  string `json:"email"`
	Mailto string `json:"mailto"`
}

type HealthcheckResponse struct {
	Status  string `json:"status"`
	Env     string `json:"env"`
	Version string `json:"version"`
}
