package api

import "time"

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,max=50"`
	Surname         string `json:"surname" validate:"required,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type UserResponse struct {
	Id              int       `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	ProfileImageUrl string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	Version         int       `json:"version"`
}

type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type OtpRequest struct {
	Phone string `json:"phone" validate:"required,phone_e164"`
}

type OtpRequestResponse struct {
	ExpiresAt   time.Time `json:"expiresAt"`
	ResendAfter int       `json:"resendAfter"`
}

type OtpConfirmRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetCompleteRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
