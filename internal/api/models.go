package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// SignUpRequest defines the payload for the user registration endpoint.
type SignUpRequest struct {
	Email                string `json:"email"                validate:"required,email,max=100"`
	Password             string `json:"password"             validate:"required,min=8,strongpassword"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required,eqfield=Password"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RefreshRequest defines the payload for the token refresh endpoint. The
// refresh token is always 44 characters of base64.
type RefreshRequest struct {
	UserID       uuid.UUID `json:"userId"       validate:"required"`
	RefreshToken string    `json:"refreshToken" validate:"required,len=44"`
}

// SignUpResponse defines the successful response for the registration
// endpoint.
type SignUpResponse struct {
	UserID uuid.UUID `json:"userId"`
}

// IDResponse carries the id of a newly created resource.
type IDResponse struct {
	ID uuid.UUID `json:"id"`
}
