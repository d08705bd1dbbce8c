package domain

import (
	"errors"
)

var (
	MessageSuccessLogin  = "login successful"
	MessageSuccessLogout = "logout successful"
	MessageSuccessMe     = "user retrieved successfully"

	MessageFailedLogin  = "failed to login"
	MessageFailedLogout = "failed to logout"
	MessageFailedMe     = "failed to retrieve user"

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRoleMismatch       = errors.New("account does not have the selected role")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found or expired")
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"omitempty,oneof=farmer distributor consumer retailer regulator"`
	}

	UserResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	LoginResponse struct {
		Token     string       `json:"token"`
		ExpiresAt int64        `json:"expires_at"`
		User      UserResponse `json:"user"`
	}
)
