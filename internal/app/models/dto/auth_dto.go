package dto

import "github.com/selimk/teamhub/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a user registration request. It arrives as a
// multipart form so a profile image can be attached alongside.
type RegisterRequest struct {
	Username    string             `form:"username" binding:"required,min=3"`
	Email       string             `form:"email" binding:"required,email"`
	Password    string             `form:"password" binding:"required,min=6"`
	Contact     string             `form:"contact" binding:"required,max=15"`
	Designation models.Designation `form:"designation" binding:"required"`
	// Profile image is handled separately in the multipart form
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}
