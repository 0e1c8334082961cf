package dto

import (
	"time"

	"github.com/selimk/teamhub/internal/app/models"
)

// UserResponse represents basic user information
type UserResponse struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Contact     string  `json:"contact,omitempty"`
	Designation string  `json:"designation"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserListResponse represents a list of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// FromUser converts a models.User to a UserResponse
func FromUser(user *models.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Contact:     user.Contact,
		Designation: string(user.Designation),
		ImageURL:    user.ImageURL,
		CreatedAt:   user.CreatedAt,
	}
}

// FromUsers converts a slice of models.User to UserResponses
func FromUsers(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, FromUser(&users[i]))
	}
	return responses
}
