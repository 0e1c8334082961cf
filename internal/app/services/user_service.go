package services

import (
	"context"
	"fmt"

	"github.com/selimk/teamhub/internal/app/models"
	"github.com/selimk/teamhub/internal/app/models/dto"
	"github.com/selimk/teamhub/internal/pkg/apperrors"
)

// UserService defines the interface for user operations
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, designation *models.Designation) (*dto.UserListResponse, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userStore UserStore
}

// NewUserService creates a new UserService
func NewUserService(userStore UserStore) UserService {
	return &userServiceImpl{userStore: userStore}
}

// GetProfile retrieves the profile of a user by id
func (s *userServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// ListUsers retrieves all users, optionally filtered by designation
func (s *userServiceImpl) ListUsers(ctx context.Context, designation *models.Designation) (*dto.UserListResponse, error) {
	var filter []models.Designation
	if designation != nil {
		if !designation.IsValid() {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
				fmt.Sprintf("unknown designation %q", *designation))
		}
		filter = []models.Designation{*designation}
	}

	users, err := s.userStore.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.UserListResponse{Users: dto.FromUsers(users)}, nil
}
