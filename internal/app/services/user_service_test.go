package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/selimk/teamhub/internal/app/models"
	"github.com/selimk/teamhub/internal/pkg/apperrors"
)

func TestUserService_GetProfile(t *testing.T) {
	userStore := new(MockUserStore)
	userStore.On("FindByID", mock.Anything, int64(1)).
		Return(&models.User{ID: 1, Username: "selim", Email: "selim@example.com", Designation: models.DesignationBackend}, nil)

	service := NewUserService(userStore)
	got, err := service.GetProfile(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "selim", got.Username)
	assert.Equal(t, string(models.DesignationBackend), got.Designation)

	userStore.On("FindByID", mock.Anything, int64(9)).Return(nil, apperrors.ErrUserNotFound)
	_, err = service.GetProfile(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		userStore := new(MockUserStore)
		userStore.On("GetAll", mock.Anything, []models.Designation(nil)).Return([]models.User{
			{ID: 1, Username: "a"},
			{ID: 2, Username: "b"},
		}, nil)

		service := NewUserService(userStore)
		got, err := service.ListUsers(context.Background(), nil)

		require.NoError(t, err)
		assert.Len(t, got.Users, 2)
	})

	t.Run("designation filter", func(t *testing.T) {
		userStore := new(MockUserStore)
		userStore.On("GetAll", mock.Anything, []models.Designation{models.DesignationSalesman}).
			Return([]models.User{{ID: 3, Username: "sales"}}, nil)

		service := NewUserService(userStore)
		d := models.DesignationSalesman
		got, err := service.ListUsers(context.Background(), &d)

		require.NoError(t, err)
		assert.Len(t, got.Users, 1)
	})

	t.Run("invalid filter", func(t *testing.T) {
		service := NewUserService(new(MockUserStore))
		d := models.Designation("CEO")
		_, err := service.ListUsers(context.Background(), &d)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}
