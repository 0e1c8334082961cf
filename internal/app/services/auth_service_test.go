package services

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/selimk/teamhub/internal/app/models"
	"github.com/selimk/teamhub/internal/app/models/dto"
	"github.com/selimk/teamhub/internal/pkg/apperrors"
	"github.com/selimk/teamhub/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "teamhub-test",
	})
}

func newTestAuthService(userStore *MockUserStore, tokenStore *MockTokenStore) AuthService {
	return NewAuthService(userStore, tokenStore, new(MockFileStorage), newTestJWTService(), zerolog.Nop())
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		req           *dto.RegisterRequest
		setupMocks    func(*MockUserStore, *MockTokenStore)
		expectedError error
	}{
		{
			name: "success",
			req: &dto.RegisterRequest{
				Username:    "selim",
				Email:       "selim@example.com",
				Password:    "secret123",
				Contact:     "5551234567",
				Designation: models.DesignationBackend,
			},
			setupMocks: func(us *MockUserStore, ts *MockTokenStore) {
				us.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					// Password must be stored hashed, never as given
					return u.Email == "selim@example.com" && u.Password != "secret123"
				})).Return(int64(1), nil)
				ts.On("CreateToken", mock.Anything, mock.Anything, int64(1), mock.Anything).Return(nil)
			},
		},
		{
			name: "invalid designation",
			req: &dto.RegisterRequest{
				Username:    "selim",
				Email:       "selim@example.com",
				Password:    "secret123",
				Contact:     "5551234567",
				Designation: models.Designation("CEO"),
			},
			setupMocks:    func(us *MockUserStore, ts *MockTokenStore) {},
			expectedError: apperrors.ErrValidationFailed,
		},
		{
			name: "duplicate email",
			req: &dto.RegisterRequest{
				Username:    "selim",
				Email:       "taken@example.com",
				Password:    "secret123",
				Contact:     "5551234567",
				Designation: models.DesignationBackend,
			},
			setupMocks: func(us *MockUserStore, ts *MockTokenStore) {
				us.On("Create", mock.Anything, mock.Anything).Return(int64(0), apperrors.ErrEmailAlreadyExists)
			},
			expectedError: apperrors.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := new(MockUserStore)
			tokenStore := new(MockTokenStore)
			tt.setupMocks(userStore, tokenStore)

			service := newTestAuthService(userStore, tokenStore)
			got, err := service.Register(context.Background(), tt.req, nil)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, got.Token.AccessToken)
				assert.NotEmpty(t, got.Token.RefreshToken)
				assert.Equal(t, "Bearer", got.Token.TokenType)
				assert.Equal(t, tt.req.Email, got.User.Email)
			}

			userStore.AssertExpectations(t)
			tokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_ProfileImage(t *testing.T) {
	req := &dto.RegisterRequest{
		Username:    "selim",
		Email:       "selim@example.com",
		Password:    "secret123",
		Contact:     "5551234567",
		Designation: models.DesignationBackend,
	}
	image := &multipart.FileHeader{Filename: "me.png"}
	imageURL := "http://localhost:8080/uploads/abc.png"

	t.Run("stored image URL ends up on the user", func(t *testing.T) {
		userStore := new(MockUserStore)
		tokenStore := new(MockTokenStore)
		fileStorage := new(MockFileStorage)
		fileStorage.On("SaveFile", image).Return(imageURL, nil)
		userStore.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.ImageURL != nil && *u.ImageURL == imageURL
		})).Return(int64(1), nil)
		tokenStore.On("CreateToken", mock.Anything, mock.Anything, int64(1), mock.Anything).Return(nil)

		service := NewAuthService(userStore, tokenStore, fileStorage, newTestJWTService(), zerolog.Nop())
		got, err := service.Register(context.Background(), req, image)
		require.NoError(t, err)
		assert.Equal(t, &imageURL, got.User.ImageURL)

		userStore.AssertExpectations(t)
		fileStorage.AssertExpectations(t)
	})

	t.Run("duplicate email removes the stored image", func(t *testing.T) {
		userStore := new(MockUserStore)
		fileStorage := new(MockFileStorage)
		fileStorage.On("SaveFile", image).Return(imageURL, nil)
		userStore.On("Create", mock.Anything, mock.Anything).Return(int64(0), apperrors.ErrEmailAlreadyExists)
		fileStorage.On("DeleteFile", imageURL).Return(nil)

		service := NewAuthService(userStore, new(MockTokenStore), fileStorage, newTestJWTService(), zerolog.Nop())
		_, err := service.Register(context.Background(), req, image)
		require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

		fileStorage.AssertExpectations(t)
	})
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	storedUser := &models.User{
		ID:          1,
		Username:    "selim",
		Email:       "selim@example.com",
		Password:    hashed,
		Designation: models.DesignationBackend,
	}

	tests := []struct {
		name          string
		req           *dto.LoginRequest
		setupMocks    func(*MockUserStore, *MockTokenStore)
		expectedError error
	}{
		{
			name: "success",
			req:  &dto.LoginRequest{Email: "selim@example.com", Password: "secret123"},
			setupMocks: func(us *MockUserStore, ts *MockTokenStore) {
				us.On("FindByEmail", mock.Anything, "selim@example.com").Return(storedUser, nil)
				ts.On("CreateToken", mock.Anything, mock.Anything, int64(1), mock.Anything).Return(nil)
			},
		},
		{
			name: "wrong password",
			req:  &dto.LoginRequest{Email: "selim@example.com", Password: "nope"},
			setupMocks: func(us *MockUserStore, ts *MockTokenStore) {
				us.On("FindByEmail", mock.Anything, "selim@example.com").Return(storedUser, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			// Unknown email maps to the same error as a wrong password
			name: "unknown email",
			req:  &dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"},
			setupMocks: func(us *MockUserStore, ts *MockTokenStore) {
				us.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, apperrors.ErrUserNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := new(MockUserStore)
			tokenStore := new(MockTokenStore)
			tt.setupMocks(userStore, tokenStore)

			service := newTestAuthService(userStore, tokenStore)
			got, err := service.Login(context.Background(), tt.req)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, got.Token.AccessToken)
				assert.Equal(t, int64(1), got.User.ID)
			}

			userStore.AssertExpectations(t)
			tokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	storedUser := &models.User{ID: 1, Email: "selim@example.com"}

	tests := []struct {
		name          string
		setupMocks    func(*MockUserStore, *MockTokenStore)
		expectedError error
	}{
		{
			name: "success rotates the token",
			setupMocks: func(us *MockUserStore, ts *MockTokenStore) {
				ts.On("GetTokenByValue", mock.Anything, "refresh-1").
					Return(int64(1), time.Now().Add(time.Hour), false, nil)
				us.On("FindByID", mock.Anything, int64(1)).Return(storedUser, nil)
				ts.On("RevokeToken", mock.Anything, "refresh-1").Return(nil)
				ts.On("CreateToken", mock.Anything, mock.Anything, int64(1), mock.Anything).Return(nil)
			},
		},
		{
			// Reuse of a revoked token kills every session of that user
			name: "revoked token revokes all user tokens",
			setupMocks: func(us *MockUserStore, ts *MockTokenStore) {
				ts.On("GetTokenByValue", mock.Anything, "refresh-1").
					Return(int64(1), time.Now().Add(time.Hour), true, nil)
				ts.On("RevokeAllUserTokens", mock.Anything, int64(1)).Return(nil)
			},
			expectedError: apperrors.ErrTokenRevoked,
		},
		{
			name: "expired token",
			setupMocks: func(us *MockUserStore, ts *MockTokenStore) {
				ts.On("GetTokenByValue", mock.Anything, "refresh-1").
					Return(int64(1), time.Now().Add(-time.Minute), false, nil)
			},
			expectedError: apperrors.ErrTokenExpired,
		},
		{
			name: "unknown token",
			setupMocks: func(us *MockUserStore, ts *MockTokenStore) {
				ts.On("GetTokenByValue", mock.Anything, "refresh-1").
					Return(int64(0), time.Time{}, false, apperrors.ErrTokenNotFound)
			},
			expectedError: apperrors.ErrTokenNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := new(MockUserStore)
			tokenStore := new(MockTokenStore)
			tt.setupMocks(userStore, tokenStore)

			service := newTestAuthService(userStore, tokenStore)
			got, err := service.RefreshToken(context.Background(), "refresh-1")

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, got.AccessToken)
				assert.NotEqual(t, "refresh-1", got.RefreshToken)
			}

			userStore.AssertExpectations(t)
			tokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	tokenStore := new(MockTokenStore)
	tokenStore.On("RevokeToken", mock.Anything, "refresh-1").Return(nil)

	service := newTestAuthService(new(MockUserStore), tokenStore)
	require.NoError(t, service.Logout(context.Background(), "refresh-1"))

	// Logging out an unknown token is not an error
	tokenStore.On("RevokeToken", mock.Anything, "ghost").Return(apperrors.ErrTokenNotFound)
	require.NoError(t, service.Logout(context.Background(), "ghost"))

	tokenStore.AssertExpectations(t)
}
