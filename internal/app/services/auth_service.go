package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"github.com/selimk/teamhub/internal/app/models"
	"github.com/selimk/teamhub/internal/app/models/dto"
	"github.com/selimk/teamhub/internal/pkg/apperrors"
	"github.com/selimk/teamhub/internal/pkg/auth"
	"github.com/selimk/teamhub/internal/pkg/filestorage"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, image *multipart.FileHeader) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userStore   UserStore
	tokenStore  TokenStore
	fileStorage filestorage.FileStorage
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userStore UserStore,
	tokenStore TokenStore,
	fileStorage filestorage.FileStorage,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userStore:   userStore,
		tokenStore:  tokenStore,
		fileStorage: fileStorage,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register creates a new user account and signs it in
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest, image *multipart.FileHeader) (*dto.AuthResponse, error) {
	if !req.Designation.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("unknown designation %q", req.Designation))
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Profile images live at the storage root so DeleteFile can resolve them
	var imageURL *string
	if image != nil {
		url, err := s.fileStorage.SaveFile(image)
		if err != nil {
			s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to store profile image")
			return nil, fmt.Errorf("failed to store profile image: %w", err)
		}
		imageURL = &url
	}

	user := &models.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    hashed,
		Contact:     req.Contact,
		Designation: req.Designation,
		ImageURL:    imageURL,
	}

	id, err := s.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			// Remove the orphaned image before surfacing the conflict
			if imageURL != nil {
				_ = s.fileStorage.DeleteFile(*imageURL)
			}
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		return nil, err
	}
	user.ID = id
	user.CreatedAt = time.Now()

	s.logger.Info().Int64("userID", id).Str("email", user.Email).Msg("User registered")

	return s.issueTokens(ctx, user)
}

// Login authenticates a user by email and password
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")

	return s.issueTokens(ctx, user)
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, expiryDate, isRevoked, err := s.tokenStore.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if isRevoked {
		// A revoked token showing up again means the token leaked; cut the
		// whole session chain for that user
		if err := s.tokenStore.RevokeAllUserTokens(ctx, userID); err != nil {
			s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to revoke user tokens")
		}
		s.logger.Warn().Int64("userID", userID).Msg("Revoked refresh token reused")
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(expiryDate) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Rotate: the used refresh token is revoked before the new one is issued
	if err := s.tokenStore.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &resp.Token, nil
}

// Logout revokes the given refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokenStore.RevokeToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return err
	}
	return nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := s.tokenStore.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		User: dto.FromUser(user),
	}, nil
}
