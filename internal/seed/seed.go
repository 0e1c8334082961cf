// Package seed creates default data on startup.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/selimk/teamhub/internal/app/models"
	appRepos "github.com/selimk/teamhub/internal/app/repositories"
	"github.com/selimk/teamhub/internal/pkg/apperrors"
	pkgAuth "github.com/selimk/teamhub/internal/pkg/auth"
)

// CreateDefaultData seeds one demo user per designation so a fresh install
// has enough accounts to build a team with. Existing users are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (demo users)...")

	demoUsers := []struct {
		username    string
		email       string
		contact     string
		designation appModels.Designation
	}{
		{"demo-frontend", "frontend@demo.teamhub.app", "5550000001", appModels.DesignationFrontend},
		{"demo-backend", "backend@demo.teamhub.app", "5550000002", appModels.DesignationBackend},
		{"demo-fullstack", "fullstack@demo.teamhub.app", "5550000003", appModels.DesignationFullStack},
		{"demo-designer", "designer@demo.teamhub.app", "5550000004", appModels.DesignationUIUX},
		{"demo-sales", "sales@demo.teamhub.app", "5550000005", appModels.DesignationSalesman},
		{"demo-marketing", "marketing@demo.teamhub.app", "5550000006", appModels.DesignationMarketer},
	}

	hashedPassword, err := pkgAuth.HashPassword("demo1234")
	if err != nil {
		return err
	}

	var finalErr error
	for _, demo := range demoUsers {
		user := &appModels.User{
			Username:    demo.username,
			Email:       demo.email,
			Password:    hashedPassword,
			Contact:     demo.contact,
			Designation: demo.designation,
		}
		if _, err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("email", demo.email).Msg("Error creating demo user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}
