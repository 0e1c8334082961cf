package services

import (
	"context"
	"time"

	"github.com/selimk/teamhub/internal/app/models"
)

// UserStore is the user persistence contract consumed by the services.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context, designations []models.Designation) ([]models.User, error)
	EligibleForTeam(ctx context.Context, team *models.Team) ([]models.User, error)
}

// TeamStore is the team persistence contract consumed by the services.
type TeamStore interface {
	Create(ctx context.Context, team *models.Team) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Team, error)
	GetAll(ctx context.Context, offset uint64, limit int) ([]models.Team, int64, error)
	GetMembers(ctx context.Context, teamID int64) ([]models.TeamMember, error)
	MemberCount(ctx context.Context, teamID int64) (int, error)
	IsMember(ctx context.Context, teamID, userID int64) (bool, error)
	AddMember(ctx context.Context, teamID int64, member models.TeamMember) error
}

// QuestionStore is the question/answer persistence contract consumed by the services.
type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	GetByTeamID(ctx context.Context, teamID int64) ([]models.Question, error)
	CreateAnswer(ctx context.Context, answer *models.Answer) (int64, error)
	GetAnswers(ctx context.Context, questionID int64) ([]models.Answer, error)
}

// TokenStore is the refresh token persistence contract consumed by the services.
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (userID int64, expiryDate time.Time, isRevoked bool, err error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
}
