package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selimk/teamhub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	TeamRepository     *TeamRepository
	QuestionRepository *QuestionRepository
	TokenRepository    *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(pool),
		TeamRepository:     NewTeamRepository(&db.PostgresDB{Pool: pool}),
		QuestionRepository: NewQuestionRepository(pool),
		TokenRepository:    NewTokenRepository(pool),
	}
}
