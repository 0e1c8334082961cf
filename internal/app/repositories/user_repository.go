package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selimk/teamhub/internal/app/models"
	"github.com/selimk/teamhub/internal/pkg/apperrors"
	"github.com/selimk/teamhub/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new user and returns its id
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("username", "email", "password", "contact", "designation", "image_url").
		Values(user.Username, user.Email, user.Password, user.Contact, user.Designation, user.ImageURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// FindByID retrieves a user by id
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, squirrel.Eq{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, pred interface{}) (*models.User, error) {
	sql, args, err := r.sb.Select(
		"id", "username", "email", "password", "contact", "designation", "image_url", "created_at",
	).
		From("users").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var user models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.Contact,
		&user.Designation,
		&user.ImageURL,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &user, nil
}

// GetAll retrieves users, optionally filtered to a designation set
func (r *UserRepository) GetAll(ctx context.Context, designations []models.Designation) ([]models.User, error) {
	query := r.sb.Select(
		"id", "username", "email", "password", "contact", "designation", "image_url", "created_at",
	).
		From("users").
		OrderBy("id")

	if len(designations) > 0 {
		query = query.Where(squirrel.Eq{"designation": designations})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// EligibleForTeam retrieves users whose designation is accepted by the team's
// type, excluding the lead and existing members. This mirrors the in-memory
// eligibility filter at the SQL level so candidate lists stay cheap.
func (r *UserRepository) EligibleForTeam(ctx context.Context, team *models.Team) ([]models.User, error) {
	designations := team.TeamType.Designations()
	if len(designations) == 0 {
		return nil, nil
	}

	query := r.sb.Select(
		"u.id", "u.username", "u.email", "u.password", "u.contact", "u.designation", "u.image_url", "u.created_at",
	).
		From("users u").
		Where(squirrel.Eq{"u.designation": designations}).
		Where(squirrel.NotEq{"u.id": team.LeadID}).
		Where("u.id NOT IN (SELECT user_id FROM team_members WHERE team_id = ?)", team.ID).
		OrderBy("u.id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func scanUsers(rows pgx.Rows) ([]models.User, error) {
	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.Password,
			&user.Contact,
			&user.Designation,
			&user.ImageURL,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return users, nil
}
