package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/selimk/teamhub/internal/app/models"
	"github.com/selimk/teamhub/internal/db"
	"github.com/selimk/teamhub/internal/pkg/apperrors"
	"github.com/selimk/teamhub/internal/pkg/dberrors"
)

// TeamRepository handles database operations for teams and their members
type TeamRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(pg *db.PostgresDB) *TeamRepository {
	return &TeamRepository{
		db: pg,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new team and returns its id
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) (int64, error) {
	sql, args, err := r.sb.Insert("teams").
		Columns("name", "description", "lead_id", "team_type", "member_limit", "image_url").
		Values(team.Name, team.Description, team.LeadID, team.TeamType, team.MemberLimit, team.ImageURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetByID retrieves a team by id, without members
func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	sql, args, err := r.sb.Select(
		"id", "name", "description", "lead_id", "team_type", "member_limit", "image_url", "created_at",
	).
		From("teams").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var team models.Team
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&team.ID,
		&team.Name,
		&team.Description,
		&team.LeadID,
		&team.TeamType,
		&team.MemberLimit,
		&team.ImageURL,
		&team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &team, nil
}

// GetAll retrieves teams with pagination, newest first
func (r *TeamRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]models.Team, int64, error) {
	sql, args, err := r.sb.Select(
		"id", "name", "description", "lead_id", "team_type", "member_limit", "image_url", "created_at",
		"COUNT(*) OVER() AS total_count",
	).
		From("teams").
		OrderBy("created_at DESC", "id DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	var total int64
	for rows.Next() {
		var team models.Team
		err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Description,
			&team.LeadID,
			&team.TeamType,
			&team.MemberLimit,
			&team.ImageURL,
			&team.CreatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return teams, total, nil
}

// GetMembers retrieves the member entries of a team, oldest first
func (r *TeamRepository) GetMembers(ctx context.Context, teamID int64) ([]models.TeamMember, error) {
	sql, args, err := r.sb.Select(
		"id", "team_id", "user_id", "username", "image_url", "added_at",
	).
		From("team_members").
		Where(squirrel.Eq{"team_id": teamID}).
		OrderBy("added_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		var m models.TeamMember
		err := rows.Scan(&m.ID, &m.TeamID, &m.UserID, &m.Username, &m.ImageURL, &m.AddedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return members, nil
}

// MemberCount retrieves the number of member entries of a team
func (r *TeamRepository) MemberCount(ctx context.Context, teamID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("team_members").
		Where(squirrel.Eq{"team_id": teamID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return count, nil
}

// IsMember checks if a user has a member entry in the team
func (r *TeamRepository) IsMember(ctx context.Context, teamID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("team_members").
		Where(squirrel.Eq{"team_id": teamID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists int
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

// AddMember appends a member snapshot to the team. The capacity check is
// re-validated at commit time: the team row is locked for the duration of the
// transaction, so two sessions adding concurrently serialize and the loser
// sees the winner's insert. A stale client-side read can therefore never push
// the team past its member limit.
func (r *TeamRepository) AddMember(ctx context.Context, teamID int64, member models.TeamMember) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var memberLimit int
		err := tx.QueryRow(ctx,
			`SELECT member_limit FROM teams WHERE id = $1 FOR UPDATE`, teamID,
		).Scan(&memberLimit)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("error locking team row: %w", err)
		}

		var count int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM team_members WHERE team_id = $1`, teamID,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("error counting members: %w", err)
		}

		if count >= memberLimit {
			return apperrors.ErrTeamFull
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO team_members (team_id, user_id, username, image_url) VALUES ($1, $2, $3, $4)`,
			teamID, member.UserID, member.Username, member.ImageURL,
		)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "team_members_team_id_user_id_key") {
				return apperrors.ErrAlreadyMember
			}
			return fmt.Errorf("error inserting member: %w", err)
		}

		return nil
	})
}
