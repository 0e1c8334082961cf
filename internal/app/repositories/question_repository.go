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
)

// QuestionRepository handles database operations for questions and answers
type QuestionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new question under a team and returns its id
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) (int64, error) {
	sql, args, err := r.sb.Insert("questions").
		Columns("team_id", "body", "created_by").
		Values(question.TeamID, question.Body, question.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&question.ID, &question.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return question.ID, nil
}

// GetByID retrieves a question by id
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	sql, args, err := r.sb.Select("id", "team_id", "body", "created_by", "created_at").
		From("questions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var q models.Question
	err = r.db.QueryRow(ctx, sql, args...).Scan(&q.ID, &q.TeamID, &q.Body, &q.CreatedBy, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &q, nil
}

// GetByTeamID retrieves the questions of a team, newest first
func (r *QuestionRepository) GetByTeamID(ctx context.Context, teamID int64) ([]models.Question, error) {
	sql, args, err := r.sb.Select("id", "team_id", "body", "created_by", "created_at").
		From("questions").
		Where(squirrel.Eq{"team_id": teamID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		err := rows.Scan(&q.ID, &q.TeamID, &q.Body, &q.CreatedBy, &q.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return questions, nil
}

// CreateAnswer appends an answer to a question and returns its id. Answers
// are append-only; the same user may answer a question more than once.
func (r *QuestionRepository) CreateAnswer(ctx context.Context, answer *models.Answer) (int64, error) {
	sql, args, err := r.sb.Insert("answers").
		Columns("question_id", "body", "submitted_by").
		Values(answer.QuestionID, answer.Body, answer.SubmittedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&answer.ID, &answer.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return answer.ID, nil
}

// GetAnswers retrieves the answers of a question with their authors, oldest first
func (r *QuestionRepository) GetAnswers(ctx context.Context, questionID int64) ([]models.Answer, error) {
	sql, args, err := r.sb.Select(
		"a.id", "a.question_id", "a.body", "a.submitted_by", "a.created_at",
		"u.id", "u.username", "u.email", "u.contact", "u.designation", "u.image_url", "u.created_at",
	).
		From("answers a").
		Join("users u ON u.id = a.submitted_by").
		Where(squirrel.Eq{"a.question_id": questionID}).
		OrderBy("a.created_at", "a.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var answers []models.Answer
	for rows.Next() {
		var a models.Answer
		var author models.User
		err := rows.Scan(
			&a.ID, &a.QuestionID, &a.Body, &a.SubmittedBy, &a.CreatedAt,
			&author.ID, &author.Username, &author.Email, &author.Contact,
			&author.Designation, &author.ImageURL, &author.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		a.Author = &author
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return answers, nil
}
