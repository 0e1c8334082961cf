package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/selimk/teamhub/internal/app/auth"
	"github.com/selimk/teamhub/internal/app/models"
	"github.com/selimk/teamhub/internal/app/models/dto"
	"github.com/selimk/teamhub/internal/pkg/apperrors"
)

// QuestionService defines the interface for daily question operations
type QuestionService interface {
	CreateQuestion(ctx context.Context, teamID, callerID int64, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	ListQuestions(ctx context.Context, teamID, callerID int64) (*dto.QuestionListResponse, error)
	SubmitAnswer(ctx context.Context, teamID, questionID, callerID int64, req *dto.SubmitAnswerRequest) (*dto.AnswerResponse, error)
	ListAnswers(ctx context.Context, teamID, questionID, callerID int64) (*dto.AnswerListResponse, error)
}

// questionServiceImpl implements QuestionService
type questionServiceImpl struct {
	questionStore QuestionStore
	teamStore     TeamStore
	logger        zerolog.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(questionStore QuestionStore, teamStore TeamStore, logger zerolog.Logger) QuestionService {
	return &questionServiceImpl{
		questionStore: questionStore,
		teamStore:     teamStore,
		logger:        logger,
	}
}

// CreateQuestion posts a new question under the team. Only the lead may post.
func (s *questionServiceImpl) CreateQuestion(ctx context.Context, teamID, callerID int64, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	team, err := s.teamStore.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if !auth.LeadsTeam(callerID, team) {
		return nil, apperrors.NewForbiddenError("only the team lead can post questions")
	}

	question := &models.Question{
		TeamID:    teamID,
		Body:      req.Question,
		CreatedBy: callerID,
	}

	if _, err := s.questionStore.Create(ctx, question); err != nil {
		s.logger.Error().Err(err).Int64("teamID", teamID).Msg("Failed to create question")
		return nil, err
	}

	s.logger.Info().Int64("teamID", teamID).Int64("questionID", question.ID).Msg("Question posted")

	resp := dto.FromQuestion(question)
	return &resp, nil
}

// ListQuestions retrieves the questions of a team. Visible to the lead and
// to members.
func (s *questionServiceImpl) ListQuestions(ctx context.Context, teamID, callerID int64) (*dto.QuestionListResponse, error) {
	team, err := s.teamStore.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if err := s.requireLeadOrMember(ctx, team, callerID); err != nil {
		return nil, err
	}

	questions, err := s.questionStore.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		responses = append(responses, dto.FromQuestion(&questions[i]))
	}

	return &dto.QuestionListResponse{Questions: responses}, nil
}

// SubmitAnswer appends the caller's answer to a question. The lead may not
// answer; non-members may not answer. Repeat answers by the same member are
// allowed.
func (s *questionServiceImpl) SubmitAnswer(ctx context.Context, teamID, questionID, callerID int64, req *dto.SubmitAnswerRequest) (*dto.AnswerResponse, error) {
	team, err := s.teamStore.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	question, err := s.questionStore.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.TeamID != teamID {
		return nil, apperrors.ErrQuestionNotFound
	}

	if auth.LeadsTeam(callerID, team) {
		return nil, apperrors.NewForbiddenError("the team lead cannot answer questions")
	}

	isMember, err := s.teamStore.IsMember(ctx, teamID, callerID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperrors.ErrNotMember
	}

	answer := &models.Answer{
		QuestionID:  questionID,
		Body:        req.Answer,
		SubmittedBy: callerID,
	}

	if _, err := s.questionStore.CreateAnswer(ctx, answer); err != nil {
		s.logger.Error().Err(err).Int64("questionID", questionID).Msg("Failed to submit answer")
		return nil, err
	}

	s.logger.Info().Int64("questionID", questionID).Int64("userID", callerID).Msg("Answer submitted")

	resp := dto.FromAnswer(answer)
	return &resp, nil
}

// ListAnswers retrieves the answers of a question. Visible to the lead and
// to members.
func (s *questionServiceImpl) ListAnswers(ctx context.Context, teamID, questionID, callerID int64) (*dto.AnswerListResponse, error) {
	team, err := s.teamStore.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if err := s.requireLeadOrMember(ctx, team, callerID); err != nil {
		return nil, err
	}

	question, err := s.questionStore.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.TeamID != teamID {
		return nil, apperrors.ErrQuestionNotFound
	}

	answers, err := s.questionStore.GetAnswers(ctx, questionID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AnswerResponse, 0, len(answers))
	for i := range answers {
		responses = append(responses, dto.FromAnswer(&answers[i]))
	}

	return &dto.AnswerListResponse{Answers: responses}, nil
}

func (s *questionServiceImpl) requireLeadOrMember(ctx context.Context, team *models.Team, callerID int64) error {
	if auth.LeadsTeam(callerID, team) {
		return nil
	}

	isMember, err := s.teamStore.IsMember(ctx, team.ID, callerID)
	if err != nil {
		return err
	}
	if !isMember {
		return apperrors.ErrNotMember
	}
	return nil
}
