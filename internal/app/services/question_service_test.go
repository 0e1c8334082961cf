package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/selimk/teamhub/internal/app/models"
	"github.com/selimk/teamhub/internal/app/models/dto"
	"github.com/selimk/teamhub/internal/pkg/apperrors"
)

func newTestQuestionService(questionStore *MockQuestionStore, teamStore *MockTeamStore) QuestionService {
	return NewQuestionService(questionStore, teamStore, zerolog.Nop())
}

func TestQuestionService_CreateQuestion(t *testing.T) {
	tests := []struct {
		name          string
		callerID      int64
		setupMocks    func(*MockQuestionStore, *MockTeamStore)
		expectedError error
	}{
		{
			name:     "lead posts a question",
			callerID: 1,
			setupMocks: func(qs *MockQuestionStore, ts *MockTeamStore) {
				ts.On("GetByID", mock.Anything, int64(10)).Return(backendTeam(), nil)
				qs.On("Create", mock.Anything, mock.MatchedBy(func(q *models.Question) bool {
					return q.TeamID == 10 && q.CreatedBy == 1 && q.Body == "What did you ship today?"
				})).Return(int64(100), nil)
			},
		},
		{
			name:     "member cannot post",
			callerID: 2,
			setupMocks: func(qs *MockQuestionStore, ts *MockTeamStore) {
				ts.On("GetByID", mock.Anything, int64(10)).Return(backendTeam(), nil)
			},
			expectedError: apperrors.ErrPermissionDenied,
		},
		{
			name:     "team not found",
			callerID: 1,
			setupMocks: func(qs *MockQuestionStore, ts *MockTeamStore) {
				ts.On("GetByID", mock.Anything, int64(10)).Return(nil, apperrors.ErrTeamNotFound)
			},
			expectedError: apperrors.ErrTeamNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questionStore := new(MockQuestionStore)
			teamStore := new(MockTeamStore)
			tt.setupMocks(questionStore, teamStore)

			service := newTestQuestionService(questionStore, teamStore)
			got, err := service.CreateQuestion(context.Background(), 10, tt.callerID,
				&dto.CreateQuestionRequest{Question: "What did you ship today?"})

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "What did you ship today?", got.Question)
				assert.Equal(t, int64(1), got.CreatedBy)
			}

			questionStore.AssertExpectations(t)
			teamStore.AssertExpectations(t)
		})
	}
}

func TestQuestionService_ListQuestions(t *testing.T) {
	tests := []struct {
		name          string
		callerID      int64
		setupMocks    func(*MockQuestionStore, *MockTeamStore)
		expectedError error
	}{
		{
			name:     "lead lists questions",
			callerID: 1,
			setupMocks: func(qs *MockQuestionStore, ts *MockTeamStore) {
				ts.On("GetByID", mock.Anything, int64(10)).Return(backendTeam(), nil)
				qs.On("GetByTeamID", mock.Anything, int64(10)).Return([]models.Question{
					{ID: 100, TeamID: 10, Body: "q1", CreatedBy: 1},
				}, nil)
			},
		},
		{
			name:     "member lists questions",
			callerID: 2,
			setupMocks: func(qs *MockQuestionStore, ts *MockTeamStore) {
				ts.On("GetByID", mock.Anything, int64(10)).Return(backendTeam(), nil)
				ts.On("IsMember", mock.Anything, int64(10), int64(2)).Return(true, nil)
				qs.On("GetByTeamID", mock.Anything, int64(10)).Return([]models.Question{}, nil)
			},
		},
		{
			name:     "outsider is rejected",
			callerID: 9,
			setupMocks: func(qs *MockQuestionStore, ts *MockTeamStore) {
				ts.On("GetByID", mock.Anything, int64(10)).Return(backendTeam(), nil)
				ts.On("IsMember", mock.Anything, int64(10), int64(9)).Return(false, nil)
			},
			expectedError: apperrors.ErrNotMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questionStore := new(MockQuestionStore)
			teamStore := new(MockTeamStore)
			tt.setupMocks(questionStore, teamStore)

			service := newTestQuestionService(questionStore, teamStore)
			got, err := service.ListQuestions(context.Background(), 10, tt.callerID)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, got)
			}

			questionStore.AssertExpectations(t)
			teamStore.AssertExpectations(t)
		})
	}
}

func TestQuestionService_SubmitAnswer(t *testing.T) {
	question := &models.Question{ID: 100, TeamID: 10, Body: "q1", CreatedBy: 1}

	tests := []struct {
		name          string
		callerID      int64
		setupMocks    func(*MockQuestionStore, *MockTeamStore)
		expectedError error
	}{
		{
			name:     "member answers",
			callerID: 2,
			setupMocks: func(qs *MockQuestionStore, ts *MockTeamStore) {
				ts.On("GetByID", mock.Anything, int64(10)).Return(backendTeam(), nil)
				qs.On("GetByID", mock.Anything, int64(100)).Return(question, nil)
				ts.On("IsMember", mock.Anything, int64(10), int64(2)).Return(true, nil)
				qs.On("CreateAnswer", mock.Anything, mock.MatchedBy(func(a *models.Answer) bool {
					return a.QuestionID == 100 && a.SubmittedBy == 2 && a.Body == "Shipped the parser"
				})).Return(int64(1000), nil)
			},
		},
		{
			name:     "lead cannot answer",
			callerID: 1,
			setupMocks: func(qs *MockQuestionStore, ts *MockTeamStore) {
				ts.On("GetByID", mock.Anything, int64(10)).Return(backendTeam(), nil)
				qs.On("GetByID", mock.Anything, int64(100)).Return(question, nil)
			},
			expectedError: apperrors.ErrPermissionDenied,
		},
		{
			name:     "non-member cannot answer",
			callerID: 9,
			setupMocks: func(qs *MockQuestionStore, ts *MockTeamStore) {
				ts.On("GetByID", mock.Anything, int64(10)).Return(backendTeam(), nil)
				qs.On("GetByID", mock.Anything, int64(100)).Return(question, nil)
				ts.On("IsMember", mock.Anything, int64(10), int64(9)).Return(false, nil)
			},
			expectedError: apperrors.ErrNotMember,
		},
		{
			name:     "question belongs to another team",
			callerID: 2,
			setupMocks: func(qs *MockQuestionStore, ts *MockTeamStore) {
				ts.On("GetByID", mock.Anything, int64(10)).Return(backendTeam(), nil)
				qs.On("GetByID", mock.Anything, int64(100)).
					Return(&models.Question{ID: 100, TeamID: 77, Body: "q1", CreatedBy: 5}, nil)
			},
			expectedError: apperrors.ErrQuestionNotFound,
		},
		{
			name:     "question not found",
			callerID: 2,
			setupMocks: func(qs *MockQuestionStore, ts *MockTeamStore) {
				ts.On("GetByID", mock.Anything, int64(10)).Return(backendTeam(), nil)
				qs.On("GetByID", mock.Anything, int64(100)).Return(nil, apperrors.ErrQuestionNotFound)
			},
			expectedError: apperrors.ErrQuestionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questionStore := new(MockQuestionStore)
			teamStore := new(MockTeamStore)
			tt.setupMocks(questionStore, teamStore)

			service := newTestQuestionService(questionStore, teamStore)
			got, err := service.SubmitAnswer(context.Background(), 10, 100, tt.callerID,
				&dto.SubmitAnswerRequest{Answer: "Shipped the parser"})

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Shipped the parser", got.Answer)
				assert.Equal(t, int64(2), got.SubmittedBy)
			}

			questionStore.AssertExpectations(t)
			teamStore.AssertExpectations(t)
		})
	}
}

// A member may answer the same question more than once; each submission is
// appended as a separate answer.
func TestQuestionService_SubmitAnswer_RepeatAllowed(t *testing.T) {
	question := &models.Question{ID: 100, TeamID: 10, Body: "q1", CreatedBy: 1}

	questionStore := new(MockQuestionStore)
	teamStore := new(MockTeamStore)
	teamStore.On("GetByID", mock.Anything, int64(10)).Return(backendTeam(), nil)
	questionStore.On("GetByID", mock.Anything, int64(100)).Return(question, nil)
	teamStore.On("IsMember", mock.Anything, int64(10), int64(2)).Return(true, nil)
	questionStore.On("CreateAnswer", mock.Anything, mock.Anything).Return(int64(1), nil).Twice()

	service := newTestQuestionService(questionStore, teamStore)

	_, err := service.SubmitAnswer(context.Background(), 10, 100, 2, &dto.SubmitAnswerRequest{Answer: "first"})
	require.NoError(t, err)
	_, err = service.SubmitAnswer(context.Background(), 10, 100, 2, &dto.SubmitAnswerRequest{Answer: "second"})
	require.NoError(t, err)

	questionStore.AssertExpectations(t)
}

func TestQuestionService_ListAnswers(t *testing.T) {
	question := &models.Question{ID: 100, TeamID: 10, Body: "q1", CreatedBy: 1}

	questionStore := new(MockQuestionStore)
	teamStore := new(MockTeamStore)
	teamStore.On("GetByID", mock.Anything, int64(10)).Return(backendTeam(), nil)
	questionStore.On("GetByID", mock.Anything, int64(100)).Return(question, nil)
	questionStore.On("GetAnswers", mock.Anything, int64(100)).Return([]models.Answer{
		{ID: 1, QuestionID: 100, Body: "a1", SubmittedBy: 2, Author: &models.User{ID: 2, Username: "dev-a"}},
		{ID: 2, QuestionID: 100, Body: "a2", SubmittedBy: 3, Author: &models.User{ID: 3, Username: "dev-b"}},
	}, nil)

	service := newTestQuestionService(questionStore, teamStore)
	got, err := service.ListAnswers(context.Background(), 10, 100, 1)

	require.NoError(t, err)
	require.Len(t, got.Answers, 2)
	assert.Equal(t, "a1", got.Answers[0].Answer)
	require.NotNil(t, got.Answers[0].Author)
	assert.Equal(t, "dev-a", got.Answers[0].Author.Username)
}
