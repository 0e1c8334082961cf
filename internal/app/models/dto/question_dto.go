package dto

import (
	"time"

	"github.com/selimk/teamhub/internal/app/models"
)

// --- Request DTOs ---

// CreateQuestionRequest represents the body of a new daily question
type CreateQuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

// SubmitAnswerRequest represents a member's answer to a question
type SubmitAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// --- Response DTOs ---

// QuestionResponse represents a posted question
type QuestionResponse struct {
	ID        int64     `json:"id"`
	TeamID    int64     `json:"teamId"`
	Question  string    `json:"question"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuestionListResponse represents the questions of a team
type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// AnswerResponse represents a submitted answer
type AnswerResponse struct {
	ID          int64         `json:"id"`
	QuestionID  int64         `json:"questionId"`
	Answer      string        `json:"answer"`
	SubmittedBy int64         `json:"submittedBy"`
	Author      *UserResponse `json:"author,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// AnswerListResponse represents the answers of a question
type AnswerListResponse struct {
	Answers []AnswerResponse `json:"answers"`
}

// FromQuestion converts a models.Question to a QuestionResponse
func FromQuestion(q *models.Question) QuestionResponse {
	if q == nil {
		return QuestionResponse{}
	}
	return QuestionResponse{
		ID:        q.ID,
		TeamID:    q.TeamID,
		Question:  q.Body,
		CreatedBy: q.CreatedBy,
		CreatedAt: q.CreatedAt,
	}
}

// FromAnswer converts a models.Answer to an AnswerResponse
func FromAnswer(a *models.Answer) AnswerResponse {
	if a == nil {
		return AnswerResponse{}
	}
	resp := AnswerResponse{
		ID:          a.ID,
		QuestionID:  a.QuestionID,
		Answer:      a.Body,
		SubmittedBy: a.SubmittedBy,
		CreatedAt:   a.CreatedAt,
	}
	if a.Author != nil {
		author := FromUser(a.Author)
		resp.Author = &author
	}
	return resp
}
