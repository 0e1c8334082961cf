package models

import "time"

// Question is a daily question posted under a team by its lead.
type Question struct {
	ID        int64     `json:"id" db:"id"`
	TeamID    int64     `json:"teamId" db:"team_id"`
	Body      string    `json:"body" db:"body"`
	CreatedBy int64     `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Answer is a member's answer to a question. Submissions are append-only; a
// user may answer the same question more than once.
type Answer struct {
	ID          int64     `json:"id" db:"id"`
	QuestionID  int64     `json:"questionId" db:"question_id"`
	Body        string    `json:"body" db:"body"`
	SubmittedBy int64     `json:"submittedBy" db:"submitted_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Author *User `json:"author,omitempty"`
}
