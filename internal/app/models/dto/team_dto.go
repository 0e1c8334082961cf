package dto

import (
	"time"

	"github.com/selimk/teamhub/internal/app/models"
)

// --- Request DTOs ---

// CreateTeamRequest represents team creation data. Arrives as a multipart
// form so a team image can be attached alongside.
type CreateTeamRequest struct {
	Name        string          `form:"name" binding:"required"`
	Description string          `form:"description" binding:"required"`
	TeamType    models.TeamType `form:"teamType" binding:"required"`
	MemberLimit int             `form:"memberLimit" binding:"required,gt=0"`
	// Team image is handled separately in the multipart form
}

// AddMemberRequest represents the request to add a user to a team
type AddMemberRequest struct {
	UserID int64 `json:"userId" binding:"required,gt=0"`
}

// --- Response DTOs ---

// TeamMemberResponse represents a member entry of a team
type TeamMemberResponse struct {
	UserID   int64     `json:"userId"`
	Username string    `json:"username"`
	ImageURL *string   `json:"imageUrl,omitempty"`
	AddedAt  time.Time `json:"addedAt"`
}

// TeamResponse represents basic team information
type TeamResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	LeadID      int64         `json:"leadId"`
	Lead        *UserResponse `json:"lead,omitempty"`
	TeamType    string        `json:"teamType"`
	MemberLimit int           `json:"memberLimit"`
	MemberCount int           `json:"memberCount"`
	ImageURL    *string       `json:"imageUrl,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// TeamDetailResponse extends TeamResponse with member details
type TeamDetailResponse struct {
	TeamResponse
	Members []TeamMemberResponse `json:"members"`
}

// TeamListResponse represents a list of teams
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
	PaginationInfo
}

// CandidateListResponse represents users eligible to be added to a team
type CandidateListResponse struct {
	Candidates []UserResponse `json:"candidates"`
}

// FromTeamMember converts a models.TeamMember to a TeamMemberResponse
func FromTeamMember(m models.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		UserID:   m.UserID,
		Username: m.Username,
		ImageURL: m.ImageURL,
		AddedAt:  m.AddedAt,
	}
}

// FromTeamMembers converts a slice of models.TeamMember to responses
func FromTeamMembers(members []models.TeamMember) []TeamMemberResponse {
	responses := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, FromTeamMember(m))
	}
	return responses
}
