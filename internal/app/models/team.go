package models

import "time"

// Team represents a team created by a lead user
type Team struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	LeadID      int64     `json:"leadId" db:"lead_id"`
	TeamType    TeamType  `json:"teamType" db:"team_type"`
	MemberLimit int       `json:"memberLimit" db:"member_limit"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Lead    *User        `json:"lead,omitempty"`
	Members []TeamMember `json:"members,omitempty"`
}

// TeamMember is a member entry of a team. Username and image URL are a
// snapshot of the user at add time; they are not kept in sync with later
// profile changes. The user id remains the authoritative reference.
type TeamMember struct {
	ID       int64     `json:"id" db:"id"`
	TeamID   int64     `json:"teamId" db:"team_id"`
	UserID   int64     `json:"userId" db:"user_id"`
	Username string    `json:"username" db:"username"`
	ImageURL *string   `json:"imageUrl,omitempty" db:"image_url"`
	AddedAt  time.Time `json:"addedAt" db:"added_at"`
}

// HasMember reports whether the given user id is already a member entry.
func (t *Team) HasMember(userID int64) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
