// Package auth implements the membership and access model: who leads a team,
// who may be added to it, and which actions each role is allowed to perform.
package auth

import (
	"github.com/selimk/teamhub/internal/app/models"
)

// IsTeamLead reports whether the user is the lead of the team. This single
// comparison is the sole authorization primitive of the system; every gated
// action (adding members, posting questions, submitting answers) derives
// from it.
func IsTeamLead(user *models.User, team *models.Team) bool {
	return user != nil && team != nil && LeadsTeam(user.ID, team)
}

// LeadsTeam is the id-keyed form of IsTeamLead, for callers that only carry
// the authenticated user id.
func LeadsTeam(userID int64, team *models.Team) bool {
	return team != nil && userID == team.LeadID
}

// EligibleCandidates filters the given users down to those who may be added
// to the team: their designation must be accepted by the team's type, they
// must not be the team lead, and they must not already be a member. Input
// order is preserved and the result contains no duplicates.
func EligibleCandidates(users []models.User, team *models.Team, members []models.TeamMember) []models.User {
	if team == nil {
		return nil
	}

	present := make(map[int64]bool, len(members))
	for _, m := range members {
		present[m.UserID] = true
	}

	var eligible []models.User
	seen := make(map[int64]bool, len(users))
	for _, u := range users {
		if seen[u.ID] {
			continue
		}
		seen[u.ID] = true

		if u.ID == team.LeadID {
			continue
		}
		if present[u.ID] {
			continue
		}
		if !team.TeamType.Accepts(u.Designation) {
			continue
		}
		eligible = append(eligible, u)
	}
	return eligible
}

// CanPostQuestion reports whether the user may post a question under the
// team. Only the lead may post.
func CanPostQuestion(user *models.User, team *models.Team) bool {
	return IsTeamLead(user, team)
}

// CanAnswer reports whether the user may submit an answer to a question of
// the team. The lead is excluded; callers must additionally verify team
// membership against the store.
func CanAnswer(user *models.User, team *models.Team) bool {
	return user != nil && team != nil && !IsTeamLead(user, team)
}
