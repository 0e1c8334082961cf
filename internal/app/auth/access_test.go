package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/selimk/teamhub/internal/app/models"
)

func testTeam() *models.Team {
	return &models.Team{
		ID:          1,
		LeadID:      1,
		TeamType:    models.TeamTypeBackend,
		MemberLimit: 5,
	}
}

func TestIsTeamLead(t *testing.T) {
	team := testTeam()

	assert.True(t, IsTeamLead(&models.User{ID: 1}, team))
	assert.False(t, IsTeamLead(&models.User{ID: 2}, team))
	assert.False(t, IsTeamLead(nil, team))
	assert.False(t, IsTeamLead(&models.User{ID: 1}, nil))
}

func TestLeadsTeam(t *testing.T) {
	team := testTeam()

	assert.True(t, LeadsTeam(1, team))
	assert.False(t, LeadsTeam(2, team))
	assert.False(t, LeadsTeam(1, nil))
}

func TestEligibleCandidates(t *testing.T) {
	team := testTeam()
	members := []models.TeamMember{
		{TeamID: 1, UserID: 3},
	}
	users := []models.User{
		{ID: 1, Username: "lead", Designation: models.DesignationBackend},
		{ID: 2, Username: "dev-a", Designation: models.DesignationBackend},
		{ID: 3, Username: "dev-b", Designation: models.DesignationBackend},
		{ID: 4, Username: "sales", Designation: models.DesignationSalesman},
		{ID: 5, Username: "dev-c", Designation: models.DesignationBackend},
	}

	got := EligibleCandidates(users, team, members)

	// The lead, the existing member and the mismatched designation are all
	// excluded; input order is preserved.
	if assert.Len(t, got, 2) {
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(5), got[1].ID)
	}
}

func TestEligibleCandidates_Duplicates(t *testing.T) {
	team := testTeam()
	users := []models.User{
		{ID: 2, Username: "dev-a", Designation: models.DesignationBackend},
		{ID: 2, Username: "dev-a", Designation: models.DesignationBackend},
	}

	got := EligibleCandidates(users, team, nil)
	assert.Len(t, got, 1)
}

func TestEligibleCandidates_NilTeam(t *testing.T) {
	users := []models.User{{ID: 2, Designation: models.DesignationBackend}}
	assert.Nil(t, EligibleCandidates(users, nil, nil))
}

func TestEligibleCandidates_FullStackUnion(t *testing.T) {
	team := &models.Team{ID: 2, LeadID: 1, TeamType: models.TeamTypeFullStack}
	users := []models.User{
		{ID: 2, Designation: models.DesignationFrontend},
		{ID: 3, Designation: models.DesignationBackend},
		{ID: 4, Designation: models.DesignationFullStack},
		{ID: 5, Designation: models.DesignationUIUX},
		{ID: 6, Designation: models.DesignationSalesman},
		{ID: 7, Designation: models.DesignationMarketer},
	}

	got := EligibleCandidates(users, team, nil)

	ids := make([]int64, 0, len(got))
	for _, u := range got {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []int64{2, 3, 4, 5}, ids)
}

func TestCanPostQuestion(t *testing.T) {
	team := testTeam()

	assert.True(t, CanPostQuestion(&models.User{ID: 1}, team))
	assert.False(t, CanPostQuestion(&models.User{ID: 2}, team))
}

func TestCanAnswer(t *testing.T) {
	team := testTeam()

	assert.False(t, CanAnswer(&models.User{ID: 1}, team), "the lead cannot answer")
	assert.True(t, CanAnswer(&models.User{ID: 2}, team))
	assert.False(t, CanAnswer(nil, team))
}
