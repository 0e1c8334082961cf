package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/selimk/teamhub/internal/app/auth"
	"github.com/selimk/teamhub/internal/app/models"
	"github.com/selimk/teamhub/internal/app/models/dto"
	"github.com/selimk/teamhub/internal/pkg/apperrors"
	"github.com/selimk/teamhub/internal/pkg/filestorage"
	"github.com/selimk/teamhub/internal/pkg/helpers"
)

// teamImageDir is the storage subdirectory for team images.
const teamImageDir = "teams"

// TeamService defines the interface for team operations
type TeamService interface {
	CreateTeam(ctx context.Context, leadID int64, req *dto.CreateTeamRequest, image *multipart.FileHeader) (*dto.TeamResponse, error)
	GetTeams(ctx context.Context, page, pageSize int) (*dto.TeamListResponse, error)
	GetTeamByID(ctx context.Context, id int64) (*dto.TeamDetailResponse, error)
	GetCandidates(ctx context.Context, teamID, callerID int64) (*dto.CandidateListResponse, error)
	AddMember(ctx context.Context, teamID, callerID, userID int64) (*dto.TeamMemberResponse, error)
}

// teamServiceImpl implements TeamService
type teamServiceImpl struct {
	teamStore   TeamStore
	userStore   UserStore
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewTeamService creates a new TeamService
func NewTeamService(
	teamStore TeamStore,
	userStore UserStore,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) TeamService {
	return &teamServiceImpl{
		teamStore:   teamStore,
		userStore:   userStore,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// CreateTeam creates a new team. The creator becomes the team lead and is
// never listed among the members.
func (s *teamServiceImpl) CreateTeam(ctx context.Context, leadID int64, req *dto.CreateTeamRequest, image *multipart.FileHeader) (*dto.TeamResponse, error) {
	if !req.TeamType.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("unknown team type %q", req.TeamType))
	}

	lead, err := s.userStore.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	var imageURL *string
	if image != nil {
		url, err := s.fileStorage.SaveFileWithPath(image, teamImageDir)
		if err != nil {
			s.logger.Error().Err(err).Int64("leadID", leadID).Msg("Failed to store team image")
			return nil, fmt.Errorf("failed to store team image: %w", err)
		}
		imageURL = &url
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		LeadID:      leadID,
		TeamType:    req.TeamType,
		MemberLimit: req.MemberLimit,
		ImageURL:    imageURL,
	}

	id, err := s.teamStore.Create(ctx, team)
	if err != nil {
		s.logger.Error().Err(err).Int64("leadID", leadID).Msg("Failed to create team")
		return nil, err
	}
	team.ID = id

	s.logger.Info().Int64("teamID", id).Int64("leadID", leadID).Str("teamType", string(team.TeamType)).Msg("Team created")

	resp := s.toTeamResponse(team, 0)
	leadResp := dto.FromUser(lead)
	resp.Lead = &leadResp
	return &resp, nil
}

// GetTeams retrieves teams with pagination
func (s *teamServiceImpl) GetTeams(ctx context.Context, page, pageSize int) (*dto.TeamListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	teams, total, err := s.teamStore.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		count, err := s.teamStore.MemberCount(ctx, teams[i].ID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("teamID", teams[i].ID).Msg("Failed to count members")
			count = 0
		}
		responses = append(responses, s.toTeamResponse(&teams[i], count))
	}

	return &dto.TeamListResponse{
		Teams:          responses,
		PaginationInfo: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// GetTeamByID retrieves a team with its lead and member entries
func (s *teamServiceImpl) GetTeamByID(ctx context.Context, id int64) (*dto.TeamDetailResponse, error) {
	team, err := s.teamStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.teamStore.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.TeamDetailResponse{
		TeamResponse: s.toTeamResponse(team, len(members)),
		Members:      dto.FromTeamMembers(members),
	}

	lead, err := s.userStore.FindByID(ctx, team.LeadID)
	if err == nil {
		leadResp := dto.FromUser(lead)
		resp.Lead = &leadResp
	}

	return &resp, nil
}

// GetCandidates lists the users eligible to be added to the team. Only the
// team lead may ask for this list.
func (s *teamServiceImpl) GetCandidates(ctx context.Context, teamID, callerID int64) (*dto.CandidateListResponse, error) {
	team, err := s.teamStore.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if !auth.LeadsTeam(callerID, team) {
		return nil, apperrors.NewForbiddenError("only the team lead can view candidates")
	}

	candidates, err := s.userStore.EligibleForTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	return &dto.CandidateListResponse{Candidates: dto.FromUsers(candidates)}, nil
}

// AddMember appends a user to the team as a member snapshot. Only the lead
// may add; the candidate must be eligible; the member limit is re-validated
// atomically at commit time by the store.
func (s *teamServiceImpl) AddMember(ctx context.Context, teamID, callerID, userID int64) (*dto.TeamMemberResponse, error) {
	team, err := s.teamStore.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if !auth.LeadsTeam(callerID, team) {
		return nil, apperrors.NewForbiddenError("only the team lead can add members")
	}

	candidate, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if candidate.ID == team.LeadID {
		return nil, apperrors.ErrNotEligible
	}
	if !team.TeamType.Accepts(candidate.Designation) {
		return nil, apperrors.ErrNotEligible
	}

	member := models.TeamMember{
		TeamID:   teamID,
		UserID:   candidate.ID,
		Username: candidate.Username,
		ImageURL: candidate.ImageURL,
	}

	// The store locks the team row and re-checks capacity at commit time,
	// so concurrent adds from separate sessions cannot exceed the limit.
	if err := s.teamStore.AddMember(ctx, teamID, member); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("teamID", teamID).Int64("userID", userID).Msg("Member added to team")

	resp := dto.FromTeamMember(member)
	return &resp, nil
}

func (s *teamServiceImpl) toTeamResponse(team *models.Team, memberCount int) dto.TeamResponse {
	return dto.TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		LeadID:      team.LeadID,
		TeamType:    string(team.TeamType),
		MemberLimit: team.MemberLimit,
		MemberCount: memberCount,
		ImageURL:    team.ImageURL,
		CreatedAt:   team.CreatedAt,
	}
}
