package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/selimk/teamhub/internal/app/models/dto"
	"github.com/selimk/teamhub/internal/app/services"
	"github.com/selimk/teamhub/internal/middleware"
	"github.com/selimk/teamhub/internal/pkg/apperrors"
	"github.com/selimk/teamhub/internal/pkg/helpers"
)

// TeamController handles team related operations
type TeamController struct {
	teamService services.TeamService
	logger      zerolog.Logger
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService services.TeamService, logger zerolog.Logger) *TeamController {
	return &TeamController{
		teamService: teamService,
		logger:      logger,
	}
}

// CreateTeam creates a new team led by the caller
// @Summary Create a team
// @Description Creates a team with the caller as lead. The lead is not a member.
// @Tags teams
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Team name"
// @Param description formData string true "Team description"
// @Param teamType formData string true "Team type"
// @Param memberLimit formData int true "Maximum number of members"
// @Param image formData file false "Team image"
// @Success 201 {object} dto.APIResponse{data=dto.TeamResponse} "Team created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or team type"
// @Router /teams [post]
func (c *TeamController) CreateTeam(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateTeamRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid team creation payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	image, err := ctx.FormFile("image")
	if err != nil && err != http.ErrMissingFile {
		image = nil
	}

	team, err := c.teamService.CreateTeam(ctx.Request.Context(), userID, &req, image)
	if err != nil {
		c.logger.Error().Err(err).Int64("leadID", userID).Msg("Failed to create team")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("teamID", team.ID).Int64("leadID", userID).Msg("Team created")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(team))
}

// GetTeams lists teams
// @Summary List teams
// @Description Returns teams with pagination, newest first
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.TeamListResponse} "Teams"
// @Router /teams [get]
func (c *TeamController) GetTeams(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	teams, err := c.teamService.GetTeams(ctx.Request.Context(), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teams))
}

// GetTeamByID returns a single team with its members
// @Summary Get team details
// @Description Returns a team, its lead and its member entries
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} dto.APIResponse{data=dto.TeamDetailResponse} "Team"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (c *TeamController) GetTeamByID(ctx *gin.Context) {
	teamID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	team, err := c.teamService.GetTeamByID(ctx.Request.Context(), teamID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(team))
}

// GetCandidates lists users eligible to join the team
// @Summary List member candidates
// @Description Returns users whose designation fits the team type and who are not already the lead or a member. Lead only.
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} dto.APIResponse{data=dto.CandidateListResponse} "Candidates"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the team lead"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id}/candidates [get]
func (c *TeamController) GetCandidates(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	teamID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	candidates, err := c.teamService.GetCandidates(ctx.Request.Context(), teamID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(candidates))
}

// AddMember adds an eligible user to the team
// @Summary Add a team member
// @Description Adds a user to the team. Lead only. Fails when the team is full, the user is already a member or the user's designation does not fit.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param request body dto.AddMemberRequest true "User to add"
// @Success 201 {object} dto.APIResponse{data=dto.TeamMemberResponse} "Member added"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the team lead"
// @Failure 404 {object} dto.ErrorResponse "Team or user not found"
// @Failure 409 {object} dto.ErrorResponse "Team full, already a member or not eligible"
// @Router /teams/{id}/members [post]
func (c *TeamController) AddMember(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	teamID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.AddMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	member, err := c.teamService.AddMember(ctx.Request.Context(), teamID, userID, req.UserID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("teamID", teamID).Int64("userID", req.UserID).Msg("Failed to add member")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("teamID", teamID).Int64("userID", req.UserID).Msg("Member added to team")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(member))
}

// parseIDParam parses a positive int64 path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("invalid %s parameter", name))
	}
	return id, nil
}
