package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/selimk/teamhub/internal/app/models/dto"
	"github.com/selimk/teamhub/internal/app/services"
	"github.com/selimk/teamhub/internal/middleware"
)

// QuestionController handles daily question operations
type QuestionController struct {
	questionService services.QuestionService
	logger          zerolog.Logger
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService services.QuestionService, logger zerolog.Logger) *QuestionController {
	return &QuestionController{
		questionService: questionService,
		logger:          logger,
	}
}

// CreateQuestion posts a daily question to the team
// @Summary Post a question
// @Description Posts a new question under the team. Lead only.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param request body dto.CreateQuestionRequest true "Question body"
// @Success 201 {object} dto.APIResponse{data=dto.QuestionResponse} "Question posted"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the team lead"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id}/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
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

	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	question, err := c.questionService.CreateQuestion(ctx.Request.Context(), teamID, userID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("teamID", teamID).Msg("Failed to post question")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(question))
}

// ListQuestions lists the questions of a team
// @Summary List questions
// @Description Returns the questions of the team, newest first. Lead and members only.
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Success 200 {object} dto.APIResponse{data=dto.QuestionListResponse} "Questions"
// @Failure 403 {object} dto.ErrorResponse "Caller is neither the lead nor a member"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{id}/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
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

	questions, err := c.questionService.ListQuestions(ctx.Request.Context(), teamID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(questions))
}

// SubmitAnswer submits an answer to a question
// @Summary Submit an answer
// @Description Appends the caller's answer to the question. Members only, the lead cannot answer.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param questionId path int true "Question ID"
// @Param request body dto.SubmitAnswerRequest true "Answer body"
// @Success 201 {object} dto.APIResponse{data=dto.AnswerResponse} "Answer submitted"
// @Failure 403 {object} dto.ErrorResponse "Caller is the lead or not a member"
// @Failure 404 {object} dto.ErrorResponse "Team or question not found"
// @Router /teams/{id}/questions/{questionId}/answers [post]
func (c *QuestionController) SubmitAnswer(ctx *gin.Context) {
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

	questionID, err := parseIDParam(ctx, "questionId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	answer, err := c.questionService.SubmitAnswer(ctx.Request.Context(), teamID, questionID, userID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("questionID", questionID).Msg("Failed to submit answer")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(answer))
}

// ListAnswers lists the answers of a question
// @Summary List answers
// @Description Returns the answers of the question, oldest first. Lead and members only.
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team ID"
// @Param questionId path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.AnswerListResponse} "Answers"
// @Failure 403 {object} dto.ErrorResponse "Caller is neither the lead nor a member"
// @Failure 404 {object} dto.ErrorResponse "Team or question not found"
// @Router /teams/{id}/questions/{questionId}/answers [get]
func (c *QuestionController) ListAnswers(ctx *gin.Context) {
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

	questionID, err := parseIDParam(ctx, "questionId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	answers, err := c.questionService.ListAnswers(ctx.Request.Context(), teamID, questionID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(answers))
}
