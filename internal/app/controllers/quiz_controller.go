package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/app/services"
	"github.com/ethos-training/ethos/internal/middleware"
)

// QuizController handles quiz retrieval and submission
type QuizController struct {
	quizService *services.QuizService
	logger      zerolog.Logger
}

// NewQuizController creates a new QuizController
func NewQuizController(quizService *services.QuizService, logger zerolog.Logger) *QuizController {
	return &QuizController{
		quizService: quizService,
		logger:      logger,
	}
}

// GetQuiz returns the quiz for a module
// @Summary Get a module's quiz
// @Description Returns the quiz with questions. Correct answers and explanations are not included.
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module ID" format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.QuizResponse}
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 404 {object} dto.APIResponse "Module or quiz not found"
// @Router /modules/{id}/quiz [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	moduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Training module not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	quiz, err := c.quizService.GetQuizForModule(ctx.Request.Context(), moduleID, middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromQuiz(quiz), ""))
}

// SubmitQuiz grades a quiz submission
// @Summary Submit quiz answers
// @Description Grades the submission server-side and returns per-question feedback. Submitting does not change module progress.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module ID" format(uuid)
// @Param request body dto.SubmitQuizRequest true "Selected answers"
// @Success 200 {object} dto.APIResponse{data=dto.QuizResultResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request payload"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 404 {object} dto.APIResponse "Module or quiz not found"
// @Router /modules/{id}/quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	moduleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Training module not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("Invalid request format", dto.HandleValidationError(err)))
		return
	}

	result, err := c.quizService.SubmitQuiz(ctx.Request.Context(), moduleID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	userID := ctx.GetInt64(middleware.ContextUserIDKey)
	c.logger.Info().
		Int64("userId", userID).
		Str("moduleId", moduleID.String()).
		Int("score", result.Score).
		Bool("passed", result.Passed).
		Msg("Quiz submitted")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, ""))
}
