package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"careerCompass/business/recommend"
	"careerCompass/domain"
	"careerCompass/internal/repository/aigateway"
	"careerCompass/pkg/logger"
	"careerCompass/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type RecommendationService interface {
	GenerateForSession(ctx context.Context, userID uint, sessionID string, responses []domain.QuizResponse) ([]domain.CategoryScore, []recommend.PersistedRecommendation, error)
	DescribeCareer(ctx context.Context, careerTitle, category string) (string, error)
	History(ctx context.Context, userID uint) ([]domain.Recommendation, error)
}

type RecommendationHandler struct {
	recommendationService RecommendationService
	validator             *validator.Validate
	timeout               time.Duration
}

func NewRecommendationHandler(recommendationService RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		validator:             validator.New(),
		// generation calls the upstream model, so the budget is wider than
		// the usual handler timeout
		timeout: 60 * time.Second,
	}
}

type QuizResponseInput struct {
	QuestionID     uint64 `json:"question_id"`
	Category       string `json:"category" validate:"required"`
	SelectedOption string `json:"selected_option,omitempty"`
	IsCorrect      bool   `json:"isCorrect"`
}

type GenerateCareerRequest struct {
	QuizSessionID string              `json:"quizSessionId" validate:"required"`
	Responses     []QuizResponseInput `json:"responses" validate:"required,min=1,dive"`
}

type CareerDescriptionRequest struct {
	CareerTitle string `json:"career_title" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

// aiErrorMessage maps upstream provider failures to the fixed strings shown
// to end users. Technical detail stays in the logs.
func aiErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, aigateway.ErrRateLimited):
		return "Rate limit exceeded, please try again later", true
	case errors.Is(err, aigateway.ErrQuotaExceeded):
		return "Service unavailable, contact support", true
	case errors.Is(err, aigateway.ErrNoResult):
		return "No result produced", true
	case errors.Is(err, aigateway.ErrGenerationFailed):
		return "Failed to generate recommendations", true
	}
	return "", false
}

func (h *RecommendationHandler) GenerateCareerRecommendations(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req GenerateCareerRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate career recommendation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	responses := make([]domain.QuizResponse, 0, len(req.Responses))
	for _, in := range req.Responses {
		responses = append(responses, domain.QuizResponse{
			SessionID:      req.QuizSessionID,
			QuestionID:     in.QuestionID,
			Category:       in.Category,
			SelectedOption: in.SelectedOption,
			IsCorrect:      in.IsCorrect,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	metrics.RecommendationRequests.Inc()
	start := time.Now()
	scores, recommendations, err := h.recommendationService.GenerateForSession(ctx, userID, req.QuizSessionID, responses)
	metrics.RecommendationLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Error("Failed to generate career recommendations", err)
		if msg, ok := aiErrorMessage(err); ok {
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: msg})
		}
		switch {
		case errors.Is(err, recommend.ErrNoResponses),
			errors.Is(err, recommend.ErrNoScorableProfile):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		case err.Error() == "quiz session not found":
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		case err.Error() == "quiz session does not belong to user":
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":         "career recommendations generated",
		"profile":         scores,
		"recommendations": recommendations,
	})
}

func (h *RecommendationHandler) CareerDescription(c echo.Context) error {
	var req CareerDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate career description request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	description, err := h.recommendationService.DescribeCareer(ctx, req.CareerTitle, req.Category)
	if err != nil {
		logger.Error("Failed to describe career", err)
		if msg, ok := aiErrorMessage(err); ok {
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: msg})
		}
		if errors.Is(err, recommend.ErrInvalidTitle) || errors.Is(err, recommend.ErrInvalidCategory) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "career description generated",
		"description": description,
	})
}

func (h *RecommendationHandler) History(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	recommendations, err := h.recommendationService.History(ctx, userID)
	if err != nil {
		logger.Error("Failed to find recommendation history", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":         "successfully get recommendation history",
		"recommendations": recommendations,
	})
}
