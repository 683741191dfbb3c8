package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"careerCompass/business/feedback"
	"careerCompass/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type FeedbackService interface {
	Submit(ctx context.Context, userID uint, recType string, recID uint64, feedbackType string, data map[string]interface{}) error
	Get(ctx context.Context, userID uint, recType string, recID uint64) (string, error)
}

type FeedbackHandler struct {
	feedbackService FeedbackService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewFeedbackHandler(feedbackService FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type SubmitFeedbackRequest struct {
	RecommendationType string                 `json:"recommendation_type" validate:"required,oneof=career college scholarship job"`
	RecommendationID   uint64                 `json:"recommendation_id" validate:"required"`
	FeedbackType       string                 `json:"feedback_type" validate:"required"`
	FeedbackData       map[string]interface{} `json:"feedback_data,omitempty"`
}

// Submit upserts the user's feedback for one recommended item. Resubmitting
// the same tuple overwrites the previous feedback.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req SubmitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate feedback request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err := h.feedbackService.Submit(ctx, userID, req.RecommendationType, req.RecommendationID, req.FeedbackType, req.FeedbackData)
	if err != nil {
		logger.Error("Failed to submit feedback", err)
		if errors.Is(err, feedback.ErrUnknownFeedbackType) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "feedback recorded",
	})
}

// Get returns the user's current feedback type for an item, "none" when no
// feedback has been submitted.
func (h *FeedbackHandler) Get(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	recType := c.QueryParam("recommendation_type")
	if recType == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "recommendation_type is required"})
	}

	recID, err := strconv.ParseUint(c.QueryParam("recommendation_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid recommendation_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	feedbackType, err := h.feedbackService.Get(ctx, userID, recType, recID)
	if err != nil {
		logger.Error("Failed to get feedback", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"feedback_type": feedbackType,
	})
}
