package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"careerCompass/business/quiz"
	"careerCompass/domain"
	"careerCompass/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type QuizService interface {
	StartSession(ctx context.Context, userID uint) (domain.QuizSession, error)
	Questions(ctx context.Context, userID uint, sessionID string) ([]domain.QuizQuestion, error)
	RecordResponse(ctx context.Context, userID uint, sessionID string, questionID uint64, selectedOption string) (domain.QuizResponse, error)
	Responses(ctx context.Context, userID uint, sessionID string) ([]domain.QuizResponse, error)
}

type QuizHandler struct {
	quizService QuizService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewQuizHandler(quizService QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type RecordResponseRequest struct {
	QuestionID     uint64 `json:"question_id" validate:"required"`
	SelectedOption string `json:"selected_option" validate:"required"`
}

func (h *QuizHandler) StartSession(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	session, err := h.quizService.StartSession(ctx, userID)
	if err != nil {
		logger.Error("Failed to start quiz session", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "quiz session started",
		"session": session,
	})
}

// Questions returns the active question set in the session's deterministic
// shuffle order.
func (h *QuizHandler) Questions(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	sessionID := c.Param("id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "session id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	questions, err := h.quizService.Questions(ctx, userID, sessionID)
	if err != nil {
		logger.Error("Failed to get quiz questions", err)
		if errors.Is(err, quiz.ErrSessionNotOwned) {
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		}
		if err.Error() == "quiz session not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully get questions",
		"questions": questions,
	})
}

func (h *QuizHandler) RecordResponse(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	sessionID := c.Param("id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "session id is required"})
	}

	var req RecordResponseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate quiz response", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	response, err := h.quizService.RecordResponse(ctx, userID, sessionID, req.QuestionID, req.SelectedOption)
	if err != nil {
		logger.Error("Failed to record quiz response", err)
		switch {
		case errors.Is(err, quiz.ErrSessionNotOwned):
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		case errors.Is(err, quiz.ErrSessionCompleted):
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		case err.Error() == "quiz session not found" || err.Error() == "quiz question not found":
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "response recorded",
		"response": response,
	})
}

func (h *QuizHandler) Responses(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	sessionID := c.Param("id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "session id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	responses, err := h.quizService.Responses(ctx, userID, sessionID)
	if err != nil {
		logger.Error("Failed to get quiz responses", err)
		if errors.Is(err, quiz.ErrSessionNotOwned) {
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		}
		if err.Error() == "quiz session not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully get responses",
		"responses": responses,
	})
}
