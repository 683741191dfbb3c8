package quiz

import (
	"context"
	"errors"
	"fmt"

	"careerCompass/domain"
	"careerCompass/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrSessionNotOwned  = errors.New("quiz session does not belong to user")
	ErrSessionCompleted = errors.New("quiz session already completed")
)

// QuestionRepository contract interface
type QuestionRepository interface {
	FindActive(ctx context.Context) ([]domain.QuizQuestion, error)
	FindByID(ctx context.Context, id uint64) (domain.QuizQuestion, error)
}

// SessionRepository contract interface
type SessionRepository interface {
	Create(ctx context.Context, session *domain.QuizSession) error
	FindByID(ctx context.Context, id string) (domain.QuizSession, error)
}

// ResponseRepository contract interface
type ResponseRepository interface {
	Create(ctx context.Context, response *domain.QuizResponse) error
	FindBySession(ctx context.Context, sessionID string) ([]domain.QuizResponse, error)
}

type Service struct {
	questionRepo QuestionRepository
	sessionRepo  SessionRepository
	responseRepo ResponseRepository
}

func NewService(questionRepo QuestionRepository, sessionRepo SessionRepository, responseRepo ResponseRepository) *Service {
	return &Service{
		questionRepo: questionRepo,
		sessionRepo:  sessionRepo,
		responseRepo: responseRepo,
	}
}

// StartSession opens a new quiz session for the user.
func (s *Service) StartSession(ctx context.Context, userID uint) (domain.QuizSession, error) {
	if err := ctx.Err(); err != nil {
		return domain.QuizSession{}, fmt.Errorf("context error: %w", err)
	}

	session := domain.QuizSession{
		ID:     uuid.NewString(),
		UserID: userID,
		Status: domain.SessionInProgress,
	}

	if err := s.sessionRepo.Create(ctx, &session); err != nil {
		logger.Error("Failed to create quiz session", err)
		return domain.QuizSession{}, err
	}

	return session, nil
}

// Questions returns the active question set in the session's deterministic
// order. Re-fetching the same session yields the same order.
func (s *Service) Questions(ctx context.Context, userID uint, sessionID string) ([]domain.QuizQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		logger.Error("Quiz session not found", err)
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionNotOwned
	}

	questions, err := s.questionRepo.FindActive(ctx)
	if err != nil {
		logger.Error("Failed to load quiz questions", err)
		return nil, err
	}

	return shuffleQuestions(questions, sessionSeed(sessionID, userID)), nil
}

// RecordResponse grades one answer against the stored question and appends it
// to the session. Responses are immutable once the session completes.
func (s *Service) RecordResponse(ctx context.Context, userID uint, sessionID string, questionID uint64, selectedOption string) (domain.QuizResponse, error) {
	if err := ctx.Err(); err != nil {
		return domain.QuizResponse{}, fmt.Errorf("context error: %w", err)
	}

	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		logger.Error("Quiz session not found", err)
		return domain.QuizResponse{}, err
	}
	if session.UserID != userID {
		return domain.QuizResponse{}, ErrSessionNotOwned
	}
	if session.Status == domain.SessionCompleted {
		return domain.QuizResponse{}, ErrSessionCompleted
	}

	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		logger.Error("Quiz question not found", err)
		return domain.QuizResponse{}, err
	}

	response := domain.QuizResponse{
		SessionID:      sessionID,
		QuestionID:     question.ID,
		Category:       question.Category,
		SelectedOption: selectedOption,
		IsCorrect:      selectedOption == question.CorrectOption,
	}

	if err := s.responseRepo.Create(ctx, &response); err != nil {
		logger.Error("Failed to store quiz response", err)
		return domain.QuizResponse{}, err
	}

	return response, nil
}

// Responses lists a session's stored responses.
func (s *Service) Responses(ctx context.Context, userID uint, sessionID string) ([]domain.QuizResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionNotOwned
	}

	return s.responseRepo.FindBySession(ctx, sessionID)
}
