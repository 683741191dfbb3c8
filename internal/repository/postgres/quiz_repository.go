package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careerCompass/domain"

	"gorm.io/gorm"
)

type QuizQuestionRepository struct {
	DB *gorm.DB
}

func NewQuizQuestionRepository(db *gorm.DB) *QuizQuestionRepository {
	return &QuizQuestionRepository{
		DB: db,
	}
}

func (r *QuizQuestionRepository) FindActive(ctx context.Context) ([]domain.QuizQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var questions []domain.QuizQuestion
	// stable base order, the service applies the per-session shuffle
	err := r.DB.WithContext(ctx).Where("is_active = ?", true).Order("id asc").Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find quiz questions: %w", err)
	}

	return questions, nil
}

func (r *QuizQuestionRepository) FindByID(ctx context.Context, id uint64) (domain.QuizQuestion, error) {
	if err := ctx.Err(); err != nil {
		return domain.QuizQuestion{}, fmt.Errorf("context error: %w", err)
	}

	var question domain.QuizQuestion
	err := r.DB.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QuizQuestion{}, errors.New("quiz question not found")
		}
		return domain.QuizQuestion{}, fmt.Errorf("failed to find quiz question: %w", err)
	}

	return question, nil
}

type QuizSessionRepository struct {
	DB *gorm.DB
}

func NewQuizSessionRepository(db *gorm.DB) *QuizSessionRepository {
	return &QuizSessionRepository{
		DB: db,
	}
}

func (r *QuizSessionRepository) Create(ctx context.Context, session *domain.QuizSession) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create quiz session: %w", err)
	}

	return nil
}

func (r *QuizSessionRepository) FindByID(ctx context.Context, id string) (domain.QuizSession, error) {
	if err := ctx.Err(); err != nil {
		return domain.QuizSession{}, fmt.Errorf("context error: %w", err)
	}

	var session domain.QuizSession
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QuizSession{}, errors.New("quiz session not found")
		}
		return domain.QuizSession{}, fmt.Errorf("failed to find quiz session: %w", err)
	}

	return session, nil
}

func (r *QuizSessionRepository) Complete(ctx context.Context, id string, overallScore float64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	now := time.Now()
	result := r.DB.WithContext(ctx).Model(&domain.QuizSession{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        domain.SessionCompleted,
			"overall_score": overallScore,
			"completed_at":  now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to complete quiz session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("quiz session not found")
	}

	return nil
}

type QuizResponseRepository struct {
	DB *gorm.DB
}

func NewQuizResponseRepository(db *gorm.DB) *QuizResponseRepository {
	return &QuizResponseRepository{
		DB: db,
	}
}

func (r *QuizResponseRepository) Create(ctx context.Context, response *domain.QuizResponse) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(response).Error; err != nil {
		return fmt.Errorf("failed to create quiz response: %w", err)
	}

	return nil
}

func (r *QuizResponseRepository) FindBySession(ctx context.Context, sessionID string) ([]domain.QuizResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var responses []domain.QuizResponse
	err := r.DB.WithContext(ctx).Where("session_id = ?", sessionID).Order("id asc").Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find quiz responses: %w", err)
	}

	return responses, nil
}
