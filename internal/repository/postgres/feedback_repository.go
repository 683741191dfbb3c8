package postgres

import (
	"context"
	"errors"
	"fmt"

	"careerCompass/domain"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		DB: db,
	}
}

func (r *FeedbackRepository) FindByTuple(ctx context.Context, userID uint, recType string, recID uint64) (domain.FeedbackRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.FeedbackRecord{}, false, fmt.Errorf("context error: %w", err)
	}

	var record domain.FeedbackRecord
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND recommendation_type = ? AND recommendation_id = ?", userID, recType, recID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FeedbackRecord{}, false, nil
		}
		return domain.FeedbackRecord{}, false, fmt.Errorf("failed to find feedback: %w", err)
	}

	return record, true, nil
}

func (r *FeedbackRepository) Create(ctx context.Context, record *domain.FeedbackRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	return nil
}

func (r *FeedbackRepository) Update(ctx context.Context, record *domain.FeedbackRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}

	return nil
}

func (r *FeedbackRepository) FindAll(ctx context.Context) ([]domain.FeedbackRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var records []domain.FeedbackRecord
	if err := r.DB.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to find feedback records: %w", err)
	}

	return records, nil
}
