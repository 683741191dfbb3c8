package postgres

import (
	"context"
	"fmt"

	"careerCompass/domain"

	"gorm.io/gorm"
)

// ContentRepository aggregates catalog counts for the training pipeline.
type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{
		DB: db,
	}
}

func (r *ContentRepository) CountColleges(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	if err := r.DB.WithContext(ctx).Model(&domain.College{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count colleges: %w", err)
	}

	return count, nil
}

func (r *ContentRepository) CountScholarships(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	if err := r.DB.WithContext(ctx).Model(&domain.Scholarship{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count scholarships: %w", err)
	}

	return count, nil
}

func (r *ContentRepository) CountActiveJobs(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.JobPosting{}).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active jobs: %w", err)
	}

	return count, nil
}
