package postgres

import (
	"context"
	"fmt"

	"careerCompass/domain"

	"gorm.io/gorm"
)

// PerformanceRepository reads the recommendation_performance aggregate table.
// Rows are maintained by the feedback pipeline; this repository is read-only.
type PerformanceRepository struct {
	DB *gorm.DB
}

func NewPerformanceRepository(db *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{
		DB: db,
	}
}

func (r *PerformanceRepository) FindAll(ctx context.Context) ([]domain.PerformanceAggregate, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var aggregates []domain.PerformanceAggregate
	if err := r.DB.WithContext(ctx).Find(&aggregates).Error; err != nil {
		return nil, fmt.Errorf("failed to find performance aggregates: %w", err)
	}

	return aggregates, nil
}
