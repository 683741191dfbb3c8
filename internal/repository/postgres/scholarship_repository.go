package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careerCompass/domain"

	"gorm.io/gorm"
)

type ScholarshipRepository struct {
	DB *gorm.DB
}

func NewScholarshipRepository(db *gorm.DB) *ScholarshipRepository {
	return &ScholarshipRepository{
		DB: db,
	}
}

func (r *ScholarshipRepository) Create(ctx context.Context, scholarship *domain.Scholarship) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(scholarship).Error; err != nil {
		return fmt.Errorf("failed to create scholarship: %w", err)
	}

	return nil
}

func (r *ScholarshipRepository) FindByID(ctx context.Context, id uint64) (domain.Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return domain.Scholarship{}, fmt.Errorf("context error: %w", err)
	}

	var scholarship domain.Scholarship
	err := r.DB.WithContext(ctx).First(&scholarship, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Scholarship{}, errors.New("scholarship not found")
		}
		return domain.Scholarship{}, fmt.Errorf("failed to find scholarship: %w", err)
	}

	return scholarship, nil
}

func (r *ScholarshipRepository) FindAll(ctx context.Context, activeOnly bool) ([]domain.Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).Order("deadline ASC NULLS LAST")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var scholarships []domain.Scholarship
	if err := query.Find(&scholarships).Error; err != nil {
		return nil, fmt.Errorf("failed to find scholarships: %w", err)
	}

	return scholarships, nil
}

func (r *ScholarshipRepository) Update(ctx context.Context, scholarship *domain.Scholarship) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Scholarship{}).
		Where("id = ?", scholarship.ID).
		Updates(map[string]interface{}{
			"name":        scholarship.Name,
			"provider":    scholarship.Provider,
			"amount":      scholarship.Amount,
			"eligibility": scholarship.Eligibility,
			"deadline":    scholarship.Deadline,
			"is_active":   scholarship.IsActive,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update scholarship: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("scholarship not found")
	}

	return nil
}

func (r *ScholarshipRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Scholarship{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete scholarship: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("scholarship not found")
	}

	return nil
}

// CloseExpired deactivates scholarships whose deadline has passed. Rows with a
// NULL deadline never expire.
func (r *ScholarshipRepository) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Scholarship{}).
		Where("is_active = ? AND deadline IS NOT NULL AND deadline < ?", true, now).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to close expired scholarships: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *ScholarshipRepository) CountActive(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.Scholarship{}).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count scholarships: %w", err)
	}

	return count, nil
}
