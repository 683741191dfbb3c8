package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careerCompass/domain"

	"gorm.io/gorm"
)

type CollegeRepository struct {
	DB *gorm.DB
}

func NewCollegeRepository(db *gorm.DB) *CollegeRepository {
	return &CollegeRepository{
		DB: db,
	}
}

func (r *CollegeRepository) Create(ctx context.Context, college *domain.College) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(college).Error; err != nil {
		return fmt.Errorf("failed to create college: %w", err)
	}

	return nil
}

func (r *CollegeRepository) FindByID(ctx context.Context, id uint64) (domain.College, error) {
	if err := ctx.Err(); err != nil {
		return domain.College{}, fmt.Errorf("context error: %w", err)
	}

	var college domain.College
	err := r.DB.WithContext(ctx).First(&college, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.College{}, errors.New("college not found")
		}
		return domain.College{}, fmt.Errorf("failed to find college: %w", err)
	}

	return college, nil
}

func (r *CollegeRepository) FindAll(ctx context.Context) ([]domain.College, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var colleges []domain.College
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&colleges).Error; err != nil {
		return nil, fmt.Errorf("failed to find colleges: %w", err)
	}

	return colleges, nil
}

func (r *CollegeRepository) Update(ctx context.Context, college *domain.College) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.College{}).
		Where("id = ?", college.ID).
		Updates(map[string]interface{}{
			"name":       college.Name,
			"location":   college.Location,
			"courses":    college.Courses,
			"website":    college.Website,
			"is_active":  college.IsActive,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update college: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("college not found")
	}

	return nil
}

func (r *CollegeRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.College{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete college: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("college not found")
	}

	return nil
}

func (r *CollegeRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	if err := r.DB.WithContext(ctx).Model(&domain.College{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count colleges: %w", err)
	}

	return count, nil
}

// TouchAll bumps updated_at on every college row so downstream caches see a
// fresh dataset after a maintenance pass.
func (r *CollegeRepository) TouchAll(ctx context.Context, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Model(&domain.College{}).
		Where("1 = 1").
		Update("updated_at", now).Error
	if err != nil {
		return fmt.Errorf("failed to touch colleges: %w", err)
	}

	return nil
}
