package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careerCompass/business/recommend"
	"careerCompass/domain"

	"gorm.io/gorm"
)

type CareerRepository struct {
	DB *gorm.DB
}

func NewCareerRepository(db *gorm.DB) *CareerRepository {
	return &CareerRepository{
		DB: db,
	}
}

// FindByTitle does a case-insensitive exact match on the career title.
func (r *CareerRepository) FindByTitle(ctx context.Context, title string) (domain.Career, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Career{}, false, fmt.Errorf("context error: %w", err)
	}

	var career domain.Career
	err := r.DB.WithContext(ctx).Where("LOWER(title) = ?", strings.ToLower(title)).First(&career).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Career{}, false, nil
		}
		return domain.Career{}, false, fmt.Errorf("failed to find career: %w", err)
	}

	return career, true, nil
}

// Create inserts a career. A unique-index violation on the title is mapped to
// recommend.ErrDuplicateTitle so the caller can re-fetch the winner.
func (r *CareerRepository) Create(ctx context.Context, career *domain.Career) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(career).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return recommend.ErrDuplicateTitle
		}
		return fmt.Errorf("failed to create career: %w", err)
	}

	return nil
}

func (r *CareerRepository) FindAll(ctx context.Context) ([]domain.Career, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var careers []domain.Career
	if err := r.DB.WithContext(ctx).Find(&careers).Error; err != nil {
		return nil, fmt.Errorf("failed to find careers: %w", err)
	}

	return careers, nil
}

func (r *CareerRepository) FindByID(ctx context.Context, id uint64) (domain.Career, error) {
	if err := ctx.Err(); err != nil {
		return domain.Career{}, fmt.Errorf("context error: %w", err)
	}

	var career domain.Career
	err := r.DB.WithContext(ctx).First(&career, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Career{}, errors.New("career not found")
		}
		return domain.Career{}, fmt.Errorf("failed to find career: %w", err)
	}

	return career, nil
}
